package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents a request to start a production order on a
// machine within the worker's open shift.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	workerID  kernel.UUID
	machineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to start a new order.
func NewStartOrderCommand(orderID, workerID, machineID kernel.UUID) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkerID(workerID),
		cmd.setMachineID(machineID),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the worker starting the order.
func (c StartOrderCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// MachineID returns the machine being claimed.
func (c StartOrderCommand) MachineID() kernel.UUID {
	return c.machineID
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *StartOrderCommand) setMachineID(machineID kernel.UUID) error {
	if err := machineID.Validate(); err != nil {
		return err
	}

	c.machineID = machineID
	return nil
}
