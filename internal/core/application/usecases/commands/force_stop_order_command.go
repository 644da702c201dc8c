package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrForceStopOrderCommandIsNotConstructed = errors.New(
	"ForceStopOrderCommand must be created via NewForceStopOrderCommand constructor",
)

// ForceStopOrderCommand represents a request to end an order prematurely.
// The order keeps the timestamps it already has and is marked ended early,
// excluding it from the clean-order count at shift close.
type ForceStopOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewForceStopOrderCommand creates a command to force-stop an order.
func NewForceStopOrderCommand(orderID kernel.UUID) (ForceStopOrderCommand, error) {
	cmd := ForceStopOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ForceStopOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ForceStopOrderCommand) Validate() error {
	return c.guard.Validate(ErrForceStopOrderCommandIsNotConstructed)
}

// OrderID returns the order being stopped.
func (c ForceStopOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ForceStopOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
