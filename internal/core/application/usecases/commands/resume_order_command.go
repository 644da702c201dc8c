package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand represents a request to resume a held order.
type ResumeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume an order.
func NewResumeOrderCommand(orderID kernel.UUID) (ResumeOrderCommand, error) {
	cmd := ResumeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ResumeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// OrderID returns the order being resumed.
func (c ResumeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResumeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
