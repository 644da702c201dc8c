package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrAbortOrderCommandIsNotConstructed = errors.New(
	"AbortOrderCommand must be created via NewAbortOrderCommand constructor",
)

// AbortOrderCommand represents a request to back out of an order that was
// started by mistake, before any part was scanned.
type AbortOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAbortOrderCommand creates a command to abort an order.
func NewAbortOrderCommand(orderID kernel.UUID) (AbortOrderCommand, error) {
	cmd := AbortOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AbortOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AbortOrderCommand) Validate() error {
	return c.guard.Validate(ErrAbortOrderCommandIsNotConstructed)
}

// OrderID returns the order being aborted.
func (c AbortOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AbortOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
