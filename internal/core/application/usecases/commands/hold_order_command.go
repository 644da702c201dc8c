package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrHoldOrderCommandIsNotConstructed = errors.New(
	"HoldOrderCommand must be created via NewHoldOrderCommand constructor",
)

// HoldOrderCommand represents a request to pause work on an order.
// The resume URL records where the worker was in the flow, so resuming can
// route them back. An empty URL falls back to the root screen.
type HoldOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	resumeURL string

	guard guard.ConstructorGuard
}

// NewHoldOrderCommand creates a command to put an order on hold.
func NewHoldOrderCommand(orderID kernel.UUID, resumeURL string) (HoldOrderCommand, error) {
	cmd := HoldOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return HoldOrderCommand{}, err
	}
	cmd.resumeURL = resumeURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldOrderCommand) Validate() error {
	return c.guard.Validate(ErrHoldOrderCommandIsNotConstructed)
}

// OrderID returns the order being held.
func (c HoldOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ResumeURL returns where to send the worker on resume. May be empty.
func (c HoldOrderCommand) ResumeURL() string {
	return c.resumeURL
}

func (c *HoldOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
