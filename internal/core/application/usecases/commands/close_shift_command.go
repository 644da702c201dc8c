package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrCloseShiftCommandIsNotConstructed = errors.New(
	"CloseShiftCommand must be created via NewCloseShiftCommand constructor",
)

// CloseShiftCommand represents a request to close a shift and kick off the
// time accounting that derives its metrics.
type CloseShiftCommand struct { //nolint:recvcheck //using for validation
	shiftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseShiftCommand creates a command to close a shift.
func NewCloseShiftCommand(shiftID kernel.UUID) (CloseShiftCommand, error) {
	cmd := CloseShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShiftID(shiftID); err != nil {
		return CloseShiftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseShiftCommand) Validate() error {
	return c.guard.Validate(ErrCloseShiftCommandIsNotConstructed)
}

// ShiftID returns the shift being closed.
func (c CloseShiftCommand) ShiftID() kernel.UUID {
	return c.shiftID
}

func (c *CloseShiftCommand) setShiftID(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return err
	}

	c.shiftID = shiftID
	return nil
}
