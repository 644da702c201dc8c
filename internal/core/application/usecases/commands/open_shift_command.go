package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrOpenShiftCommandIsNotConstructed = errors.New(
	"OpenShiftCommand must be created via NewOpenShiftCommand constructor",
)

// OpenShiftCommand represents a request to open (or resume) a worker's shift.
// Opening is get-or-create: if the worker's latest shift is still open it is
// reused, otherwise a fresh shift starts now.
type OpenShiftCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenShiftCommand creates a command to open a shift for the given worker.
func NewOpenShiftCommand(workerID kernel.UUID) (OpenShiftCommand, error) {
	cmd := OpenShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return OpenShiftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenShiftCommand) Validate() error {
	return c.guard.Validate(ErrOpenShiftCommandIsNotConstructed)
}

// WorkerID returns the worker opening the shift.
func (c OpenShiftCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *OpenShiftCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
