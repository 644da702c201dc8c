package jobs

import (
	"fmt"
	"log/slog"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shiftRecloseJob *ShiftRecloseJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	scheduler ports.TaskScheduler,
	chain commands.ChainBuilder,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shiftRecloseJob: NewShiftRecloseJob(uowFactory, scheduler, chain, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shiftRecloseJob.Start(); err != nil {
		return fmt.Errorf("failed to start shift reclose job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shiftRecloseJob.Stop()
}
