package jobs

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ShiftRecloseJob repairs shifts whose accounting never finished.
// A shift that is closed but still has no lost time means its closing chain
// died partway, typically on a process restart. The job runs every minute,
// finds such shifts and enqueues their chain again.
type ShiftRecloseJob struct {
	uowFactory ports.UnitOfWorkFactory
	scheduler  ports.TaskScheduler
	chain      commands.ChainBuilder
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewShiftRecloseJob creates a job that re-runs stuck closing chains.
func NewShiftRecloseJob(
	uowFactory ports.UnitOfWorkFactory,
	scheduler ports.TaskScheduler,
	chain commands.ChainBuilder,
	logger *slog.Logger,
) *ShiftRecloseJob {
	return &ShiftRecloseJob{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		chain:      chain,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "shift_reclose_job"),
	}
}

// Start begins the reclose job to run every minute.
func (j *ShiftRecloseJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.recloseStuckShifts(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Shift reclose job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shift reclose job started (running every minute)")
	return nil
}

// Stop stops the reclose job.
func (j *ShiftRecloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shift reclose job stopped")
}

func (j *ShiftRecloseJob) recloseStuckShifts(ctx context.Context) error {
	uow := j.uowFactory.Create()

	shifts, err := uow.ShiftRepository().GetStuckClosed(ctx)
	if err != nil {
		return err
	}

	for _, s := range shifts {
		if err = j.scheduler.Chain(ctx, j.chain.Tasks(s.ID())...); err != nil {
			return err
		}

		j.logger.InfoContext(ctx, "Re-enqueued closing chain for stuck shift",
			"shift_id", s.ID().String())
	}

	return nil
}
