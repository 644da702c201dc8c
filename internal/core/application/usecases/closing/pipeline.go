// Package closing derives a shift's time accounting after the shift is closed.
//
// The derivation runs as a chain of small tasks, each in its own transaction:
// stamping the end time, counting ended orders, then computing the total,
// bugs, good, bad and lost durations in that order. Each task reloads the
// shift, derives exactly one field and writes it back, so a chain that died
// halfway can simply be run again. The later durations read the earlier ones
// from the shift row, which is why the order of the chain matters.
package closing

import (
	"context"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/shift"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/errs"
)

// Pipeline builds the task chain that fills in a closed shift's accounting
// fields. It satisfies the chain builder contract of the close shift command
// and is reused by the reclose job to repair shifts whose chain never finished.
type Pipeline struct {
	uowFactory ports.UnitOfWorkFactory
	accountant services.TimeAccountant
}

// NewPipeline creates a closing pipeline on top of a unit of work factory.
func NewPipeline(uowFactory ports.UnitOfWorkFactory) Pipeline {
	return Pipeline{
		uowFactory: uowFactory,
		accountant: services.NewTimeAccountant(),
	}
}

// Tasks returns the accounting chain for one shift. The tasks are safe to
// run again: every derivation overwrites its field with a value computed
// from scratch.
func (p Pipeline) Tasks(shiftID kernel.UUID) []ports.Task {
	return []ports.Task{
		{Name: "record_end_time", Run: func(ctx context.Context) error {
			return p.recordEndTime(ctx, shiftID)
		}},
		{Name: "count_ended_orders", Run: func(ctx context.Context) error {
			return p.countEndedOrders(ctx, shiftID)
		}},
		{Name: "compute_total_time", Run: func(ctx context.Context) error {
			return p.computeTotalTime(ctx, shiftID)
		}},
		{Name: "compute_total_bugs_time", Run: func(ctx context.Context) error {
			return p.computeTotalBugsTime(ctx, shiftID)
		}},
		{Name: "compute_good_time", Run: func(ctx context.Context) error {
			return p.computeGoodTime(ctx, shiftID)
		}},
		{Name: "compute_bad_time", Run: func(ctx context.Context) error {
			return p.computeBadTime(ctx, shiftID)
		}},
		{Name: "compute_lost_time", Run: func(ctx context.Context) error {
			return p.computeLostTime(ctx, shiftID)
		}},
	}
}

func (p Pipeline) recordEndTime(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(_ ports.UnitOfWork, s *shift.Shift) error {
		s.RecordEndTime(time.Now().UTC())
		return nil
	})
}

func (p Pipeline) countEndedOrders(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(uow ports.UnitOfWork, s *shift.Shift) error {
		orders, err := uow.OrderRepository().GetAllForShift(ctx, s.ID())
		if err != nil {
			return err
		}

		s.SetNumEndedOrders(p.accountant.EndedOrderCount(orders))
		return nil
	})
}

func (p Pipeline) computeTotalTime(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(_ ports.UnitOfWork, s *shift.Shift) error {
		endTime := s.EndTime()
		if endTime == nil {
			return errs.NewPreconditionFailedError("shift end time is not recorded")
		}

		s.SetTimeTotal(endTime.Sub(s.StartTime()))
		return nil
	})
}

func (p Pipeline) computeTotalBugsTime(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(uow ports.UnitOfWork, s *shift.Shift) error {
		orders, err := uow.OrderRepository().GetAllForShift(ctx, s.ID())
		if err != nil {
			return err
		}

		s.SetTotalBugsTime(p.accountant.TotalBugsTime(orders))
		return nil
	})
}

func (p Pipeline) computeGoodTime(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(uow ports.UnitOfWork, s *shift.Shift) error {
		orders, err := uow.OrderRepository().GetAllForShift(ctx, s.ID())
		if err != nil {
			return err
		}

		s.SetGoodTime(p.accountant.GoodTime(orders))
		return nil
	})
}

func (p Pipeline) computeBadTime(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(uow ports.UnitOfWork, s *shift.Shift) error {
		orders, err := uow.OrderRepository().GetAllForShift(ctx, s.ID())
		if err != nil {
			return err
		}

		s.SetBadTime(p.accountant.BadTime(orders))
		return nil
	})
}

func (p Pipeline) computeLostTime(ctx context.Context, shiftID kernel.UUID) error {
	return p.mutateShift(ctx, shiftID, func(uow ports.UnitOfWork, s *shift.Shift) error {
		chill, err := p.chillTimeFor(ctx, uow, s.WorkerID())
		if err != nil {
			return err
		}

		total := s.TimeTotal()
		good := s.GoodTime()
		bad := s.BadTime()
		bugs := s.TotalBugsTime()
		if total == nil || good == nil || bad == nil || bugs == nil {
			return errs.NewPreconditionFailedError("earlier accounting fields are not derived")
		}

		s.SetLostTime(p.accountant.LostTime(*total, *good, *bad, *bugs, chill))
		return nil
	})
}

// chillTimeFor resolves the rest allowance of the worker's position.
// A worker whose position has no catalog row is a provisioning problem,
// reported as a configuration gap so the reclose job does not spin on it.
func (p Pipeline) chillTimeFor(
	ctx context.Context, uow ports.UnitOfWork, workerID kernel.UUID,
) (time.Duration, error) {
	w, err := uow.WorkerRepository().Get(ctx, workerID)
	if err != nil {
		return 0, err
	}

	position, err := uow.PositionRepository().GetByName(ctx, w.PositionName())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 0, errs.NewConfigurationGapErrorWithCause(w.PositionName(), err)
		}
		return 0, err
	}

	return position.ChillTime(), nil
}

// mutateShift runs one derivation step in its own transaction: load the
// shift, let fn derive and set its field, write the shift back.
func (p Pipeline) mutateShift(
	ctx context.Context, shiftID kernel.UUID,
	fn func(uow ports.UnitOfWork, s *shift.Shift) error,
) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	s, err := shiftRepo.Get(ctx, shiftID)
	if err != nil {
		return err
	}

	if err = fn(uow, s); err != nil {
		return err
	}

	if err = shiftRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
