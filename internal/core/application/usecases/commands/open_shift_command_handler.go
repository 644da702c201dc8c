package commands

import (
	"context"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/shift"
	"shopfloor/internal/pkg/errs"
)

// OpenShiftCommandHandler handles the business logic for opening shifts.
// Reuses the worker's latest shift when it is still open, so scanning in
// twice on the same shift is harmless.
type OpenShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewOpenShiftCommandHandler creates a handler for shift opening operations.
func NewOpenShiftCommandHandler(uowFactory ShiftUoWFactory) OpenShiftCommandHandler {
	return OpenShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open shift command and returns the open shift,
// either the existing one or a newly created one.
func (h OpenShiftCommandHandler) Handle(ctx context.Context, cmd OpenShiftCommand) (*shift.Shift, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	last, err := shiftRepo.GetLastForWorker(ctx, cmd.WorkerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if err == nil && !last.IsEnded() {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return last, nil
	}

	opened, err := shift.NewShift(kernel.NewUUID(), cmd.WorkerID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = shiftRepo.Add(ctx, opened); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return opened, nil
}
