package commands

import (
	"context"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/shift"
	"shopfloor/internal/core/ports"
)

var ErrOrdersStillOpen = errors.New("shift has orders still open")

// ChainBuilder produces the accounting task chain for a closed shift.
type ChainBuilder interface {
	Tasks(shiftID kernel.UUID) []ports.Task
}

// CloseShiftCommandHandler handles the business logic for closing shifts.
//
// Closing is refused while any order of the shift is still open. The close
// itself is a write-once transition, so a second close request conflicts
// instead of enqueueing the accounting chain twice. The chain runs in the
// background; the request returns as soon as the close is committed.
type CloseShiftCommandHandler struct {
	uowFactory CloseShiftUoWFactory
	scheduler  ports.TaskScheduler
	chain      ChainBuilder
}

// NewCloseShiftCommandHandler creates a handler for shift closing operations.
func NewCloseShiftCommandHandler(
	uowFactory CloseShiftUoWFactory,
	scheduler ports.TaskScheduler,
	chain ChainBuilder,
) CloseShiftCommandHandler {
	return CloseShiftCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		chain:      chain,
	}
}

// Handle processes the close shift command.
func (h CloseShiftCommandHandler) Handle(ctx context.Context, cmd CloseShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	s, err := shiftRepo.Get(ctx, cmd.ShiftID())
	if err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllForShift(ctx, s.ID())
	if err != nil {
		return err
	}
	if !shift.AllOrdersEnded(orders) {
		return ErrOrdersStillOpen
	}

	if err = s.Close(time.Now().UTC()); err != nil {
		return err
	}

	if err = shiftRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.scheduler.Chain(ctx, h.chain.Tasks(s.ID())...)
}
