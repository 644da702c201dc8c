package commands

import (
	"context"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
)

var ErrNoOpenShift = errors.New("worker has no open shift")

// StartOrderCommandHandler handles the business logic for starting orders.
// The machine claim is a conditional write, so when two workers race for the
// same machine exactly one start succeeds and the other gets a conflict.
type StartOrderCommandHandler struct {
	uowFactory StartOrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for order starting operations.
func NewStartOrderCommandHandler(uowFactory StartOrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start order command.
// Requires the worker's latest shift to be open, claims the machine
// atomically, and creates the order with its start time stamped.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

	currentShift, err := uow.ShiftRepository().GetLastForWorker(ctx, cmd.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOpenShift
	}
	if err != nil {
		return err
	}
	if currentShift.IsEnded() {
		return ErrNoOpenShift
	}

	if err = uow.MachineRepository().Acquire(ctx, cmd.MachineID(), cmd.OrderID()); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.WorkerID(), cmd.MachineID(), currentShift.ID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
