package commands

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/machine"
)

var ErrOrderAlreadyStarted = errors.New("order already advanced past creation")

// AbortOrderCommandHandler handles the business logic for aborting orders.
// Abort is only possible before the first scan: once work is recorded the
// order must be force-stopped instead, so no timestamps are lost.
type AbortOrderCommandHandler struct {
	uowFactory OrderMachineUoWFactory
}

// NewAbortOrderCommandHandler creates a handler for order aborting operations.
func NewAbortOrderCommandHandler(uowFactory OrderMachineUoWFactory) AbortOrderCommandHandler {
	return AbortOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the abort order command.
// Deletes the order and frees its machine in one transaction.
func (h AbortOrderCommandHandler) Handle(ctx context.Context, cmd AbortOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CanAbort() {
		return ErrOrderAlreadyStarted
	}

	machineRepo := uow.MachineRepository()
	m, err := machineRepo.Get(ctx, o.MachineID())
	if err != nil {
		return err
	}

	if err = m.Release(machine.ReleaseInProgress); err != nil {
		return err
	}

	if err = machineRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
