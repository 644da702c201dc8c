package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/machine"
)

// ForceStopOrderCommandHandler handles the business logic for force-stopping orders.
type ForceStopOrderCommandHandler struct {
	uowFactory OrderMachineUoWFactory
}

// NewForceStopOrderCommandHandler creates a handler for force-stop operations.
func NewForceStopOrderCommandHandler(uowFactory OrderMachineUoWFactory) ForceStopOrderCommandHandler {
	return ForceStopOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the force stop command.
// Ends the order early and frees its machine in one transaction.
func (h ForceStopOrderCommandHandler) Handle(ctx context.Context, cmd ForceStopOrderCommand) error {
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

	if err = o.ForceStop(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
