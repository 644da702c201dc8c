package commands

import (
	"context"
	"time"
)

// HoldOrderCommandHandler handles the business logic for putting orders on hold.
type HoldOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHoldOrderCommandHandler creates a handler for hold operations.
func NewHoldOrderCommandHandler(uowFactory OrderUoWFactory) HoldOrderCommandHandler {
	return HoldOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hold order command.
func (h HoldOrderCommandHandler) Handle(ctx context.Context, cmd HoldOrderCommand) error {
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

	if err = o.Hold(cmd.ResumeURL(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
