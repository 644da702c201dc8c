package commands

import (
	"context"
	"time"
)

// ResumeOrderCommandHandler handles the business logic for resuming held orders.
// Resume is tolerant: resuming an order that is not on hold is not an error,
// the worker is simply routed to the last known place in the flow.
type ResumeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResumeOrderCommandHandler creates a handler for resume operations.
func NewResumeOrderCommandHandler(uowFactory OrderUoWFactory) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume order command and returns the URL the worker
// should continue at.
func (h ResumeOrderCommandHandler) Handle(ctx context.Context, cmd ResumeOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	url := o.Resume(time.Now().UTC())

	if err = orderRepo.Update(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return url, nil
}
