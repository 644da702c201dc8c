package commands

import (
	"context"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/machine"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/services"
)

// AdvanceOrderCommandHandler handles the business logic for stage advancement.
// Each advance stamps the wall-clock time of handling into the order; the
// domain rejects replays and skipped stages.
//
// Ending an order additionally derives its bug time from the solved reports
// filed against it and frees the machine for the next order.
type AdvanceOrderCommandHandler struct {
	uowFactory AdvanceOrderUoWFactory
	accountant services.TimeAccountant
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement operations.
func NewAdvanceOrderCommandHandler(uowFactory AdvanceOrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		accountant: services.NewTimeAccountant(),
	}
}

// Handle processes the advance order command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	now := time.Now().UTC()

	switch cmd.Action() {
	case ActionScan:
		err = o.Scan(cmd.PartName(), now)
	case ActionQuantify:
		err = o.Quantify(cmd.NumParts(), now)
	case ActionSetup:
		err = o.Setup(now)
	case ActionProcess:
		err = o.Process(now)
	case ActionEnd:
		err = h.endOrder(ctx, uow, o, now)
	default:
		err = fmt.Errorf("unsupported action %q", cmd.Action())
	}
	if err != nil {
		return err
	}

	if cmd.Action() != ActionEnd {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// endOrder finishes the order: bug time from solved reports, terminal stage
// transition, machine release.
func (h AdvanceOrderCommandHandler) endOrder(
	ctx context.Context, uow AdvanceOrderUoW, o *order.Order, now time.Time,
) error {
	reports, err := uow.ReportRepository().GetSolvedForOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	if err = o.End(now, h.accountant.BugTimeFor(reports)); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
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

	return machineRepo.Update(ctx, m)
}
