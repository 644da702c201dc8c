package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
)

// ResolveReportCommandHandler handles the business logic for resolving reports.
//
// Resolving stamps the report's end time; the span from filing to resolution
// becomes part of the order's bug time when the order ends. The machine's
// broken flag is cleared, but a machine still running an order stays claimed.
type ResolveReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewResolveReportCommandHandler creates a handler for report resolution operations.
func NewResolveReportCommandHandler(uowFactory ReportUoWFactory) ResolveReportCommandHandler {
	return ResolveReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolve report command.
func (h ResolveReportCommandHandler) Handle(ctx context.Context, cmd ResolveReportCommand) error {
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

	reportRepo := uow.ReportRepository()

	rep, err := reportRepo.Get(ctx, cmd.ReportID())
	if err != nil {
		return err
	}

	rep.Resolve(time.Now().UTC())

	if err = reportRepo.Update(ctx, rep); err != nil {
		return err
	}

	if rep.OrderID() != nil {
		if err = h.repairMachine(ctx, uow, *rep.OrderID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h ResolveReportCommandHandler) repairMachine(
	ctx context.Context, uow ReportUoW, orderID kernel.UUID,
) error {
	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	machineRepo := uow.MachineRepository()
	m, err := machineRepo.Get(ctx, o.MachineID())
	if err != nil {
		return err
	}

	if err = m.Release(machine.ReleaseBroken); err != nil {
		return err
	}

	return machineRepo.Update(ctx, m)
}
