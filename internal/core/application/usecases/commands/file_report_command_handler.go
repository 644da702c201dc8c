package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/report"
)

// FileReportCommandHandler handles the business logic for filing breakage reports.
//
// When the report references an order, its machine is marked broken and the
// resume URL is stored on the order, so resolving the report later can route
// the worker back to where they left off.
type FileReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewFileReportCommandHandler creates a handler for report filing operations.
func NewFileReportCommandHandler(uowFactory ReportUoWFactory) FileReportCommandHandler {
	return FileReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the file report command.
func (h FileReportCommandHandler) Handle(ctx context.Context, cmd FileReportCommand) error {
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

	newReport, err := report.NewReport(
		cmd.ReportID(), cmd.WorkerID(), cmd.OrderID(),
		cmd.Description(), cmd.ResumeURL(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReportRepository().Add(ctx, newReport); err != nil {
		return err
	}

	if cmd.OrderID() != nil {
		if err = h.markMachineBroken(ctx, uow, cmd); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h FileReportCommandHandler) markMachineBroken(
	ctx context.Context, uow ReportUoW, cmd FileReportCommand,
) error {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, *cmd.OrderID())
	if err != nil {
		return err
	}

	o.RecordHoldURL(cmd.ResumeURL())
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	machineRepo := uow.MachineRepository()
	m, err := machineRepo.Get(ctx, o.MachineID())
	if err != nil {
		return err
	}

	m.MarkBroken()
	return machineRepo.Update(ctx, m)
}
