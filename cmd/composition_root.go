package cmd

import (
	"log/slog"

	"shopfloor/internal/adapters/out/postgres"
	"shopfloor/internal/adapters/out/taskrunner"
	"shopfloor/internal/core/application/usecases/closing"
	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	taskRunner *taskrunner.InProcessRunner
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		taskRunner: taskrunner.NewInProcessRunner(config.TaskQueueSize, logger),
		logger:     logger,
	}
}

// TaskRunner returns the in-process scheduler that executes closing chains.
func (c *CompositionRoot) TaskRunner() *taskrunner.InProcessRunner {
	return c.taskRunner
}

// CreateClosingPipeline builds the shift accounting chain builder.
func (c *CompositionRoot) CreateClosingPipeline() closing.Pipeline {
	return closing.NewPipeline(&c.uowFactory)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.taskRunner, c.CreateClosingPipeline(), c.logger)
}

func (c *CompositionRoot) CreateOpenShiftCommandHandler() commands.OpenShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenShiftCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.StartOrderUoWFactory = FuncStartOrderUoWFactory(func() commands.StartOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.AdvanceOrderUoWFactory = FuncAdvanceOrderUoWFactory(func() commands.AdvanceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAbortOrderCommandHandler() commands.AbortOrderCommandHandler {
	var f commands.OrderMachineUoWFactory = FuncOrderMachineUoWFactory(func() commands.OrderMachineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAbortOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateForceStopOrderCommandHandler() commands.ForceStopOrderCommandHandler {
	var f commands.OrderMachineUoWFactory = FuncOrderMachineUoWFactory(func() commands.OrderMachineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewForceStopOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateHoldOrderCommandHandler() commands.HoldOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHoldOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResumeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseShiftCommandHandler() commands.CloseShiftCommandHandler {
	var f commands.CloseShiftUoWFactory = FuncCloseShiftUoWFactory(func() commands.CloseShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseShiftCommandHandler(f, c.taskRunner, c.CreateClosingPipeline())
}

func (c *CompositionRoot) CreateFileReportCommandHandler() commands.FileReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFileReportCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveReportCommandHandler() commands.ResolveReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveReportCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenReportsQueryHandler() queries.GetOpenReportsQueryHandler {
	return queries.NewGetOpenReportsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShiftSummaryQueryHandler() queries.GetShiftSummaryQueryHandler {
	return queries.NewGetShiftSummaryQueryHandler(c.gormDB)
}

type FuncShiftUoWFactory func() commands.ShiftUoW

func (f FuncShiftUoWFactory) Create() commands.ShiftUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderMachineUoWFactory func() commands.OrderMachineUoW

func (f FuncOrderMachineUoWFactory) Create() commands.OrderMachineUoW {
	return f()
}

type FuncStartOrderUoWFactory func() commands.StartOrderUoW

func (f FuncStartOrderUoWFactory) Create() commands.StartOrderUoW {
	return f()
}

type FuncAdvanceOrderUoWFactory func() commands.AdvanceOrderUoW

func (f FuncAdvanceOrderUoWFactory) Create() commands.AdvanceOrderUoW {
	return f()
}

type FuncCloseShiftUoWFactory func() commands.CloseShiftUoW

func (f FuncCloseShiftUoWFactory) Create() commands.CloseShiftUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}
