package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
	"shopfloor/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileReportCommandHandler_Handle_FloorLevelIncident(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFileReportCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"coolant leak near bay 3", "",
	)
	require.NoError(t, err)

	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", ctx, mock.AnythingOfType("*report.Report")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFileReportCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	reportRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFileReportCommandHandler_Handle_OrderIncidentBreaksMachine(t *testing.T) {
	ctx := t.Context()
	o := newProcessingOrder(t)
	orderID := o.ID()

	m, err := machine.NewMachine(o.MachineID(), "lathe-1", "lathe")
	require.NoError(t, err)
	require.NoError(t, m.Assign(orderID))

	cmd, err := commands.NewFileReportCommand(
		kernel.NewUUID(), kernel.NewUUID(), &orderID,
		"spindle jammed", "/orders/42/process",
	)
	require.NoError(t, err)

	var filed *report.Report
	reportRepo := new(MockReportRepository)
	orderRepo := new(MockOrderRepository)
	machineRepo := new(MockMachineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", ctx, mock.AnythingOfType("*report.Report")).
			Run(func(args mock.Arguments) {
				filed = args.Get(1).(*report.Report)
			}).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, m.ID()).Return(m, nil).Once(),
		machineRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFileReportCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, filed)
	assert.Equal(t, "spindle jammed", filed.Description())
	require.NotNil(t, filed.OrderID())
	assert.Equal(t, orderID, *filed.OrderID())
	assert.False(t, filed.IsSolved())

	assert.True(t, m.IsBroken())
	assert.True(t, m.IsInProgress(), "a broken machine keeps its claim until the report is resolved")
	assert.Equal(t, "/orders/42/process", o.HoldURL())
}

func TestFileReportCommandHandler_Handle_EmptyDescriptionRejected(t *testing.T) {
	_, err := commands.NewFileReportCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, "", "",
	)
	require.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
}
