package commands_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/report"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreatedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func newProcessingOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newCreatedOrder(t)
	at := o.StartTime()
	require.NoError(t, o.Scan("gear-12", at.Add(time.Minute)))
	require.NoError(t, o.Quantify(4, at.Add(2*time.Minute)))
	require.NoError(t, o.Setup(at.Add(5*time.Minute)))
	require.NoError(t, o.Process(at.Add(35*time.Minute)))
	return o
}

func TestAdvanceOrderCommandHandler_Handle_Scan(t *testing.T) {
	ctx := t.Context()
	o := newCreatedOrder(t)
	cmd, err := commands.NewAdvanceOrderCommand(o.ID(), commands.ActionScan, "gear-12", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Scanned, o.Stage())
	assert.Equal(t, "gear-12", o.PartName())
	assert.NotNil(t, o.ScanTime())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_ScanTwiceRejected(t *testing.T) {
	ctx := t.Context()
	o := newCreatedOrder(t)
	require.NoError(t, o.Scan("gear-12", o.StartTime().Add(time.Minute)))

	cmd, err := commands.NewAdvanceOrderCommand(o.ID(), commands.ActionScan, "gear-13", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, "gear-12", o.PartName(), "replay must not overwrite the part name")
}

func TestAdvanceOrderCommandHandler_Handle_SkippedStageRejected(t *testing.T) {
	ctx := t.Context()
	o := newCreatedOrder(t)

	cmd, err := commands.NewAdvanceOrderCommand(o.ID(), commands.ActionSetup, "", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestAdvanceOrderCommandHandler_Handle_End(t *testing.T) {
	ctx := t.Context()
	o := newProcessingOrder(t)
	m, err := machine.NewMachine(o.MachineID(), "lathe-1", "lathe")
	require.NoError(t, err)
	require.NoError(t, m.Assign(o.ID()))

	filed := time.Now().UTC().Add(-30 * time.Minute)
	solvedAt := filed.Add(10 * time.Minute)
	solved, err := report.RestoreReport(
		kernel.NewUUID(), o.WorkerID(), ptr(o.ID()),
		"spindle jam", "/orders/42", filed, &solvedAt, true,
	)
	require.NoError(t, err)

	cmd, err := commands.NewAdvanceOrderCommand(o.ID(), commands.ActionEnd, "", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	machineRepo := new(MockMachineRepository)
	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("GetSolvedForOrder", ctx, o.ID()).Return([]*report.Report{solved}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Get", ctx, o.MachineID()).Return(m, nil).Once(),
		machineRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Ended, o.Stage())
	assert.True(t, o.IsEnded())
	require.NotNil(t, o.BugsTime())
	assert.Equal(t, 10*time.Minute, *o.BugsTime())
	assert.True(t, m.IsFree())
	orderRepo.AssertExpectations(t)
	machineRepo.AssertExpectations(t)
	reportRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID, commands.ActionProcess, "", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func ptr(id kernel.UUID) *kernel.UUID {
	return &id
}
