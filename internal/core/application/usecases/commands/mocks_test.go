package commands_test

import (
	"context"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/report"
	"shopfloor/internal/core/domain/model/shift"
	"shopfloor/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShiftRepository struct{ mock.Mock }

func (m *MockShiftRepository) Add(ctx context.Context, s *shift.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShiftRepository) Update(ctx context.Context, s *shift.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShiftRepository) Get(ctx context.Context, id kernel.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) GetLastForWorker(ctx context.Context, workerID kernel.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) GetStuckClosed(ctx context.Context) ([]*shift.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shift.Shift), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForShift(ctx context.Context, shiftID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMachineRepository struct{ mock.Mock }

func (m *MockMachineRepository) Add(ctx context.Context, aggregate *machine.Machine) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMachineRepository) Update(ctx context.Context, aggregate *machine.Machine) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMachineRepository) Get(ctx context.Context, id kernel.UUID) (*machine.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*machine.Machine), args.Error(1)
}

func (m *MockMachineRepository) Acquire(ctx context.Context, machineID, orderID kernel.UUID) error {
	args := m.Called(ctx, machineID, orderID)
	return args.Error(0)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Get(ctx context.Context, id kernel.UUID) (*report.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

func (m *MockReportRepository) GetSolvedForOrder(ctx context.Context, orderID kernel.UUID) ([]*report.Report, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.Report), args.Error(1)
}

// MockUoW satisfies every composed unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShiftRepository() ports.ShiftRepository {
	args := m.Called()
	return args.Get(0).(ports.ShiftRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MachineRepository() ports.MachineRepository {
	args := m.Called()
	return args.Get(0).(ports.MachineRepository)
}

func (m *MockUoW) ReportRepository() ports.ReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportRepository)
}

type MockShiftUoWFactory struct{ mock.Mock }

func (m *MockShiftUoWFactory) Create() commands.ShiftUoW {
	args := m.Called()
	return args.Get(0).(commands.ShiftUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderMachineUoWFactory struct{ mock.Mock }

func (m *MockOrderMachineUoWFactory) Create() commands.OrderMachineUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderMachineUoW)
}

type MockStartOrderUoWFactory struct{ mock.Mock }

func (m *MockStartOrderUoWFactory) Create() commands.StartOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.StartOrderUoW)
}

type MockAdvanceOrderUoWFactory struct{ mock.Mock }

func (m *MockAdvanceOrderUoWFactory) Create() commands.AdvanceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.AdvanceOrderUoW)
}

type MockCloseShiftUoWFactory struct{ mock.Mock }

func (m *MockCloseShiftUoWFactory) Create() commands.CloseShiftUoW {
	args := m.Called()
	return args.Get(0).(commands.CloseShiftUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	args := m.Called()
	return args.Get(0).(commands.ReportUoW)
}

type MockTaskScheduler struct{ mock.Mock }

func (m *MockTaskScheduler) Chain(ctx context.Context, tasks ...ports.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

type MockChainBuilder struct{ mock.Mock }

func (m *MockChainBuilder) Tasks(shiftID kernel.UUID) []ports.Task {
	args := m.Called(shiftID)
	return args.Get(0).([]ports.Task)
}
