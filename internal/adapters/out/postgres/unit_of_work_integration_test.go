package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "shopfloor/internal/adapters/out/postgres"
	"shopfloor/internal/adapters/out/postgres/machinerepo"
	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/adapters/out/postgres/positionrepo"
	"shopfloor/internal/adapters/out/postgres/reportrepo"
	"shopfloor/internal/adapters/out/postgres/shiftrepo"
	"shopfloor/internal/adapters/out/postgres/workerrepo"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/shift"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shiftrepo.ShiftDTO{},
		&orderrepo.OrderDTO{},
		&machinerepo.MachineDTO{},
		&reportrepo.ReportDTO{},
		&workerrepo.WorkerDTO{},
		&positionrepo.PositionDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shifts, orders, machines, reports, workers, positions").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShiftRepository(), "First instance should provide shift repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.MachineRepository(), "First instance should provide machine repository")
	suite.NotNil(uow2.ReportRepository(), "Second instance should provide report repository")
	suite.NotNil(uow2.WorkerRepository(), "Second instance should provide worker repository")
	suite.NotNil(uow2.PositionRepository(), "Second instance should provide position repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShift := createTestShift()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShiftRepository().Add(ctx, testShift)
	suite.Require().NoError(err)

	retrieved, err := uow.ShiftRepository().Get(ctx, testShift.ID())
	suite.Require().NoError(err)
	suite.Equal(testShift.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify shift persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShiftRepository().Get(ctx, testShift.ID())
	suite.Require().NoError(err)
	suite.Equal(testShift.ID(), retrieved.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShift := createTestShift()
	testMachine := createTestMachine()
	testOrder := createTestOrder(testShift, testMachine)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShiftRepository().Add(ctx, testShift)
	suite.Require().NoError(err)

	err = uow.MachineRepository().Add(ctx, testMachine)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Claim the machine for the order within the same transaction
	err = uow.MachineRepository().Acquire(ctx, testMachine.ID(), testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify relationships persisted correctly
	newUow := suite.factory.Create()

	retrievedMachine, err := newUow.MachineRepository().Get(ctx, testMachine.ID())
	suite.Require().NoError(err)
	suite.True(retrievedMachine.IsInProgress())
	suite.Require().NotNil(retrievedMachine.OrderInProgress())
	suite.Equal(testOrder.ID(), *retrievedMachine.OrderInProgress())

	orders, err := newUow.OrderRepository().GetAllForShift(ctx, testShift.ID())
	suite.Require().NoError(err)
	suite.Len(orders, 1)
	suite.Equal(testOrder.ID(), orders[0].ID())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShift := createTestShift()
	testMachine := createTestMachine()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShiftRepository().Add(ctx, testShift)
	suite.Require().NoError(err)

	err = uow.MachineRepository().Add(ctx, testMachine)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.ShiftRepository().Get(ctx, testShift.ID())
	suite.Require().NoError(err)

	_, err = uow.MachineRepository().Get(ctx, testMachine.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.ShiftRepository().Get(ctx, testShift.ID())
	suite.Require().Error(err, "Shift should not exist after rollback")

	_, err = newUow.MachineRepository().Get(ctx, testMachine.ID())
	suite.Require().Error(err, "Machine should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shift1 := createTestShift()
	shift2 := createTestShift()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ShiftRepository().Add(ctx, shift1)
	suite.Require().NoError(err)

	err = uow2.ShiftRepository().Add(ctx, shift2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.ShiftRepository().Get(ctx, shift1.ID())
	suite.Require().NoError(err, "UOW1 should see shift1")

	_, err = uow1.ShiftRepository().Get(ctx, shift2.ID())
	suite.Require().Error(err, "UOW1 should not see shift2")

	_, err = uow2.ShiftRepository().Get(ctx, shift2.ID())
	suite.Require().NoError(err, "UOW2 should see shift2")

	_, err = uow2.ShiftRepository().Get(ctx, shift1.ID())
	suite.Require().Error(err, "UOW2 should not see shift1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only shift1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.ShiftRepository().Get(ctx, shift1.ID())
	suite.Require().NoError(err, "Shift1 should persist after commit")

	_, err = newUow.ShiftRepository().Get(ctx, shift2.ID())
	suite.Require().Error(err, "Shift2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShift := createTestShift()

	// Add shift without beginning transaction (should auto-commit)
	err := uow.ShiftRepository().Add(ctx, testShift)
	suite.Require().NoError(err)

	retrieved, err := uow.ShiftRepository().Get(ctx, testShift.ID())
	suite.Require().NoError(err)
	suite.Equal(testShift.ID(), retrieved.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShiftRepository().Get(ctx, testShift.ID())
	suite.Require().NoError(err)
	suite.Equal(testShift.ID(), retrieved.ID())
}

// TestUnitOfWork_OrderLifecycleWorkflow walks an order through its full
// lifecycle within transactions and verifies the persisted timestamps.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testShift := createTestShift()
	err = uow.ShiftRepository().Add(ctx, testShift)
	suite.Require().NoError(err)

	testMachine := createTestMachine()
	err = uow.MachineRepository().Add(ctx, testMachine)
	suite.Require().NoError(err)

	testOrder := createTestOrder(testShift, testMachine)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.MachineRepository().Acquire(ctx, testMachine.ID(), testOrder.ID())
	suite.Require().NoError(err)

	// Walk the order through all stages
	at := testOrder.StartTime()
	suite.Require().NoError(testOrder.Scan("gear-12", at.Add(1*time.Minute)))
	suite.Require().NoError(testOrder.Quantify(4, at.Add(2*time.Minute)))
	suite.Require().NoError(testOrder.Setup(at.Add(5*time.Minute)))
	suite.Require().NoError(testOrder.Process(at.Add(35*time.Minute)))
	suite.Require().NoError(testOrder.End(at.Add(40*time.Minute), 3*time.Minute))

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Free the machine
	retrievedMachine, err := uow.MachineRepository().Get(ctx, testMachine.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(retrievedMachine.Release(machine.ReleaseInProgress))
	err = uow.MachineRepository().Update(ctx, retrievedMachine)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ended, retrievedOrder.Stage())
	suite.True(retrievedOrder.IsEnded())
	suite.False(retrievedOrder.EndedEarly())
	suite.Require().NotNil(retrievedOrder.ScanTime())
	suite.Require().NotNil(retrievedOrder.EndWorkingTime())
	suite.Require().NotNil(retrievedOrder.BugsTime())
	suite.Equal(3*time.Minute, *retrievedOrder.BugsTime())

	finalMachine, err := newUow.MachineRepository().Get(ctx, testMachine.ID())
	suite.Require().NoError(err)
	suite.True(finalMachine.IsFree())
	suite.Nil(finalMachine.OrderInProgress())
}

// TestUnitOfWork_ConcurrentMachineAcquire verifies exactly one of two
// concurrent claims on the same machine succeeds.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentMachineAcquire() {
	ctx := context.Background()

	testMachine := createTestMachine()
	initialUow := suite.factory.Create()
	err := initialUow.MachineRepository().Add(ctx, testMachine)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uow := suite.factory.Create()
			results[i] = uow.MachineRepository().Acquire(ctx, testMachine.ID(), kernel.NewUUID())
		}(i)
	}
	wg.Wait()

	var conflictErr *errs.ResourceConflictError
	if results[0] == nil {
		suite.Require().ErrorAs(results[1], &conflictErr)
	} else {
		suite.Require().ErrorAs(results[0], &conflictErr)
		suite.Require().NoError(results[1])
	}
}

// TestUnitOfWork_StuckClosedShifts verifies the repair query picks up closed
// shifts with unfinished accounting and ignores completed ones.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StuckClosedShifts() {
	ctx := context.Background()
	uow := suite.factory.Create()

	open := createTestShift()
	suite.Require().NoError(uow.ShiftRepository().Add(ctx, open))

	stuck := createTestShift()
	suite.Require().NoError(stuck.Close(stuck.StartTime().Add(8 * time.Hour)))
	suite.Require().NoError(uow.ShiftRepository().Add(ctx, stuck))

	done := createTestShift()
	suite.Require().NoError(done.Close(done.StartTime().Add(8 * time.Hour)))
	done.SetLostTime(time.Hour)
	suite.Require().NoError(uow.ShiftRepository().Add(ctx, done))

	shifts, err := uow.ShiftRepository().GetStuckClosed(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(shifts, 1)
	suite.Equal(stuck.ID(), shifts[0].ID())
}

// createTestShift creates a valid open shift for testing purposes.
func createTestShift() *shift.Shift {
	start := time.Now().UTC().Truncate(time.Microsecond)
	s, _ := shift.NewShift(kernel.NewUUID(), kernel.NewUUID(), start)
	return s
}

// createTestMachine creates a valid free machine for testing purposes.
func createTestMachine() *machine.Machine {
	m, _ := machine.NewMachine(kernel.NewUUID(), "lathe-"+kernel.NewUUID().String(), "lathe")
	return m
}

// createTestOrder creates a valid order in the given shift on the given machine.
func createTestOrder(s *shift.Shift, m *machine.Machine) *order.Order {
	start := time.Now().UTC().Truncate(time.Microsecond)
	o, _ := order.NewOrder(kernel.NewUUID(), s.WorkerID(), m.ID(), s.ID(), start)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
