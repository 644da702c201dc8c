package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite tests the GORM order repository against
// a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

// noopTracker satisfies the aggregate tracker without recording anything.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestAddAndGet verifies a freshly created order round-trips with its
// nullable timestamps still null.
func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := newTestOrder(suite.T(), kernel.NewUUID())

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), retrieved.ID())
	suite.Equal(order.Created, retrieved.Stage())
	suite.Nil(retrieved.ScanTime())
	suite.Nil(retrieved.BugsTime())
	suite.Nil(retrieved.HoldStarted())
}

// TestGet_NotFound verifies the repository maps missing rows to the domain
// not-found error.
func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

// TestUpdate_PersistsClearedFields verifies that fields moved back to null
// survive an update, which plain struct updates would silently skip.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsClearedFields() {
	ctx := context.Background()
	o := newTestOrder(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.repo.Add(ctx, o))

	at := o.StartTime()
	suite.Require().NoError(o.Scan("gear-12", at.Add(time.Minute)))
	suite.Require().NoError(o.Hold("/orders/42", at.Add(2*time.Minute)))
	_ = o.Resume(at.Add(3 * time.Minute))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	// A second hold clears HoldEnded back to null.
	suite.Require().NoError(o.Hold("/orders/42", at.Add(4*time.Minute)))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	retrieved, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.NotNil(retrieved.HoldStarted())
	suite.Nil(retrieved.HoldEnded())
}

// TestGetAllForShift verifies shift scoping and start-time ordering.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllForShift() {
	ctx := context.Background()
	shiftID := kernel.NewUUID()
	otherShiftID := kernel.NewUUID()

	first := newTestOrder(suite.T(), shiftID)
	second := newTestOrderAt(suite.T(), shiftID, first.StartTime().Add(time.Hour))
	other := newTestOrder(suite.T(), otherShiftID)

	suite.Require().NoError(suite.repo.Add(ctx, second))
	suite.Require().NoError(suite.repo.Add(ctx, first))
	suite.Require().NoError(suite.repo.Add(ctx, other))

	orders, err := suite.repo.GetAllForShift(ctx, shiftID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(first.ID(), orders[0].ID())
	suite.Equal(second.ID(), orders[1].ID())
}

// TestDelete verifies removal and the not-found error for repeated deletes.
func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := newTestOrder(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.repo.Add(ctx, o))

	err := suite.repo.Delete(ctx, o.ID())
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, o.ID())
	suite.Require().Error(err)

	err = suite.repo.Delete(ctx, o.ID())
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func newTestOrder(t *testing.T, shiftID kernel.UUID) *order.Order {
	t.Helper()
	return newTestOrderAt(t, shiftID, time.Now().UTC().Truncate(time.Microsecond))
}

func newTestOrderAt(t *testing.T, shiftID kernel.UUID, start time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), shiftID, start)
	if err != nil {
		t.Fatal(err)
	}
	return o
}
