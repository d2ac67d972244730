package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createConfirmedOrder("card")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createConfirmedOrder(order.PaymentMethodCashOnDelivery)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(original.AddressID(), retrieved.AddressID())
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Equal(order.PaymentMethodCashOnDelivery, retrieved.PaymentMethod())
	suite.Equal(original.Total().MinorUnits(), retrieved.Total().MinorUnits())
	suite.Len(retrieved.Items(), len(original.Items()))
	suite.Nil(retrieved.CarrierOrderID())
	suite.False(retrieved.IsSubmittedToCarrier())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsCarrierSubmission() {
	ctx := context.Background()

	testOrder := suite.createConfirmedOrder("card")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.MarkSubmitted(501, 601))
	eta := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	suite.Require().NoError(testOrder.AttachWaybill("AWB123", "Bluedart", &eta))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Shipped, retrieved.Status())
	suite.True(retrieved.IsSubmittedToCarrier())
	suite.Require().NotNil(retrieved.CarrierOrderID())
	suite.Equal(int64(501), *retrieved.CarrierOrderID())
	suite.Require().NotNil(retrieved.CarrierShipmentID())
	suite.Equal(int64(601), *retrieved.CarrierShipmentID())
	suite.Equal("processing", retrieved.ShippingStatus())
	suite.Require().NotNil(retrieved.AWBCode())
	suite.Equal("AWB123", *retrieved.AWBCode())
	suite.Require().NotNil(retrieved.CourierName())
	suite.Equal("Bluedart", *retrieved.CourierName())

	// The already-submitted order refuses a second submission after reload.
	suite.ErrorIs(retrieved.MarkSubmitted(999, 998), order.ErrOrderAlreadySubmitted)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DoesNotRewriteItems() {
	ctx := context.Background()

	testOrder := suite.createConfirmedOrder("card")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.MarkSubmitted(501, 601))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	var itemCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.ItemDTO{}).
			Where("order_id = ?", testOrder.ID().Bytes()).
			Count(&itemCount).Error,
	)
	suite.Equal(int64(len(testOrder.Items())), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createConfirmedOrder("card")
	suite.Require().NoError(missing.MarkSubmitted(1, 2))

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "record not found")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_LocksRow() {
	ctx := context.Background()

	testOrder := suite.createConfirmedOrder("card")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First transaction takes the lock and submits the order.
	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	repo1 := orderrepo.NewGormOrderRepository(tx1, suite.tracker)

	locked, err := repo1.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.MarkSubmitted(501, 601))
	suite.Require().NoError(repo1.Update(ctx, locked))
	suite.Require().NoError(tx1.Commit().Error)

	// A later transaction observes the submission and the guard trips.
	tx2 := suite.db.Begin()
	suite.Require().NoError(tx2.Error)
	repo2 := orderrepo.NewGormOrderRepository(tx2, suite.tracker)

	reloaded, err := repo2.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(reloaded.IsSubmittedToCarrier())
	suite.Require().NoError(tx2.Rollback().Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestShipmentQueues() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	prepaid := suite.createConfirmedOrder("card")
	cod := suite.createConfirmedOrder(order.PaymentMethodCashOnDelivery)
	pending := suite.createPendingOrder()
	shipped := suite.createConfirmedOrder("card")
	suite.Require().NoError(shipped.MarkSubmitted(700, 701))

	for _, o := range []*order.Order{prepaid, cod, pending, shipped} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	// Pending shipment: confirmed and unsubmitted, COD included.
	pendingShipment, err := suite.repository.GetAllPendingShipment(ctx)
	suite.Require().NoError(err)
	suite.Len(pendingShipment, 2)
	for _, o := range pendingShipment {
		suite.Equal(order.Confirmed, o.Status())
		suite.False(o.IsSubmittedToCarrier())
	}

	// Auto-ship: same set minus cash-on-delivery.
	eligible, err := suite.repository.GetAutoShipEligible(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)
	suite.Equal(prepaid.ID(), eligible[0].ID())

	// Shipped: submitted orders only.
	shippedOrders, err := suite.repository.GetAllShipped(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(shippedOrders, 1)
	suite.Equal(shipped.ID(), shippedOrders[0].ID())
	suite.True(shippedOrders[0].IsSubmittedToCarrier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createConfirmedOrder("card")
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

	results := make(chan *order.Order, 3)
	errCh := make(chan error, 3)

	for range 3 {
		go func() {
			retrieved, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errCh <- readErr
			} else {
				results <- retrieved
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errCh:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createConfirmedOrder creates a confirmed two-line order ready for shipment.
func (suite *OrderRepositoryIntegrationTestSuite) createConfirmedOrder(
	paymentMethod order.PaymentMethod,
) *order.Order {
	testOrder := suite.createPendingOrderWithPayment(paymentMethod)
	suite.Require().NoError(testOrder.Confirm())
	return testOrder
}

// createPendingOrder creates an order still awaiting payment confirmation.
func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrder() *order.Order {
	return suite.createPendingOrderWithPayment("card")
}

func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrderWithPayment(
	paymentMethod order.PaymentMethod,
) *order.Order {
	price, err := kernel.NewMoney(49900)
	suite.Require().NoError(err)
	item1, err := order.NewItem(kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), 1, price)
	suite.Require().NoError(err)

	total, err := kernel.NewMoney(149700)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		paymentMethod, total, time.Now().UTC().Truncate(time.Second),
		[]order.Item{item1, item2},
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
