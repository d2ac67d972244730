package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingShipmentOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingShipmentOrdersQueryHandler
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingShipmentOrdersQueryHandler(db)
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingShipmentOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) TestHandle_ReturnsConfirmedUnsubmittedOldestFirst() {
	newer := suite.insertOrder(int(order.Confirmed), "card", suite.placedAt(-1), nil)
	older := suite.insertOrder(int(order.Confirmed), "card", suite.placedAt(-48), nil)
	suite.insertOrder(int(order.Pending), "card", suite.placedAt(-2), nil)
	carrierOrderID := int64(501)
	suite.insertOrder(int(order.Shipped), "card", suite.placedAt(-3), &carrierOrderID)

	query := queries.NewGetPendingShipmentOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(older.ID.String(), result[0].ID.String())
	suite.Equal(newer.ID.String(), result[1].ID.String())

	suite.Equal(older.UserID.String(), result[0].UserID.String())
	suite.Equal("card", result[0].PaymentMethod)
	suite.Equal(int64(149700), result[0].TotalMinorUnits)
	suite.True(older.PlacedAt.Equal(result[0].PlacedAt))
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) TestHandle_IncludesCashOnDelivery() {
	// The manual work queue shows every confirmed order. Only the automatic
	// sweep excludes cash on delivery.
	suite.insertOrder(int(order.Confirmed), string(order.PaymentMethodCashOnDelivery), suite.placedAt(-1), nil)

	query := queries.NewGetPendingShipmentOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(string(order.PaymentMethodCashOnDelivery), result[0].PaymentMethod)
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingShipmentOrdersQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetPendingShipmentOrdersQueryIsNotConstructed)
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) placedAt(hoursAgo int) time.Time {
	return time.Now().Add(time.Duration(hoursAgo) * time.Hour).UTC().Truncate(time.Microsecond)
}

func (suite *GetPendingShipmentOrdersQueryHandlerTestSuite) insertOrder(
	status int, paymentMethod string, placedAt time.Time, carrierOrderID *int64,
) orderrepo.OrderDTO {
	shippingStatus := ""
	if carrierOrderID != nil {
		shippingStatus = order.ShippingStatusProcessing
	}

	dto := orderrepo.OrderDTO{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		AddressID:       uuid.New(),
		Status:          status,
		PaymentMethod:   paymentMethod,
		TotalMinorUnits: 149700,
		PlacedAt:        placedAt,
		CarrierOrderID:  carrierOrderID,
		ShippingStatus:  shippingStatus,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func TestGetPendingShipmentOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingShipmentOrdersQueryHandlerTestSuite))
}
