package settingsrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/settingsrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SettingsRepositoryIntegrationTestSuite provides integration tests for
// SettingsRepository using PostgreSQL containers.
type SettingsRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *settingsrepo.GormSettingsRepository
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&settingsrepo.CarrierSettingsDTO{},
		&settingsrepo.PickupAddressDTO{},
	))
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carrier_settings, pickup_addresses").Error)
	suite.repository = settingsrepo.NewGormSettingsRepository(suite.db)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestGetCarrierCredentials_Empty_ReturnsNotFound() {
	_, err := suite.repository.GetCarrierCredentials(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestSaveCarrierCredentials_UpsertsSingleRow() {
	ctx := context.Background()

	courierID := int64(24)
	first, err := settings.NewCarrierCredentials("old@example.com", "old-secret", nil, false, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveCarrierCredentials(ctx, first))

	second, err := settings.NewCarrierCredentials("new@example.com", "new-secret", &courierID, true, time.Now())
	suite.Require().NoError(err)
	second.CacheToken("token-1", time.Now())
	suite.Require().NoError(suite.repository.SaveCarrierCredentials(ctx, second))

	// Replacement, not accumulation: the configuration is a single row.
	var count int64
	suite.Require().NoError(suite.db.Model(&settingsrepo.CarrierSettingsDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	loaded, err := suite.repository.GetCarrierCredentials(ctx)
	suite.Require().NoError(err)
	suite.Equal("new@example.com", loaded.Email())
	suite.Equal("new-secret", loaded.Password())
	suite.Require().NotNil(loaded.DefaultCourierID())
	suite.Equal(courierID, *loaded.DefaultCourierID())
	suite.True(loaded.AutoShipEnabled())
	suite.Require().NotNil(loaded.CachedToken())
	suite.Equal("token-1", *loaded.CachedToken())
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestPickupAddress_RoundTrip() {
	ctx := context.Background()

	sellerID := kernel.NewUUID()
	pickup := suite.newPickupAddress(sellerID)
	suite.Require().NoError(suite.repository.AddPickupAddress(ctx, pickup))

	loaded, err := suite.repository.GetPickupAddress(ctx, sellerID)
	suite.Require().NoError(err)
	suite.Equal(sellerID, loaded.SellerID())
	suite.Equal("Primary", loaded.Fields().LocationName)
	suite.Equal("India", loaded.Fields().Country)
	suite.Equal("560001", loaded.Fields().Pincode)
	suite.False(loaded.CarrierSynced())
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestAddPickupAddress_DuplicateSellerFails() {
	ctx := context.Background()

	sellerID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.AddPickupAddress(ctx, suite.newPickupAddress(sellerID)))

	// The primary key backs up the write-once rule even if the handler-level
	// check is bypassed.
	err := suite.repository.AddPickupAddress(ctx, suite.newPickupAddress(sellerID))
	suite.Require().Error(err)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestUpdatePickupAddress_PersistsSyncFlag() {
	ctx := context.Background()

	sellerID := kernel.NewUUID()
	pickup := suite.newPickupAddress(sellerID)
	suite.Require().NoError(suite.repository.AddPickupAddress(ctx, pickup))

	pickup.MarkCarrierSynced()
	suite.Require().NoError(suite.repository.UpdatePickupAddress(ctx, pickup))

	loaded, err := suite.repository.GetPickupAddress(ctx, sellerID)
	suite.Require().NoError(err)
	suite.True(loaded.CarrierSynced())
}

func (suite *SettingsRepositoryIntegrationTestSuite) newPickupAddress(
	sellerID kernel.UUID,
) *settings.PickupAddress {
	pickup, err := settings.NewPickupAddress(sellerID, settings.PickupFields{
		ContactName: "Ravi Kumar",
		Phone:       "9876543210",
		Address:     "12 MG Road",
		City:        "Bengaluru",
		State:       "Karnataka",
		Pincode:     "560001",
	})
	suite.Require().NoError(err)
	return pickup
}

func TestSettingsRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryIntegrationTestSuite))
}
