package cmd

import (
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/shiprocket"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All dependencies are
// constructed here, once, and handed out as ready-to-use handlers.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    *shiprocket.Client
}

// NewCompositionRoot builds the dependency graph. Fails when the carrier
// client configuration is invalid.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	gateway, err := shiprocket.NewClient(
		configs.CarrierBaseURL,
		time.Duration(configs.CarrierTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
	}, nil
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(
		f,
		productrepo.NewGormProductRepository(c.gormDB),
		customerrepo.NewGormCustomerRepository(c.gormDB),
		c.gateway,
		commands.NewTokenManager(c.gateway),
	)
}

func (c *CompositionRoot) CreateAutoShipCommandHandler() commands.AutoShipCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	shipper := c.CreateShipOrderCommandHandler()
	return commands.NewAutoShipCommandHandler(f, shipper)
}

func (c *CompositionRoot) CreateRegisterPickupAddressCommandHandler() commands.RegisterPickupAddressCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPickupAddressCommandHandler(
		f, c.gateway, commands.NewTokenManager(c.gateway))
}

func (c *CompositionRoot) CreateSaveCredentialsCommandHandler() commands.SaveCredentialsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveCredentialsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPendingShipmentOrdersQueryHandler() queries.GetPendingShipmentOrdersQueryHandler {
	return queries.NewGetPendingShipmentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShippedOrdersQueryHandler() queries.GetShippedOrdersQueryHandler {
	return queries.NewGetShippedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierCredentialsQueryHandler() queries.GetCarrierCredentialsQueryHandler {
	return queries.NewGetCarrierCredentialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB, c.gateway, c.configs.PickupPostcode)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
