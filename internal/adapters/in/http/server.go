// Package http exposes the seller-facing API: shipping orders, the shipment
// work queues, carrier configuration, and courier listings.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	shipOrderHandler       commands.ShipOrderCommandHandler
	autoShipHandler        commands.AutoShipCommandHandler
	registerPickupHandler  commands.RegisterPickupAddressCommandHandler
	saveCredentialsHandler commands.SaveCredentialsCommandHandler

	// Query handlers
	pendingOrdersHandler queries.GetPendingShipmentOrdersQueryHandler
	shippedOrdersHandler queries.GetShippedOrdersQueryHandler
	credentialsHandler   queries.GetCarrierCredentialsQueryHandler
	couriersHandler      queries.GetCouriersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	shipOrderHandler commands.ShipOrderCommandHandler,
	autoShipHandler commands.AutoShipCommandHandler,
	registerPickupHandler commands.RegisterPickupAddressCommandHandler,
	saveCredentialsHandler commands.SaveCredentialsCommandHandler,
	pendingOrdersHandler queries.GetPendingShipmentOrdersQueryHandler,
	shippedOrdersHandler queries.GetShippedOrdersQueryHandler,
	credentialsHandler queries.GetCarrierCredentialsQueryHandler,
	couriersHandler queries.GetCouriersQueryHandler,
) *Server {
	return &Server{
		shipOrderHandler:       shipOrderHandler,
		autoShipHandler:        autoShipHandler,
		registerPickupHandler:  registerPickupHandler,
		saveCredentialsHandler: saveCredentialsHandler,
		pendingOrdersHandler:   pendingOrdersHandler,
		shippedOrdersHandler:   shippedOrdersHandler,
		credentialsHandler:     credentialsHandler,
		couriersHandler:        couriersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/auto-ship", s.AutoShip)
	api.GET("/orders/pending-shipment", s.GetPendingShipmentOrders)
	api.GET("/orders/shipped", s.GetShippedOrders)
	api.POST("/settings/pickup-address", s.RegisterPickupAddress)
	api.GET("/settings/credentials", s.GetCredentials)
	api.POST("/settings/credentials", s.SaveCredentials)
	api.GET("/couriers", s.GetCouriers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ShipOrder handles POST /api/v1/orders/:id/ship - submits one order to the
// carrier, optionally with a courier override.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "validation_error",
			Message: "invalid order id",
		})
	}

	var req ShipOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "validation_error",
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.CourierID)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	result, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrOrderAlreadyShipped) {
		// A repeated ship is benign: report the existing submission rather
		// than an alarming failure.
		return ctx.JSON(http.StatusConflict, shipOrderResponse(result))
	}
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.JSON(http.StatusOK, shipOrderResponse(result))
}

// AutoShip handles POST /api/v1/orders/auto-ship - runs one batch sweep over
// all eligible orders.
func (s *Server) AutoShip(ctx echo.Context) error {
	cmd := commands.NewAutoShipCommand()

	result, err := s.autoShipHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	orders := make([]AutoShipOrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, AutoShipOrderResponse{
			OrderID:           o.OrderID.String(),
			Success:           o.Success,
			CarrierOrderID:    o.CarrierOrderID,
			CarrierShipmentID: o.CarrierShipmentID,
			AWBCode:           o.AWBCode,
			Error:             o.Error,
		})
	}

	return ctx.JSON(http.StatusOK, AutoShipResponse{
		Eligible:  result.Eligible,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
		Orders:    orders,
	})
}

// GetPendingShipmentOrders handles GET /api/v1/orders/pending-shipment.
func (s *Server) GetPendingShipmentOrders(ctx echo.Context) error {
	query := queries.NewGetPendingShipmentOrdersQuery()

	orders, err := s.pendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	response := make([]PendingShipmentOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, PendingShipmentOrderResponse{
			OrderID:         o.ID.String(),
			UserID:          o.UserID.String(),
			PaymentMethod:   o.PaymentMethod,
			TotalMinorUnits: o.TotalMinorUnits,
			PlacedAt:        o.PlacedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShippedOrders handles GET /api/v1/orders/shipped.
func (s *Server) GetShippedOrders(ctx echo.Context) error {
	query := queries.NewGetShippedOrdersQuery()

	orders, err := s.shippedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	response := make([]ShippedOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, ShippedOrderResponse{
			OrderID:               o.ID.String(),
			ShippingStatus:        o.ShippingStatus,
			CarrierOrderID:        o.CarrierOrderID,
			CarrierShipmentID:     o.CarrierShipmentID,
			AWBCode:               o.AWBCode,
			CourierName:           o.CourierName,
			EstimatedDeliveryDate: o.EstimatedDeliveryDate,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterPickupAddress handles POST /api/v1/settings/pickup-address - the
// write-once pickup location registration. The body is a flat map so that
// historical field-name variants keep working; coalescing happens in the
// command layer.
func (s *Server) RegisterPickupAddress(ctx echo.Context) error {
	var body map[string]string
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "validation_error",
			Message: "invalid request body",
		})
	}

	sellerID, err := kernel.UUIDFromString(body["seller_id"])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "validation_error",
			Message: "invalid or missing seller_id",
		})
	}
	delete(body, "seller_id")

	cmd, err := commands.NewRegisterPickupAddressCommand(sellerID, body)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	result, err := s.registerPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.JSON(http.StatusCreated, PickupAddressResponse{
		LocationName:     result.Fields.LocationName,
		BusinessName:     result.Fields.BusinessName,
		ContactName:      result.Fields.ContactName,
		Email:            result.Fields.Email,
		Phone:            result.Fields.Phone,
		Address:          result.Fields.Address,
		AddressLine2:     result.Fields.AddressLine2,
		City:             result.Fields.City,
		State:            result.Fields.State,
		Country:          result.Fields.Country,
		Pincode:          result.Fields.Pincode,
		CarrierSynced:    result.CarrierSynced,
		CarrierSyncError: result.CarrierSyncError,
	})
}

// GetCredentials handles GET /api/v1/settings/credentials - the redacted
// carrier configuration. The password never leaves the server.
func (s *Server) GetCredentials(ctx echo.Context) error {
	query := queries.NewGetCarrierCredentialsQuery()

	result, err := s.credentialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.JSON(http.StatusOK, CredentialsResponse{
		Email:            result.Email,
		DefaultCourierID: result.DefaultCourierID,
		AutoShipEnabled:  result.AutoShipEnabled,
		HasCachedToken:   result.HasCachedToken,
		TokenRefreshedAt: result.TokenRefreshedAt,
		UpdatedAt:        result.UpdatedAt,
	})
}

// SaveCredentials handles POST /api/v1/settings/credentials.
func (s *Server) SaveCredentials(ctx echo.Context) error {
	var req SaveCredentialsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "validation_error",
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewSaveCredentialsCommand(
		req.Email, req.Password, req.DefaultCourierID, req.AutoShipEnabled)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	if err = s.saveCredentialsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /api/v1/couriers - the plain courier listing, or a
// serviceability check with rates when order_id is supplied.
func (s *Server) GetCouriers(ctx echo.Context) error {
	var orderID *kernel.UUID
	if raw := ctx.QueryParam("order_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Kind:    "validation_error",
				Message: "invalid order_id",
			})
		}
		orderID = &id
	}

	query, err := queries.NewGetCouriersQuery(orderID)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	couriers, err := s.couriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	response := make([]CourierResponse, 0, len(couriers))
	for _, courier := range couriers {
		response = append(response, CourierResponse{
			CarrierID:     courier.CarrierID,
			Name:          courier.Name,
			Rate:          courier.Rate,
			EstimatedDays: courier.EstimatedDays,
			CODAvailable:  courier.CODAvailable,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func shipOrderResponse(result commands.ShipOrderResult) ShipOrderResponse {
	return ShipOrderResponse{
		OrderID:               result.OrderID.String(),
		Status:                result.Status,
		ShippingStatus:        result.ShippingStatus,
		CarrierOrderID:        result.CarrierOrderID,
		CarrierShipmentID:     result.CarrierShipmentID,
		AWBCode:               result.AWBCode,
		CourierName:           result.CourierName,
		EstimatedDeliveryDate: result.EstimatedDeliveryDate,
		WaybillError:          result.WaybillError,
	}
}
