package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderNotFound is returned when the order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyShipped is returned when the idempotency guard trips:
	// the order already carries a carrier order id. Callers should treat it
	// as a benign no-op, not a failure to alarm on.
	ErrOrderAlreadyShipped = errors.New("order has already been shipped")

	// ErrMissingShippingAddress is returned when the order references an
	// address the user service no longer has.
	ErrMissingShippingAddress = errors.New("shipping address not found for order")

	// ErrMissingCustomer is returned when the order references a user the
	// user service no longer has.
	ErrMissingCustomer = errors.New("customer not found for order")

	// ErrCarrierNotConfigured is returned when no carrier credentials have
	// been saved. Fatal to the operation; never retried automatically.
	ErrCarrierNotConfigured = errors.New("carrier credentials are not configured")
)

// ShipOrderResult is the updated order view returned by a shipment attempt.
// When WaybillError is non-empty the carrier accepted the order but courier
// assignment failed; the order is still shipped and a courier can be assigned
// manually later.
type ShipOrderResult struct {
	OrderID               kernel.UUID
	Status                string
	ShippingStatus        string
	CarrierOrderID        int64
	CarrierShipmentID     int64
	AWBCode               *string
	CourierName           *string
	EstimatedDeliveryDate *time.Time
	WaybillError          string
}

// OrderShipper drives a single order through the shipment pipeline.
// Implemented by ShipOrderCommandHandler; abstracted so the batch coordinator
// can be tested against a mock pipeline.
type OrderShipper interface {
	Handle(ctx context.Context, cmd ShipOrderCommand) (ShipOrderResult, error)
}

// ShipOrderCommandHandler orchestrates the single-order shipment pipeline:
// token, package metrics, carrier order creation, optional waybill
// assignment, and the final state transition.
//
// The pipeline runs inside one transaction holding a row lock on the order,
// so two concurrent attempts for the same order serialize and only one can
// observe the idempotency guard as unset.
//
// The waybill step is best-effort relative to order creation: once the
// carrier accepts the order, a courier assignment failure is recorded on the
// result but never rolls the submission back.
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
	products   ports.ProductRepository
	customers  ports.CustomerRepository
	gateway    ports.CarrierGateway
	tokens     TokenManager
}

// NewShipOrderCommandHandler creates a handler for single-order shipment.
func NewShipOrderCommandHandler(
	uowFactory UoWFactory,
	products ports.ProductRepository,
	customers ports.CustomerRepository,
	gateway ports.CarrierGateway,
	tokens TokenManager,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		products:   products,
		customers:  customers,
		gateway:    gateway,
		tokens:     tokens,
	}
}

// Handle processes the ship-order command.
//
// Preconditions checked before any carrier I/O: the order exists, has not
// been submitted before, carrier credentials exist, and the order's address
// and customer resolve. When the idempotency guard trips the returned result
// still carries the previously recorded carrier ids alongside
// ErrOrderAlreadyShipped.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (ShipOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ShipOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ShipOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	settingsRepo := uow.SettingsRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ShipOrderResult{}, ErrOrderNotFound
	}
	if err != nil {
		return ShipOrderResult{}, err
	}

	// Idempotency guard: refuse before any network I/O.
	if o.IsSubmittedToCarrier() {
		return resultFromOrder(o, ""), ErrOrderAlreadyShipped
	}

	creds, err := settingsRepo.GetCarrierCredentials(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ShipOrderResult{}, ErrCarrierNotConfigured
	}
	if err != nil {
		return ShipOrderResult{}, err
	}

	address, err := h.customers.GetShippingAddress(ctx, o.AddressID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ShipOrderResult{}, ErrMissingShippingAddress
	}
	if err != nil {
		return ShipOrderResult{}, err
	}

	cust, err := h.customers.GetCustomer(ctx, o.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ShipOrderResult{}, ErrMissingCustomer
	}
	if err != nil {
		return ShipOrderResult{}, err
	}

	token, err := h.tokens.Fresh(ctx, creds)
	if err != nil {
		return ShipOrderResult{}, err
	}

	// The fresh token is persisted for observability only; it is never read
	// back for authorization.
	if err = settingsRepo.SaveCarrierCredentials(ctx, creds); err != nil {
		return ShipOrderResult{}, err
	}

	catalog, err := h.products.GetByIDs(ctx, o.ProductIDs())
	if err != nil {
		return ShipOrderResult{}, err
	}
	metrics := services.NewPackageMetricsCalculator().Aggregate(o.Items(), catalog)

	carrierOrder, err := h.gateway.CreateOrder(ctx, token, ports.ShipmentRequest{
		Order:    o,
		Customer: cust,
		Address:  address,
		Metrics:  metrics,
	})
	if err != nil {
		return ShipOrderResult{}, err
	}

	if err = o.MarkSubmitted(carrierOrder.OrderID, carrierOrder.ShipmentID); err != nil {
		return ShipOrderResult{}, err
	}

	// Waybill assignment is a recoverable secondary step. Its failure must
	// not undo the submission the carrier already accepted.
	var waybillErr string
	if cmd.CourierID() != nil {
		waybill, shipErr := h.gateway.CreateShipment(ctx, token, carrierOrder.ShipmentID, *cmd.CourierID())
		if shipErr != nil {
			waybillErr = shipErr.Error()
		} else if attachErr := o.AttachWaybill(
			waybill.AWBCode, waybill.CourierName, waybill.EstimatedDelivery,
		); attachErr != nil {
			waybillErr = attachErr.Error()
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ShipOrderResult{}, err
	}

	// A commit failure past this point strands an accepted carrier order with
	// no local record. There is no reconciliation sweep yet; recovery is
	// manual through the carrier dashboard.
	if err = uow.Commit(ctx); err != nil {
		return ShipOrderResult{}, err
	}

	return resultFromOrder(o, waybillErr), nil
}

func resultFromOrder(o *order.Order, waybillErr string) ShipOrderResult {
	result := ShipOrderResult{
		OrderID:               o.ID(),
		Status:                o.Status().String(),
		ShippingStatus:        o.ShippingStatus(),
		AWBCode:               o.AWBCode(),
		CourierName:           o.CourierName(),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		WaybillError:          waybillErr,
	}
	if id := o.CarrierOrderID(); id != nil {
		result.CarrierOrderID = *id
	}
	if id := o.CarrierShipmentID(); id != nil {
		result.CarrierShipmentID = *id
	}
	return result
}
