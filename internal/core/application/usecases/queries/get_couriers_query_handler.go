package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// GetCouriersQueryHandler lists the carrier's couriers, optionally with rates
// for a concrete order's shipment profile.
//
// This is a read path: it logs in to the carrier with the stored credentials
// but never persists the minted token, so the query leaves no local writes.
type GetCouriersQueryHandler struct {
	db      *gorm.DB
	gateway ports.CarrierGateway

	// pickupPostcode is the configured origin for rate checks. When empty the
	// registered pickup address pincode is used instead.
	pickupPostcode string
}

// NewGetCouriersQueryHandler creates a handler for courier listing and
// serviceability queries.
func NewGetCouriersQueryHandler(
	db *gorm.DB, gateway ports.CarrierGateway, pickupPostcode string,
) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{
		db:             db,
		gateway:        gateway,
		pickupPostcode: pickupPostcode,
	}
}

// Handle executes the query. Without an order id it returns the carrier's
// courier companies; with one it computes rates for that order's weight,
// bounding dimensions, destination, and payment method.
func (h GetCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersQuery,
) ([]GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	email, password, err := h.credentials(ctx)
	if err != nil {
		return nil, err
	}

	token, err := h.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if query.OrderID() == nil {
		return h.listCouriers(ctx, token)
	}
	return h.checkServiceability(ctx, token, *query.OrderID())
}

func (h GetCouriersQueryHandler) listCouriers(
	ctx context.Context, token string,
) ([]GetCouriersQueryResponse, error) {
	couriers, err := h.gateway.ListCouriers(ctx, token)
	if err != nil {
		return nil, err
	}

	responses := make([]GetCouriersQueryResponse, 0, len(couriers))
	for _, c := range couriers {
		responses = append(responses, GetCouriersQueryResponse{
			CarrierID: c.ID,
			Name:      c.Name,
		})
	}
	return responses, nil
}

func (h GetCouriersQueryHandler) checkServiceability(
	ctx context.Context, token string, orderID kernel.UUID,
) ([]GetCouriersQueryResponse, error) {
	profile, err := h.shipmentProfile(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rates, err := h.gateway.CheckServiceability(ctx, token, profile)
	if err != nil {
		return nil, err
	}

	responses := make([]GetCouriersQueryResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, GetCouriersQueryResponse{
			CarrierID:     r.CourierID,
			Name:          r.Name,
			Rate:          r.Rate,
			EstimatedDays: r.EstimatedDays,
			CODAvailable:  r.CODAvailable,
		})
	}
	return responses, nil
}

// credentials reads the carrier login from the configuration row. This is the
// only query that touches the password column, and only to authenticate the
// outbound call; the value never reaches a response.
func (h GetCouriersQueryHandler) credentials(ctx context.Context) (string, string, error) {
	var email, password string

	row := h.db.WithContext(ctx).Raw(`
		SELECT email, password
		FROM carrier_settings
		WHERE id = 1
	`).Row()

	err := row.Scan(&email, &password)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrCarrierCredentialsNotFound
	}
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// shipmentProfile builds the serviceability input for an order: destination
// pincode, payment method, and package metrics aggregated over the order lines
// with catalog gaps replaced by the standard defaults.
func (h GetCouriersQueryHandler) shipmentProfile(
	ctx context.Context, orderID kernel.UUID,
) (ports.ServiceabilityQuery, error) {
	var paymentMethod, deliveryPincode string

	row := h.db.WithContext(ctx).Raw(`
		SELECT o.payment_method, a.pincode
		FROM orders o
		JOIN shipping_addresses a ON a.id = o.address_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&paymentMethod, &deliveryPincode)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ServiceabilityQuery{}, ErrOrderNotFound
	}
	if err != nil {
		return ports.ServiceabilityQuery{}, err
	}

	var totalWeightGrams int64
	var lengthCm, breadthCm, heightCm int

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(COALESCE(p.weight_grams, ?) * i.quantity), 0),
			COALESCE(MAX(COALESCE(p.length_cm, ?)), ?),
			COALESCE(MAX(COALESCE(p.width_cm, ?)), ?),
			COALESCE(MAX(COALESCE(p.height_cm, ?)), ?)
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
	`,
		services.DefaultItemWeightGrams,
		services.DefaultDimensionCm, services.DefaultDimensionCm,
		services.DefaultDimensionCm, services.DefaultDimensionCm,
		services.DefaultDimensionCm, services.DefaultDimensionCm,
		orderID.Bytes(),
	).Row()

	if err = row.Scan(&totalWeightGrams, &lengthCm, &breadthCm, &heightCm); err != nil {
		return ports.ServiceabilityQuery{}, err
	}

	pickupPostcode := h.pickupPostcode
	if pickupPostcode == "" {
		if pickupPostcode, err = h.registeredPickupPincode(ctx); err != nil {
			return ports.ServiceabilityQuery{}, err
		}
	}

	return ports.ServiceabilityQuery{
		PickupPostcode:   pickupPostcode,
		DeliveryPostcode: deliveryPincode,
		WeightKg:         float64(totalWeightGrams) / kernel.GramsPerKilogram,
		CashOnDelivery:   order.PaymentMethod(paymentMethod).IsCashOnDelivery(),
		LengthCm:         lengthCm,
		BreadthCm:        breadthCm,
		HeightCm:         heightCm,
	}, nil
}

// registeredPickupPincode falls back to the seller's registered pickup
// location when no pickup postcode is configured.
func (h GetCouriersQueryHandler) registeredPickupPincode(ctx context.Context) (string, error) {
	var pincode string

	row := h.db.WithContext(ctx).Raw(`
		SELECT pincode
		FROM pickup_addresses
		ORDER BY created_at
		LIMIT 1
	`).Row()

	err := row.Scan(&pincode)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPickupOriginNotConfigured
	}
	if err != nil {
		return "", err
	}
	return pincode, nil
}
