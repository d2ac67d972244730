package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetShippedOrdersQueryIsNotConstructed = errors.New(
		"GetShippedOrdersQuery must be created via NewGetShippedOrdersQuery constructor",
	)
)

// GetShippedOrdersQuery retrieves orders already submitted to the carrier,
// with their tracking details. Used for the seller's shipment monitoring view
// and for reconciling carrier state after a failed commit.
type GetShippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShippedOrdersQuery creates a query to retrieve shipped orders.
func NewGetShippedOrdersQuery() GetShippedOrdersQuery {
	return GetShippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShippedOrdersQueryIsNotConstructed)
}

// GetShippedOrdersQueryResponse is one submitted order with its carrier
// correlation ids and waybill details. AWBCode, CourierName, and
// EstimatedDeliveryDate stay nil until a courier has been assigned.
type GetShippedOrdersQueryResponse struct {
	ID                    kernel.UUID
	ShippingStatus        string
	CarrierOrderID        *int64
	CarrierShipmentID     *int64
	AWBCode               *string
	CourierName           *string
	EstimatedDeliveryDate *time.Time
}
