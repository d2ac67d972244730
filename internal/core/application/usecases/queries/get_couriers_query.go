package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetCouriersQueryIsNotConstructed = errors.New(
		"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
	)

	// ErrOrderNotFound is returned when a rates query references an order the
	// system does not have.
	ErrOrderNotFound = errors.New("order not found")

	// ErrPickupOriginNotConfigured is returned when a rates query runs with
	// neither a configured pickup postcode nor a registered pickup address.
	ErrPickupOriginNotConfigured = errors.New("pickup origin is not configured")
)

// GetCouriersQuery retrieves the carrier's courier companies. With an order id
// the query instead checks serviceability for that order's shipment profile
// and returns couriers with rates and delivery estimates.
//
// Example:
//
//	// Plain courier listing
//	query, _ := NewGetCouriersQuery(nil)
//
//	// Rates for a concrete order
//	orderID := kernel.NewUUID()
//	query, _ = NewGetCouriersQuery(&orderID)
type GetCouriersQuery struct {
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a courier listing query. A non-nil order id
// turns it into a serviceability check for that order.
func NewGetCouriersQuery(orderID *kernel.UUID) (GetCouriersQuery, error) {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetCouriersQuery{}, err
		}
	}

	return GetCouriersQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// OrderID returns the order to compute rates for, or nil for a plain listing.
func (q GetCouriersQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// GetCouriersQueryResponse is one courier option. Rate, EstimatedDays, and
// CODAvailable are populated only for serviceability queries; a plain listing
// carries identity fields alone.
type GetCouriersQueryResponse struct {
	CarrierID     int64
	Name          string
	Rate          float64
	EstimatedDays string
	CODAvailable  bool
}
