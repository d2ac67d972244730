// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPendingShipmentOrdersQueryIsNotConstructed = errors.New(
		"GetPendingShipmentOrdersQuery must be created via NewGetPendingShipmentOrdersQuery constructor",
	)
)

// GetPendingShipmentOrdersQuery retrieves confirmed orders awaiting carrier
// submission, regardless of payment method. This is the seller's work queue
// for manual shipping.
//
// Example:
//
//	query := NewGetPendingShipmentOrdersQuery()
//	handler := NewGetPendingShipmentOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	fmt.Printf("%d orders awaiting shipment\n", len(orders))
type GetPendingShipmentOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingShipmentOrdersQuery creates a query to retrieve orders awaiting
// shipment. This is a parameterless query.
func NewGetPendingShipmentOrdersQuery() GetPendingShipmentOrdersQuery {
	return GetPendingShipmentOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingShipmentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentOrdersQueryIsNotConstructed)
}

// GetPendingShipmentOrdersQueryResponse is one order awaiting shipment.
// The total stays in minor currency units in the read model; conversion to
// display units is the client's concern.
type GetPendingShipmentOrdersQueryResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	PaymentMethod   string
	TotalMinorUnits int64
	PlacedAt        time.Time
}
