package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// shipment eligibility.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Order items are read-only to this subsystem and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes a row-level lock on it for
	// the duration of the surrounding transaction. Two concurrent shipment
	// attempts for the same order serialize here, so only one can observe
	// the carrier order id as unset.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingShipment retrieves confirmed orders not yet submitted to
	// the carrier, regardless of payment method.
	GetAllPendingShipment(ctx context.Context) ([]*order.Order, error)

	// GetAllShipped retrieves orders already submitted to the carrier.
	GetAllShipped(ctx context.Context) ([]*order.Order, error)

	// GetAutoShipEligible retrieves orders selected by the auto-ship sweep:
	// confirmed, not yet submitted, and not cash-on-delivery.
	GetAutoShipEligible(ctx context.Context) ([]*order.Order, error)
}
