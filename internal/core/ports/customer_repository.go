package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerRepository is the read-only view of customers and shipping
// addresses owned by the user service.
type CustomerRepository interface {
	// GetCustomer retrieves the ordering customer.
	GetCustomer(ctx context.Context, id kernel.UUID) (customer.Customer, error)

	// GetShippingAddress retrieves the address selected at checkout.
	GetShippingAddress(ctx context.Context, id kernel.UUID) (customer.ShippingAddress, error)
}
