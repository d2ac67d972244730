// Package customer provides read-only views of customers and their shipping
// addresses. The user service owns these records; fulfillment only reads the
// contact and destination fields needed for a carrier payload.
package customer

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// Customer is a read-only snapshot of the ordering user.
type Customer struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// ShippingAddress is a read-only snapshot of the destination selected at
// checkout. The marketplace keeps a single address per order, so billing and
// shipping are always the same address.
type ShippingAddress struct {
	ID      kernel.UUID
	UserID  kernel.UUID
	Address string
	City    string
	State   string
	Country string
	Pincode string
	Phone   string
}
