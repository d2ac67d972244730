package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for seller-owned
// carrier configuration: credentials and the write-once pickup address.
type SettingsRepository interface {
	// GetCarrierCredentials retrieves the single carrier configuration row.
	// Returns an ObjectNotFoundError when the seller never configured the carrier.
	GetCarrierCredentials(ctx context.Context) (*settings.CarrierCredentials, error)

	// SaveCarrierCredentials inserts or replaces the carrier configuration.
	SaveCarrierCredentials(ctx context.Context, creds *settings.CarrierCredentials) error

	// GetPickupAddress retrieves the seller's registered pickup location.
	// Returns an ObjectNotFoundError when none has been registered.
	GetPickupAddress(ctx context.Context, sellerID kernel.UUID) (*settings.PickupAddress, error)

	// AddPickupAddress persists a first-time pickup location registration.
	AddPickupAddress(ctx context.Context, pickup *settings.PickupAddress) error

	// UpdatePickupAddress persists carrier sync state changes. The address
	// fields themselves are write-once and never updated through this port.
	UpdatePickupAddress(ctx context.Context, pickup *settings.PickupAddress) error
}
