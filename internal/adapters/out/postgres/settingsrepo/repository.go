package settingsrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetCarrierCredentials retrieves the single carrier configuration row.
func (r *GormSettingsRepository) GetCarrierCredentials(
	ctx context.Context,
) (*settings.CarrierCredentials, error) {
	var dto CarrierSettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", carrierSettingsRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier credentials", carrierSettingsRowID)
		}
		return nil, err
	}

	return credentialsToDomain(dto)
}

// SaveCarrierCredentials inserts or replaces the carrier configuration row.
func (r *GormSettingsRepository) SaveCarrierCredentials(
	ctx context.Context, creds *settings.CarrierCredentials,
) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	dto := credentialsFromDomain(creds)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetPickupAddress retrieves the seller's registered pickup location.
func (r *GormSettingsRepository) GetPickupAddress(
	ctx context.Context, sellerID kernel.UUID,
) (*settings.PickupAddress, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}

	var dto PickupAddressDTO
	err := r.db.WithContext(ctx).First(&dto, "seller_id = ?", sellerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup address", sellerID.String())
		}
		return nil, err
	}

	return pickupToDomain(dto)
}

// AddPickupAddress persists a first-time pickup location registration.
// A duplicate registration fails on the primary key, backing up the
// write-once check performed by the command handler.
func (r *GormSettingsRepository) AddPickupAddress(
	ctx context.Context, pickup *settings.PickupAddress,
) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	dto := pickupFromDomain(pickup)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdatePickupAddress persists carrier sync state changes. Only the sync flag
// is written; the address fields are write-once.
func (r *GormSettingsRepository) UpdatePickupAddress(
	ctx context.Context, pickup *settings.PickupAddress,
) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PickupAddressDTO{}).
		Where("seller_id = ?", pickup.SellerID().Bytes()).
		Update("carrier_synced", pickup.CarrierSynced())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
