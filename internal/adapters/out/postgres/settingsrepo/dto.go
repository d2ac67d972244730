// Package settingsrepo persists the seller-owned carrier configuration: the
// credentials row and the write-once pickup address.
package settingsrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"

	"github.com/google/uuid"
)

// carrierSettingsRowID is the fixed primary key of the single configuration
// row. The shop has exactly one carrier account, so the table is keyed to a
// constant and writes are upserts against it.
const carrierSettingsRowID = 1

// CarrierSettingsDTO represents the database structure for the carrier
// configuration. The cached token columns are observability state written
// after each successful login.
type CarrierSettingsDTO struct {
	ID               int64 `gorm:"primaryKey"`
	Email            string
	Password         string
	CachedToken      *string
	TokenRefreshedAt *time.Time
	DefaultCourierID *int64
	AutoShipEnabled  bool
	UpdatedAt        time.Time
}

// TableName specifies the database table name for the carrier configuration.
func (CarrierSettingsDTO) TableName() string {
	return "carrier_settings"
}

// PickupAddressDTO represents the database structure for a seller's pickup
// location. Address fields are written once at registration; only the carrier
// sync flag changes afterwards.
type PickupAddressDTO struct {
	SellerID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationName  string
	BusinessName  string
	ContactName   string
	Email         string
	Phone         string
	Address       string
	AddressLine2  string
	City          string
	State         string
	Country       string
	Pincode       string
	CarrierSynced bool
	CreatedAt     time.Time
}

// TableName specifies the database table name for pickup locations.
func (PickupAddressDTO) TableName() string {
	return "pickup_addresses"
}

func credentialsFromDomain(creds *settings.CarrierCredentials) CarrierSettingsDTO {
	return CarrierSettingsDTO{
		ID:               carrierSettingsRowID,
		Email:            creds.Email(),
		Password:         creds.Password(),
		CachedToken:      creds.CachedToken(),
		TokenRefreshedAt: creds.TokenRefreshedAt(),
		DefaultCourierID: creds.DefaultCourierID(),
		AutoShipEnabled:  creds.AutoShipEnabled(),
		UpdatedAt:        creds.UpdatedAt(),
	}
}

func credentialsToDomain(dto CarrierSettingsDTO) (*settings.CarrierCredentials, error) {
	return settings.RestoreCarrierCredentials(
		dto.Email,
		dto.Password,
		dto.CachedToken,
		dto.TokenRefreshedAt,
		dto.DefaultCourierID,
		dto.AutoShipEnabled,
		dto.UpdatedAt,
	)
}

func pickupFromDomain(pickup *settings.PickupAddress) PickupAddressDTO {
	fields := pickup.Fields()
	return PickupAddressDTO{
		SellerID:      pickup.SellerID().Bytes(),
		LocationName:  fields.LocationName,
		BusinessName:  fields.BusinessName,
		ContactName:   fields.ContactName,
		Email:         fields.Email,
		Phone:         fields.Phone,
		Address:       fields.Address,
		AddressLine2:  fields.AddressLine2,
		City:          fields.City,
		State:         fields.State,
		Country:       fields.Country,
		Pincode:       fields.Pincode,
		CarrierSynced: pickup.CarrierSynced(),
	}
}

func pickupToDomain(dto PickupAddressDTO) (*settings.PickupAddress, error) {
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return settings.RestorePickupAddress(sellerID, settings.PickupFields{
		LocationName: dto.LocationName,
		BusinessName: dto.BusinessName,
		ContactName:  dto.ContactName,
		Email:        dto.Email,
		Phone:        dto.Phone,
		Address:      dto.Address,
		AddressLine2: dto.AddressLine2,
		City:         dto.City,
		State:        dto.State,
		Country:      dto.Country,
		Pincode:      dto.Pincode,
	}, dto.CarrierSynced)
}
