// Package customerrepo provides the read-only view of customers and shipping
// addresses owned by the user service.
package customerrepo

import (
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the user columns fulfillment reads for carrier payloads.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
	Phone string
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// ShippingAddressDTO represents a checkout shipping address.
type ShippingAddressDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Address string
	City    string
	State   string
	Country string
	Pincode string
	Phone   string
}

// TableName specifies the database table name for shipping addresses.
func (ShippingAddressDTO) TableName() string {
	return "shipping_addresses"
}

func customerToDomain(dto UserDTO) (customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return customer.Customer{}, err
	}

	return customer.Customer{
		ID:    id,
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}, nil
}

func addressToDomain(dto ShippingAddressDTO) (customer.ShippingAddress, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return customer.ShippingAddress{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return customer.ShippingAddress{}, err
	}

	return customer.ShippingAddress{
		ID:      id,
		UserID:  userID,
		Address: dto.Address,
		City:    dto.City,
		State:   dto.State,
		Country: dto.Country,
		Pincode: dto.Pincode,
		Phone:   dto.Phone,
	}, nil
}
