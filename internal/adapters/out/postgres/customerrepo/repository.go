package customerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetCustomer retrieves the ordering customer.
func (r *GormCustomerRepository) GetCustomer(
	ctx context.Context, id kernel.UUID,
) (customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return customer.Customer{}, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Customer{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return customer.Customer{}, err
	}

	return customerToDomain(dto)
}

// GetShippingAddress retrieves the address selected at checkout.
func (r *GormCustomerRepository) GetShippingAddress(
	ctx context.Context, id kernel.UUID,
) (customer.ShippingAddress, error) {
	if err := id.Validate(); err != nil {
		return customer.ShippingAddress{}, err
	}

	var dto ShippingAddressDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.ShippingAddress{}, errs.NewObjectNotFoundError("shipping address", id.String())
		}
		return customer.ShippingAddress{}, err
	}

	return addressToDomain(dto)
}
