// Package productrepo provides the read-only catalog lookup used to size
// shipments. Products are owned by the catalog service; this adapter only
// reads the columns fulfillment needs.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the catalog columns fulfillment reads. Weight and
// dimensions are nullable: sellers often skip them, and the metrics
// calculator substitutes defaults per missing field.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	WeightGrams *int64
	LengthCm    *int
	WidthCm     *int
	HeightCm    *int
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Product{}, err
	}

	return product.Product{
		ID:          id,
		Name:        dto.Name,
		WeightGrams: dto.WeightGrams,
		LengthCm:    dto.LengthCm,
		WidthCm:     dto.WidthCm,
		HeightCm:    dto.HeightCm,
	}, nil
}
