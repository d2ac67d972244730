package productrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByIDs retrieves a catalog snapshot for the given product ids. Products
// unknown to the catalog are absent from the result rather than an error;
// the metrics calculator substitutes defaults for them.
func (r *GormProductRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]product.Product, error) {
	catalog := make(map[kernel.UUID]product.Product, len(ids))
	if len(ids) == 0 {
		return catalog, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		catalog[p.ID] = p
	}

	return catalog, nil
}
