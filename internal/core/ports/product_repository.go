package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository is the read-only catalog lookup used to size shipments.
// The catalog service owns products; fulfillment never writes them.
type ProductRepository interface {
	// GetByIDs retrieves a catalog snapshot for the given product ids.
	// Products unknown to the catalog are simply absent from the result;
	// callers substitute defaults for them.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]product.Product, error)
}
