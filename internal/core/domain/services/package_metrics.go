package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
)

const (
	// DefaultItemWeightGrams is substituted when the catalog carries no
	// weight for a product.
	DefaultItemWeightGrams int64 = 500

	// DefaultDimensionCm is substituted per missing dimension component.
	DefaultDimensionCm = 10
)

// PackageMetrics is the ephemeral physical profile of a shipment, computed
// per order and never persisted outside the carrier request.
type PackageMetrics struct {
	TotalWeight kernel.Weight
	Bounding    kernel.Dimensions
}

// PackageMetricsCalculator is a domain service that derives a shipment's
// weight and bounding dimensions from the order lines and catalog metadata.
//
// Rules:
//   - Total weight is the quantity-weighted sum across lines, in grams
//   - Dimensions combine by component-wise maximum, never by sum: the
//     shipment is assumed consolidated into one box sized to the largest item
//   - Each missing catalog measurement is defaulted independently
//     (500 g weight, 10 cm per dimension component)
//
// The calculation is pure and deterministic given the same catalog snapshot.
type PackageMetricsCalculator struct{}

// NewPackageMetricsCalculator creates a new PackageMetricsCalculator instance.
func NewPackageMetricsCalculator() PackageMetricsCalculator {
	return PackageMetricsCalculator{}
}

// Aggregate computes the shipment metrics for the given order lines.
// The products map is a catalog snapshot keyed by product id; lines whose
// product is absent from the snapshot are sized entirely by defaults.
func (c PackageMetricsCalculator) Aggregate(
	items []order.Item,
	products map[kernel.UUID]product.Product,
) PackageMetrics {
	var totalWeight kernel.Weight
	var bounding kernel.Dimensions

	for _, item := range items {
		p := products[item.ProductID()]

		itemWeight := p.Weight(DefaultItemWeightGrams).MultiplyBy(item.Quantity())
		totalWeight = totalWeight.Add(itemWeight)

		bounding = bounding.Max(p.Dimensions(DefaultDimensionCm))
	}

	return PackageMetrics{
		TotalWeight: totalWeight,
		Bounding:    bounding,
	}
}
