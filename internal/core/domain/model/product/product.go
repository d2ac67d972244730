// Package product provides a read-only view of catalog products for the
// fulfillment subsystem. The catalog service owns products; fulfillment only
// reads the physical attributes needed to size a shipment.
package product

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// Product is a read-only catalog snapshot. Weight and dimension fields are
// optional in the catalog; nil means the seller never measured the product
// and the metrics aggregator substitutes defaults per missing field.
type Product struct {
	ID   kernel.UUID
	Name string

	// Physical attributes, each independently optional.
	WeightGrams *int64
	LengthCm    *int
	WidthCm     *int
	HeightCm    *int
}

// Weight returns the product weight, substituting fallbackGrams when the
// catalog carries no measurement.
func (p Product) Weight(fallbackGrams int64) kernel.Weight {
	grams := fallbackGrams
	if p.WeightGrams != nil {
		grams = *p.WeightGrams
	}
	w, err := kernel.NewWeight(grams)
	if err != nil {
		// Catalog rows with negative weights are treated as unmeasured.
		w, _ = kernel.NewWeight(fallbackGrams)
	}
	return w
}

// Dimensions returns the product dimensions, substituting fallbackCm for each
// missing measurement independently.
func (p Product) Dimensions(fallbackCm int) kernel.Dimensions {
	pick := func(v *int) int {
		if v == nil || *v <= 0 {
			return fallbackCm
		}
		return *v
	}

	d, err := kernel.NewDimensions(pick(p.LengthCm), pick(p.WidthCm), pick(p.HeightCm))
	if err != nil {
		d, _ = kernel.NewDimensions(fallbackCm, fallbackCm, fallbackCm)
	}
	return d
}
