package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// GramsPerKilogram is the conversion factor between the internal gram
// representation and the kilograms expected by carrier payloads.
const GramsPerKilogram = 1000

// Weight is a physical weight kept in grams. Tracking grams internally avoids
// fractional rounding drift across many small items; conversion to kilograms
// happens exactly once, at the carrier payload boundary.
//
// The zero value represents zero weight and is valid.
type Weight struct {
	grams int64
}

// NewWeight creates a Weight from grams. Negative weights are rejected.
func NewWeight(grams int64) (Weight, error) {
	if grams < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d grams is negative", grams))
	}
	return Weight{grams: grams}, nil
}

// Grams returns the weight in grams.
func (w Weight) Grams() int64 {
	return w.grams
}

// Kilograms converts the weight to kilograms for carrier payloads.
func (w Weight) Kilograms() float64 {
	return float64(w.grams) / GramsPerKilogram
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{grams: w.grams + other.grams}
}

// MultiplyBy scales the weight by an item quantity.
func (w Weight) MultiplyBy(quantity int) Weight {
	return Weight{grams: w.grams * int64(quantity)}
}

// IsZero reports whether the weight is zero.
func (w Weight) IsZero() bool {
	return w.grams == 0
}
