package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// MinorUnitsPerMajor is the conversion factor between the stored minor-unit
// representation and major currency units. All persisted amounts are minor
// units; division happens exactly once, at an outbound payload boundary.
const MinorUnitsPerMajor = 100

// Money is a monetary amount kept in minor currency units (e.g. paise, cents).
// Keeping amounts in integers avoids fractional rounding drift when summing
// many small line items. Money is an immutable value object; the zero value
// represents a zero amount and is valid.
//
// Example:
//
//	total, err := kernel.NewMoney(150000)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(total.MajorUnits()) // 1500
type Money struct {
	minorUnits int64
}

// NewMoney creates a Money value from minor currency units.
// Negative amounts are rejected.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d minor units is negative", minorUnits))
	}
	return Money{minorUnits: minorUnits}, nil
}

// MinorUnits returns the amount in minor currency units.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// MajorUnits converts the amount to major currency units.
// This is the only sanctioned conversion point; callers must not divide again.
func (m Money) MajorUnits() float64 {
	return float64(m.minorUnits) / MinorUnitsPerMajor
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits
}
