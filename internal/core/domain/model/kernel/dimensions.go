package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Dimensions represents package bounding dimensions in centimeters.
// Dimensions is an immutable value object; the zero value represents an empty
// box and is valid as the identity element for Max.
type Dimensions struct {
	lengthCm int
	widthCm  int
	heightCm int
}

// NewDimensions creates Dimensions from centimeter measurements.
// Negative measurements are rejected.
func NewDimensions(lengthCm, widthCm, heightCm int) (Dimensions, error) {
	for name, v := range map[string]int{"length": lengthCm, "width": widthCm, "height": heightCm} {
		if v < 0 {
			return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%d cm is negative", v))
		}
	}
	return Dimensions{lengthCm: lengthCm, widthCm: widthCm, heightCm: heightCm}, nil
}

// Length returns the length in centimeters.
func (d Dimensions) Length() int {
	return d.lengthCm
}

// Width returns the width in centimeters.
func (d Dimensions) Width() int {
	return d.widthCm
}

// Height returns the height in centimeters.
func (d Dimensions) Height() int {
	return d.heightCm
}

// Max returns the component-wise maximum of two dimension sets. Shipments are
// assumed consolidated into one box sized to the largest item, so dimensions
// combine by maximum, never by sum.
func (d Dimensions) Max(other Dimensions) Dimensions {
	return Dimensions{
		lengthCm: maxInt(d.lengthCm, other.lengthCm),
		widthCm:  maxInt(d.widthCm, other.widthCm),
		heightCm: maxInt(d.heightCm, other.heightCm),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
