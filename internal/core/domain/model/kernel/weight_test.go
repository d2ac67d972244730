package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("creates weight from grams", func(t *testing.T) {
		w, err := kernel.NewWeight(1300)
		require.NoError(t, err)
		assert.Equal(t, int64(1300), w.Grams())
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := kernel.NewWeight(-300)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWeight_Kilograms(t *testing.T) {
	testCases := []struct {
		name  string
		grams int64
		kg    float64
	}{
		{"whole kilograms", 2000, 2.0},
		{"fractional", 1300, 1.3},
		{"sub-kilogram", 500, 0.5},
		{"zero", 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := kernel.NewWeight(tc.grams)
			require.NoError(t, err)
			assert.InDelta(t, tc.kg, w.Kilograms(), 1e-9)
		})
	}
}

func TestWeight_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a, _ := kernel.NewWeight(500)
		b, _ := kernel.NewWeight(300)
		assert.Equal(t, int64(800), a.Add(b).Grams())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		w, _ := kernel.NewWeight(500)
		assert.Equal(t, int64(1500), w.MultiplyBy(3).Grams())
	})
}
