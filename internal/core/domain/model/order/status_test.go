package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"pending is valid", order.Pending, false},
		{"confirmed is valid", order.Confirmed, false},
		{"shipped is valid", order.Shipped, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("pending confirms", func(t *testing.T) {
		s, err := order.Pending.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, s)
	})

	t.Run("confirmed cannot confirm again", func(t *testing.T) {
		_, err := order.Confirmed.Confirm()
		require.Error(t, err)
	})

	t.Run("shipped cannot confirm", func(t *testing.T) {
		_, err := order.Shipped.Confirm()
		require.Error(t, err)
	})
}

func TestStatus_Ship(t *testing.T) {
	t.Run("confirmed ships", func(t *testing.T) {
		s, err := order.Confirmed.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, s)
	})

	t.Run("pending cannot ship", func(t *testing.T) {
		_, err := order.Pending.Ship()
		require.Error(t, err)
	})

	t.Run("shipped cannot ship again", func(t *testing.T) {
		_, err := order.Shipped.Ship()
		require.Error(t, err)
	})
}

func TestStatus_ValidateCanHaveCarrierIDs(t *testing.T) {
	testCases := []struct {
		name      string
		status    order.Status
		hasIDs    bool
		wantError bool
	}{
		{"shipped with ids", order.Shipped, true, false},
		{"shipped without ids", order.Shipped, false, true},
		{"confirmed with ids", order.Confirmed, true, true},
		{"confirmed without ids", order.Confirmed, false, false},
		{"pending with ids", order.Pending, true, true},
		{"pending without ids", order.Pending, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.ValidateCanHaveCarrierIDs(tc.hasIDs)
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
