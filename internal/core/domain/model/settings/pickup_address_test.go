package settings_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPickupFields() settings.PickupFields {
	return settings.PickupFields{
		BusinessName: "Acme Traders",
		ContactName:  "Asha Rao",
		Email:        "asha@acme.example",
		Phone:        "9876543210",
		Address:      "14 Market Road",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
	}
}

func TestCoalescePickupFields(t *testing.T) {
	t.Run("canonical keys map directly", func(t *testing.T) {
		fields := settings.CoalescePickupFields(map[string]string{
			"business_name": "Acme Traders",
			"contact_name":  "Asha Rao",
			"phone":         "9876543210",
			"address":       "14 Market Road",
			"city":          "Pune",
			"state":         "Maharashtra",
			"pincode":       "411001",
		})

		assert.Equal(t, "Acme Traders", fields.BusinessName)
		assert.Equal(t, "Asha Rao", fields.ContactName)
		assert.Equal(t, "411001", fields.Pincode)
	})

	t.Run("historical synonyms coalesce to canonical fields", func(t *testing.T) {
		fields := settings.CoalescePickupFields(map[string]string{
			"company":     "Acme Traders",
			"name":        "Asha Rao",
			"mobile":      "9876543210",
			"pin_code":    "411001",
			"postal_code": "999999", // loses to pin_code or wins; both are synonyms
		})

		assert.Equal(t, "Acme Traders", fields.BusinessName)
		assert.Equal(t, "Asha Rao", fields.ContactName)
		assert.Equal(t, "9876543210", fields.Phone)
		assert.NotEmpty(t, fields.Pincode)
	})

	t.Run("canonical spelling wins over synonym", func(t *testing.T) {
		fields := settings.CoalescePickupFields(map[string]string{
			"pincode":     "411001",
			"postal_code": "999999",
			"zip":         "888888",
		})
		assert.Equal(t, "411001", fields.Pincode)
	})

	t.Run("unknown keys and empty values are ignored", func(t *testing.T) {
		fields := settings.CoalescePickupFields(map[string]string{
			"pincode":   "",
			"pin_code":  "411001",
			"warehouse": "ignored",
		})
		assert.Equal(t, "411001", fields.Pincode)
	})
}

func TestNewPickupAddress(t *testing.T) {
	t.Run("creates pickup address with defaults", func(t *testing.T) {
		p, err := settings.NewPickupAddress(kernel.NewUUID(), validPickupFields())
		require.NoError(t, err)
		assert.Equal(t, "Primary", p.Fields().LocationName)
		assert.Equal(t, "India", p.Fields().Country)
		assert.False(t, p.CarrierSynced())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		fields := validPickupFields()
		fields.Pincode = ""
		_, err := settings.NewPickupAddress(kernel.NewUUID(), fields)
		require.Error(t, err)
	})

	t.Run("rejects invalid seller id", func(t *testing.T) {
		_, err := settings.NewPickupAddress(kernel.UUID{}, validPickupFields())
		require.Error(t, err)
	})
}

func TestPickupAddress_MarkCarrierSynced(t *testing.T) {
	p, err := settings.NewPickupAddress(kernel.NewUUID(), validPickupFields())
	require.NoError(t, err)

	p.MarkCarrierSynced()
	assert.True(t, p.CarrierSynced())
}

func TestPickupAddress_Validate(t *testing.T) {
	var p settings.PickupAddress
	require.ErrorIs(t, p.Validate(), settings.ErrPickupAddressIsNotConstructed)
}
