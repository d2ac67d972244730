package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipOrderCommand(t *testing.T) {
	t.Run("without courier", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewShipOrderCommand(orderID, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Nil(t, cmd.CourierID())
	})

	t.Run("with courier", func(t *testing.T) {
		courierID := int64(24)
		cmd, err := commands.NewShipOrderCommand(kernel.NewUUID(), &courierID)

		require.NoError(t, err)
		require.NotNil(t, cmd.CourierID())
		assert.Equal(t, courierID, *cmd.CourierID())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewShipOrderCommand(kernel.UUID{}, nil)
		require.Error(t, err)
	})

	t.Run("non-positive courier id", func(t *testing.T) {
		courierID := int64(-1)
		_, err := commands.NewShipOrderCommand(kernel.NewUUID(), &courierID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		cmd := commands.ShipOrderCommand{}
		err := cmd.Validate()
		assert.ErrorIs(t, err, commands.ErrShipOrderCommandIsNotConstructed)
	})
}
