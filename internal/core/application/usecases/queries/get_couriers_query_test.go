package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCouriersQuery_PlainListing(t *testing.T) {
	query, err := queries.NewGetCouriersQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.OrderID())
}

func TestNewGetCouriersQuery_WithOrderID(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetCouriersQuery(&orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.OrderID())
	assert.True(t, orderID.IsEqual(*query.OrderID()))
}

func TestNewGetCouriersQuery_EmptyOrderID(t *testing.T) {
	empty := kernel.UUID{}

	_, err := queries.NewGetCouriersQuery(&empty)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCouriersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCouriersQueryIsNotConstructed)
}
