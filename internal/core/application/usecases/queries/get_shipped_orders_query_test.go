package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShippedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetShippedOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetShippedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShippedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShippedOrdersQueryIsNotConstructed)
}
