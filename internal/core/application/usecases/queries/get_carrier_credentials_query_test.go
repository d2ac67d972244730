package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCarrierCredentialsQuery_Valid(t *testing.T) {
	query := queries.NewGetCarrierCredentialsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetCarrierCredentialsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCarrierCredentialsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCarrierCredentialsQueryIsNotConstructed)
}
