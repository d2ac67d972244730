package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetCarrierCredentialsQueryIsNotConstructed = errors.New(
		"GetCarrierCredentialsQuery must be created via NewGetCarrierCredentialsQuery constructor",
	)

	// ErrCarrierCredentialsNotFound is returned when the seller never saved a
	// carrier configuration.
	ErrCarrierCredentialsNotFound = errors.New("carrier credentials are not configured")
)

// GetCarrierCredentialsQuery retrieves the carrier configuration for display.
//
// The password never appears in the response, and the cached token is exposed
// only as a presence flag with its mint time. Secrets flow out of the system
// exactly once, inside the carrier login call.
type GetCarrierCredentialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarrierCredentialsQuery creates a query to retrieve the carrier
// configuration.
func NewGetCarrierCredentialsQuery() GetCarrierCredentialsQuery {
	return GetCarrierCredentialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierCredentialsQueryIsNotConstructed)
}

// GetCarrierCredentialsQueryResponse is the redacted carrier configuration.
type GetCarrierCredentialsQueryResponse struct {
	Email            string
	DefaultCourierID *int64
	AutoShipEnabled  bool
	HasCachedToken   bool
	TokenRefreshedAt *time.Time
	UpdatedAt        time.Time
}
