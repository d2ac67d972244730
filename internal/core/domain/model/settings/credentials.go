package settings

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ErrCredentialsAreNotConstructed is returned when a CarrierCredentials
// instance was not created through its factory methods.
var ErrCredentialsAreNotConstructed = errors.New(
	"CarrierCredentials must be created via NewCarrierCredentials or RestoreCarrierCredentials constructor")

// CarrierCredentials is the single carrier configuration aggregate for the
// shop. It holds the login used for every carrier call, the default courier
// for automatic shipping, and the auto-ship switch.
//
// The cached token is write-only state: it is persisted after each successful
// login purely for observability and is never read back for authorization.
// Every privileged carrier call mints a fresh token.
//
// Invariant: the password is never exposed through any query response.
type CarrierCredentials struct {
	email            string
	password         string
	cachedToken      *string
	tokenRefreshedAt *time.Time
	defaultCourierID *int64
	autoShipEnabled  bool
	updatedAt        time.Time

	isConstructed bool
}

// NewCarrierCredentials creates carrier credentials with validation.
// Email and password are required; the default courier is optional until the
// seller enables automatic shipping.
func NewCarrierCredentials(
	email, password string,
	defaultCourierID *int64,
	autoShipEnabled bool,
	updatedAt time.Time,
) (*CarrierCredentials, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if defaultCourierID != nil && *defaultCourierID <= 0 {
		return nil, errs.NewValueIsInvalidError("defaultCourierID")
	}

	return &CarrierCredentials{
		email:            email,
		password:         password,
		defaultCourierID: defaultCourierID,
		autoShipEnabled:  autoShipEnabled,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// RestoreCarrierCredentials reconstructs the aggregate from persistence,
// including the observability token cache.
func RestoreCarrierCredentials(
	email, password string,
	cachedToken *string,
	tokenRefreshedAt *time.Time,
	defaultCourierID *int64,
	autoShipEnabled bool,
	updatedAt time.Time,
) (*CarrierCredentials, error) {
	creds, err := NewCarrierCredentials(email, password, defaultCourierID, autoShipEnabled, updatedAt)
	if err != nil {
		return nil, err
	}
	creds.cachedToken = cachedToken
	creds.tokenRefreshedAt = tokenRefreshedAt
	return creds, nil
}

// Validate ensures the aggregate was properly constructed.
func (c *CarrierCredentials) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCredentialsAreNotConstructed
	}
	return nil
}

// Email returns the carrier account email.
func (c *CarrierCredentials) Email() string {
	return c.email
}

// Password returns the carrier account password. Callers must never expose
// this outside the carrier login call.
func (c *CarrierCredentials) Password() string {
	return c.password
}

// CachedToken returns the last minted token, or nil if never logged in.
// The value is observability state only and must not be used to authorize calls.
func (c *CarrierCredentials) CachedToken() *string {
	return c.cachedToken
}

// TokenRefreshedAt returns when the cached token was last minted.
func (c *CarrierCredentials) TokenRefreshedAt() *time.Time {
	return c.tokenRefreshedAt
}

// DefaultCourierID returns the courier used by automatic shipping, or nil
// when no default has been configured.
func (c *CarrierCredentials) DefaultCourierID() *int64 {
	return c.defaultCourierID
}

// AutoShipEnabled reports whether the scheduled auto-ship sweep is active.
func (c *CarrierCredentials) AutoShipEnabled() bool {
	return c.autoShipEnabled
}

// UpdatedAt returns when the seller last changed the configuration.
func (c *CarrierCredentials) UpdatedAt() time.Time {
	return c.updatedAt
}

// CacheToken records a freshly minted token for observability.
func (c *CarrierCredentials) CacheToken(token string, at time.Time) {
	c.cachedToken = &token
	c.tokenRefreshedAt = &at
}
