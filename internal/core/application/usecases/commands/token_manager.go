package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
)

// TokenManager obtains a fresh carrier token before every privileged call.
//
// The carrier's tokens are short-lived, so the previously cached token is
// never reused for authorization: every call mints a new one. The fresh token
// is recorded on the credentials aggregate purely for observability; the
// caller decides whether to persist it.
//
// TokenManager performs no retries; retry policy belongs to the caller, which
// is safe because a failed login mutates nothing.
type TokenManager struct {
	gateway ports.CarrierGateway
}

// NewTokenManager creates a token manager backed by the carrier gateway.
func NewTokenManager(gateway ports.CarrierGateway) TokenManager {
	return TokenManager{gateway: gateway}
}

// Fresh logs in with the stored credentials and returns a new bearer token.
// On success the token and mint time are cached on the aggregate. Failures
// come back classified by the gateway: ports.ErrAuthenticationFailed,
// ports.ErrPermissionDenied, or a ports.CarrierAPIError.
func (tm TokenManager) Fresh(ctx context.Context, creds *settings.CarrierCredentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}

	token, err := tm.gateway.Login(ctx, creds.Email(), creds.Password())
	if err != nil {
		return "", err
	}

	creds.CacheToken(token, time.Now())
	return token, nil
}
