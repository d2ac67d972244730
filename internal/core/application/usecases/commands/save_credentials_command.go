package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSaveCredentialsCommandIsNotConstructed = errors.New(
		"SaveCredentialsCommand must be created via NewSaveCredentialsCommand constructor",
	)
)

// SaveCredentialsCommand represents a request to set or replace the shop's
// carrier configuration: login credentials, the optional default courier, and
// the auto-ship switch.
type SaveCredentialsCommand struct { //nolint:recvcheck //using for validation
	credentials *settings.CarrierCredentials

	guard guard.ConstructorGuard
}

// NewSaveCredentialsCommand creates a save-credentials command. All aggregate
// invariants are enforced here, before the handler touches storage.
func NewSaveCredentialsCommand(
	email, password string,
	defaultCourierID *int64,
	autoShipEnabled bool,
) (SaveCredentialsCommand, error) {
	creds, err := settings.NewCarrierCredentials(
		email, password, defaultCourierID, autoShipEnabled, time.Now(),
	)
	if err != nil {
		return SaveCredentialsCommand{}, err
	}

	return SaveCredentialsCommand{
		credentials: creds,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveCredentialsCommand) Validate() error {
	return c.guard.Validate(ErrSaveCredentialsCommandIsNotConstructed)
}

// Credentials returns the validated configuration aggregate.
func (c SaveCredentialsCommand) Credentials() *settings.CarrierCredentials {
	return c.credentials
}
