package commands

import (
	"context"
)

// SaveCredentialsCommandHandler persists the shop's carrier configuration.
// Replacing credentials resets the observability token cache; the next
// privileged call mints a token with the new login.
type SaveCredentialsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewSaveCredentialsCommandHandler creates a handler for saving carrier
// configuration.
func NewSaveCredentialsCommandHandler(uowFactory SettingsUoWFactory) SaveCredentialsCommandHandler {
	return SaveCredentialsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the save-credentials command.
func (h SaveCredentialsCommandHandler) Handle(ctx context.Context, cmd SaveCredentialsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().SaveCarrierCredentials(ctx, cmd.Credentials()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
