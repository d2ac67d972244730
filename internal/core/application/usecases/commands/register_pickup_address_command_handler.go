package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrPickupAddressLocked is returned when the seller already has a pickup
	// address on record. The address is write-once; changing it requires
	// support tooling, not this endpoint.
	ErrPickupAddressLocked = errors.New("pickup address is already registered and cannot be changed")
)

// RegisterPickupAddressResult reports a registration outcome. CarrierSyncError
// is advisory: the address is saved locally even when the carrier rejected or
// never received the registration, and the sync can be repeated later.
type RegisterPickupAddressResult struct {
	Fields           settings.PickupFields
	CarrierSynced    bool
	CarrierSyncError string
}

// RegisterPickupAddressCommandHandler persists a seller's pickup location and
// then registers it with the carrier.
//
// Local persistence commits first; the carrier registration runs after the
// commit so a carrier outage can never lose the seller's input. The synced
// flag is flipped in a separate transaction once the carrier acknowledges.
type RegisterPickupAddressCommandHandler struct {
	uowFactory SettingsUoWFactory
	gateway    ports.CarrierGateway
	tokens     TokenManager
}

// NewRegisterPickupAddressCommandHandler creates a handler for pickup
// registration.
func NewRegisterPickupAddressCommandHandler(
	uowFactory SettingsUoWFactory,
	gateway ports.CarrierGateway,
	tokens TokenManager,
) RegisterPickupAddressCommandHandler {
	return RegisterPickupAddressCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		tokens:     tokens,
	}
}

// Handle processes the pickup registration command.
//
// Refuses with ErrPickupAddressLocked when the seller already registered an
// address. Carrier sync failures come back inside the result, never as the
// returned error.
func (h RegisterPickupAddressCommandHandler) Handle(
	ctx context.Context, cmd RegisterPickupAddressCommand,
) (RegisterPickupAddressResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterPickupAddressResult{}, err
	}

	pickup, err := settings.NewPickupAddress(cmd.SellerID(), cmd.Fields())
	if err != nil {
		return RegisterPickupAddressResult{}, err
	}

	if err = h.saveLocked(ctx, pickup); err != nil {
		return RegisterPickupAddressResult{}, err
	}

	result := RegisterPickupAddressResult{Fields: pickup.Fields()}

	if syncErr := h.syncWithCarrier(ctx, pickup); syncErr != nil {
		result.CarrierSyncError = syncErr.Error()
		return result, nil
	}

	result.CarrierSynced = true
	return result, nil
}

// saveLocked persists the first registration, refusing when one exists.
func (h RegisterPickupAddressCommandHandler) saveLocked(
	ctx context.Context, pickup *settings.PickupAddress,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.SettingsRepository().GetPickupAddress(ctx, pickup.SellerID())
	if err == nil {
		return ErrPickupAddressLocked
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = uow.SettingsRepository().AddPickupAddress(ctx, pickup); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// syncWithCarrier registers the saved address with the carrier and records the
// acknowledgement. Runs outside the registration transaction; all failures are
// advisory.
func (h RegisterPickupAddressCommandHandler) syncWithCarrier(
	ctx context.Context, pickup *settings.PickupAddress,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	creds, err := uow.SettingsRepository().GetCarrierCredentials(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCarrierNotConfigured
	}
	if err != nil {
		return err
	}

	token, err := h.tokens.Fresh(ctx, creds)
	if err != nil {
		return err
	}

	if err = h.gateway.RegisterPickup(ctx, token, pickup); err != nil {
		return err
	}

	pickup.MarkCarrierSynced()
	if err = uow.SettingsRepository().UpdatePickupAddress(ctx, pickup); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
