package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterPickupAddressCommandIsNotConstructed = errors.New(
		"RegisterPickupAddressCommand must be created via NewRegisterPickupAddressCommand constructor",
	)
)

// RegisterPickupAddressCommand represents a first-time pickup location
// registration for a seller. The raw field map is accepted as clients send it;
// synonym coalescing into canonical fields happens in the handler.
type RegisterPickupAddressCommand struct { //nolint:recvcheck //using for validation
	sellerID  kernel.UUID
	rawFields map[string]string

	guard guard.ConstructorGuard
}

// NewRegisterPickupAddressCommand creates a pickup registration command from
// raw client input. Field-level validation is deferred until the coalesced
// fields are known.
func NewRegisterPickupAddressCommand(
	sellerID kernel.UUID, rawFields map[string]string,
) (RegisterPickupAddressCommand, error) {
	if err := sellerID.Validate(); err != nil {
		return RegisterPickupAddressCommand{}, err
	}

	return RegisterPickupAddressCommand{
		sellerID:  sellerID,
		rawFields: rawFields,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPickupAddressCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPickupAddressCommandIsNotConstructed)
}

// SellerID returns the registering seller's identifier.
func (c RegisterPickupAddressCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Fields returns the canonical pickup fields after synonym coalescing.
func (c RegisterPickupAddressCommand) Fields() settings.PickupFields {
	return settings.CoalescePickupFields(c.rawFields)
}
