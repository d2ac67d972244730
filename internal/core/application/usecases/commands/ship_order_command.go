package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
)

// ShipOrderCommand represents a request to submit one confirmed order to the
// logistics carrier. An optional courier id requests immediate waybill
// assignment; without it only the carrier order is created and a courier can
// be assigned later.
//
// Example:
//
//	courierID := int64(24)
//	cmd, err := NewShipOrderCommand(orderID, &courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid ship request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderAlreadyShipped) {
//	    // Benign: the order was submitted earlier; result carries the
//	    // existing carrier ids.
//	}
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID *int64

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship a single order.
// The courier id is optional but must be positive when present.
func NewShipOrderCommand(orderID kernel.UUID, courierID *int64) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the requested courier, or nil when no waybill should be
// assigned during this call.
func (c ShipOrderCommand) CourierID() *int64 {
	return c.courierID
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setCourierID(courierID *int64) error {
	if courierID != nil && *courierID <= 0 {
		return errs.NewValueIsInvalidError("courierID")
	}
	c.courierID = courierID
	return nil
}
