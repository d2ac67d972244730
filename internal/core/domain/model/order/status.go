package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order as seen by the
// fulfillment subsystem. It implements a state machine with defined
// transitions to ensure orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped
//
// A failed shipment attempt performs no transition at all; there is no
// explicit failed state and the order simply stays where it was.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by checkout before payment
	// confirmation. Pending orders are not eligible for shipment.
	Pending

	// Confirmed indicates checkout has confirmed the order.
	// Only confirmed orders can be submitted to the carrier.
	Confirmed

	// Shipped indicates the order has been submitted to the carrier.
	// This is a final state for this subsystem; orders are never un-shipped.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Confirmed, Shipped.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return Confirmed, nil
}

// ValidateShip checks if the status allows carrier submission without
// performing the transition. Only Confirmed orders can be shipped.
func (s Status) ValidateShip() error {
	if s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//
// Invalid transitions:
//   - Pending -> Shipped (payment not confirmed)
//   - Shipped -> Shipped (already submitted to the carrier)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateShip(); err != nil {
		return 0, err
	}
	return Shipped, nil
}

// ValidateCanHaveCarrierIDs validates the consistency between order status and
// recorded carrier correlation ids.
//
// Business rules:
//   - Pending and Confirmed orders must not carry carrier ids
//   - Shipped orders must carry a carrier order id
func (s Status) ValidateCanHaveCarrierIDs(hasCarrierOrderID bool) error {
	if hasCarrierOrderID && s != Shipped {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to carry a carrier order id", s.String()),
		)
	}

	if !hasCarrierOrderID && s == Shipped {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s requires a carrier order id", s.String()),
		)
	}

	return nil
}
