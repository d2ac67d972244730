package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrAutoShipCommandIsNotConstructed = errors.New(
		"AutoShipCommand must be created via NewAutoShipCommand constructor",
	)
)

// AutoShipCommand represents a request to ship every eligible confirmed order
// with the configured default courier.
//
// A scheduled command (from the cron job) additionally honors the seller's
// auto-ship switch: when the switch is off, the run is a silent no-op.
// A manual trigger ignores the switch.
type AutoShipCommand struct {
	scheduled bool

	guard guard.ConstructorGuard
}

// NewAutoShipCommand creates a manually triggered auto-ship command.
func NewAutoShipCommand() AutoShipCommand {
	return AutoShipCommand{guard: guard.NewConstructorGuard()}
}

// NewScheduledAutoShipCommand creates a scheduler-triggered auto-ship command.
func NewScheduledAutoShipCommand() AutoShipCommand {
	return AutoShipCommand{scheduled: true, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through a constructor.
func (c AutoShipCommand) Validate() error {
	return c.guard.Validate(ErrAutoShipCommandIsNotConstructed)
}

// Scheduled reports whether the scheduler triggered this run.
func (c AutoShipCommand) Scheduled() bool {
	return c.scheduled
}
