package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDefaultCourierNotConfigured aborts a batch before any order is
	// touched: without a default courier no auto-shipped order could get a
	// waybill, and a partially configured sweep must not produce
	// partially-shipped batches.
	ErrDefaultCourierNotConfigured = errors.New("default courier is not configured")
)

// AutoShipOrderResult records the outcome of one order within a batch run.
type AutoShipOrderResult struct {
	OrderID           kernel.UUID
	Success           bool
	CarrierOrderID    int64
	CarrierShipmentID int64
	AWBCode           *string
	Error             string
}

// AutoShipResult reports a complete batch run. Eligible, Succeeded, and
// Failed let operators distinguish "nothing was eligible" from "everything
// failed"; Orders carries the per-order detail.
type AutoShipResult struct {
	Eligible  int
	Succeeded int
	Failed    int
	Skipped   bool
	Orders    []AutoShipOrderResult
}

// AutoShipCommandHandler sweeps all eligible orders through the single-order
// shipment pipeline.
//
// Eligibility: confirmed, never submitted to the carrier, and not
// cash-on-delivery (COD orders need manual courier assignment for payment
// reconciliation).
//
// Orders are processed sequentially, never concurrently: the carrier API is
// rate-limited and the pickup/courier configuration is shared state, so
// serializing avoids both rate-limit violations and two sweeps racing on the
// same order's idempotency guard. One order's failure is recorded and never
// stops the batch; every eligible order is attempted exactly once.
type AutoShipCommandHandler struct {
	uowFactory UoWFactory
	shipper    OrderShipper
}

// NewAutoShipCommandHandler creates a handler for batch auto-ship runs.
func NewAutoShipCommandHandler(uowFactory UoWFactory, shipper OrderShipper) AutoShipCommandHandler {
	return AutoShipCommandHandler{
		uowFactory: uowFactory,
		shipper:    shipper,
	}
}

// Handle processes the auto-ship command.
//
// Fails fast with ErrCarrierNotConfigured or ErrDefaultCourierNotConfigured
// before touching any order. A scheduled run with the auto-ship switch off
// returns a skipped result without selecting orders.
func (h AutoShipCommandHandler) Handle(ctx context.Context, cmd AutoShipCommand) (AutoShipResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoShipResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoShipResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	creds, err := uow.SettingsRepository().GetCarrierCredentials(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AutoShipResult{}, ErrCarrierNotConfigured
	}
	if err != nil {
		return AutoShipResult{}, err
	}

	if cmd.Scheduled() && !creds.AutoShipEnabled() {
		return AutoShipResult{Skipped: true}, nil
	}

	defaultCourier := creds.DefaultCourierID()
	if defaultCourier == nil {
		return AutoShipResult{}, ErrDefaultCourierNotConfigured
	}

	eligible, err := uow.OrderRepository().GetAutoShipEligible(ctx)
	if err != nil {
		return AutoShipResult{}, err
	}

	// Release the read transaction before the sweep; each shipment attempt
	// manages its own transaction and row lock.
	if err = uow.Commit(ctx); err != nil {
		return AutoShipResult{}, err
	}

	result := AutoShipResult{
		Eligible: len(eligible),
		Orders:   make([]AutoShipOrderResult, 0, len(eligible)),
	}

	for _, o := range eligible {
		orderResult := AutoShipOrderResult{OrderID: o.ID()}

		shipCmd, cmdErr := NewShipOrderCommand(o.ID(), defaultCourier)
		if cmdErr != nil {
			orderResult.Error = cmdErr.Error()
			result.Failed++
			result.Orders = append(result.Orders, orderResult)
			continue
		}

		shipped, shipErr := h.shipper.Handle(ctx, shipCmd)
		if shipErr != nil {
			orderResult.Error = shipErr.Error()
			result.Failed++
		} else {
			orderResult.Success = true
			orderResult.CarrierOrderID = shipped.CarrierOrderID
			orderResult.CarrierShipmentID = shipped.CarrierShipmentID
			orderResult.AWBCode = shipped.AWBCode
			result.Succeeded++
		}

		result.Orders = append(result.Orders, orderResult)
	}

	return result, nil
}
