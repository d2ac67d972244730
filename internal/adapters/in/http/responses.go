package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrorResponse is the machine-readable error envelope. Every non-2xx reply
// carries an error kind and a remediation message alongside the status code.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ShipOrderRequest carries an optional courier override for a manual ship.
type ShipOrderRequest struct {
	CourierID *int64 `json:"courier_id,omitempty"`
}

// ShipOrderResponse is the outcome of a carrier submission. WaybillError is
// set when the order was submitted but the courier assignment failed and
// needs a manual retry.
type ShipOrderResponse struct {
	OrderID               string     `json:"order_id"`
	Status                string     `json:"status"`
	ShippingStatus        string     `json:"shipping_status"`
	CarrierOrderID        int64      `json:"carrier_order_id"`
	CarrierShipmentID     int64      `json:"carrier_shipment_id"`
	AWBCode               *string    `json:"awb_code,omitempty"`
	CourierName           *string    `json:"courier_name,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	WaybillError          string     `json:"waybill_error,omitempty"`
}

// AutoShipResponse summarizes a batch run.
type AutoShipResponse struct {
	Eligible  int                     `json:"eligible"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
	Skipped   bool                    `json:"skipped"`
	Orders    []AutoShipOrderResponse `json:"orders"`
}

// AutoShipOrderResponse is the per-order outcome inside a batch run.
type AutoShipOrderResponse struct {
	OrderID           string  `json:"order_id"`
	Success           bool    `json:"success"`
	CarrierOrderID    int64   `json:"carrier_order_id,omitempty"`
	CarrierShipmentID int64   `json:"carrier_shipment_id,omitempty"`
	AWBCode           *string `json:"awb_code,omitempty"`
	Error             string  `json:"error,omitempty"`
}

// PendingShipmentOrderResponse is one order in the manual work queue.
type PendingShipmentOrderResponse struct {
	OrderID         string    `json:"order_id"`
	UserID          string    `json:"user_id"`
	PaymentMethod   string    `json:"payment_method"`
	TotalMinorUnits int64     `json:"total_minor_units"`
	PlacedAt        time.Time `json:"placed_at"`
}

// ShippedOrderResponse is one submitted order with its tracking details.
type ShippedOrderResponse struct {
	OrderID               string     `json:"order_id"`
	ShippingStatus        string     `json:"shipping_status"`
	CarrierOrderID        *int64     `json:"carrier_order_id"`
	CarrierShipmentID     *int64     `json:"carrier_shipment_id"`
	AWBCode               *string    `json:"awb_code,omitempty"`
	CourierName           *string    `json:"courier_name,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
}

// SaveCredentialsRequest carries the carrier account configuration. The
// password is accepted here and never echoed back by any endpoint.
type SaveCredentialsRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	DefaultCourierID *int64 `json:"default_courier_id,omitempty"`
	AutoShipEnabled  bool   `json:"auto_ship_enabled"`
}

// CredentialsResponse is the redacted carrier configuration.
type CredentialsResponse struct {
	Email            string     `json:"email"`
	DefaultCourierID *int64     `json:"default_courier_id,omitempty"`
	AutoShipEnabled  bool       `json:"auto_ship_enabled"`
	HasCachedToken   bool       `json:"has_cached_token"`
	TokenRefreshedAt *time.Time `json:"token_refreshed_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PickupAddressResponse is the registered pickup location. CarrierSyncError
// is advisory: the address is saved locally even when the carrier was
// unreachable.
type PickupAddressResponse struct {
	LocationName     string `json:"location_name"`
	BusinessName     string `json:"business_name,omitempty"`
	ContactName      string `json:"contact_name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	AddressLine2     string `json:"address_line2,omitempty"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	Pincode          string `json:"pincode"`
	CarrierSynced    bool   `json:"carrier_synced"`
	CarrierSyncError string `json:"carrier_sync_error,omitempty"`
}

// CourierResponse is one courier option, with rate fields populated only for
// serviceability queries.
type CourierResponse struct {
	CarrierID     int64   `json:"carrier_id"`
	Name          string  `json:"name"`
	Rate          float64 `json:"rate,omitempty"`
	EstimatedDays string  `json:"estimated_days,omitempty"`
	CODAvailable  bool    `json:"cod_available,omitempty"`
}

// errorStatus maps an application error onto an HTTP status and a
// machine-readable kind. Client and configuration faults are 4xx with a
// remediation message; carrier outages are 502 so monitoring can tell them
// from our own failures.
func errorStatus(err error) (int, string) {
	var carrierErr *ports.CarrierAPIError

	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, queries.ErrOrderNotFound):
		return http.StatusNotFound, "order_not_found"
	case errors.Is(err, commands.ErrMissingShippingAddress):
		return http.StatusNotFound, "missing_address"
	case errors.Is(err, commands.ErrMissingCustomer):
		return http.StatusNotFound, "missing_user"
	case errors.Is(err, queries.ErrCarrierCredentialsNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ports.ErrAuthenticationFailed):
		return http.StatusUnauthorized, "authentication_failed"
	case errors.Is(err, ports.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, commands.ErrPickupAddressLocked):
		return http.StatusLocked, "locked"
	case errors.Is(err, commands.ErrCarrierNotConfigured),
		errors.Is(err, commands.ErrDefaultCourierNotConfigured),
		errors.Is(err, queries.ErrPickupOriginNotConfigured):
		return http.StatusUnprocessableEntity, "configuration_error"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return http.StatusBadRequest, "validation_error"
	case errors.As(err, &carrierErr):
		return http.StatusBadGateway, "carrier_api_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func newErrorResponse(err error) (int, ErrorResponse) {
	status, kind := errorStatus(err)
	return status, ErrorResponse{Code: status, Kind: kind, Message: err.Error()}
}
