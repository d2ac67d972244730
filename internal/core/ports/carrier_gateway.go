package ports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/domain/services"
)

var (
	// ErrAuthenticationFailed indicates the stored carrier credentials were
	// rejected (HTTP 401 or an auth-failure marker in the response body).
	// The seller must fix the credentials; the call is never retried.
	ErrAuthenticationFailed = errors.New("carrier authentication failed: check the configured email and password")

	// ErrPermissionDenied indicates the carrier account lacks the API access
	// tier required for the call (HTTP 403). The seller must upgrade the
	// carrier plan; the call is never retried.
	ErrPermissionDenied = errors.New("carrier permission denied: the account plan does not include API access")
)

// CarrierAPIError is any other non-2xx carrier response. The message and raw
// body are preserved for support diagnostics. Such calls are safe to retry
// later because no local state is mutated before a failing carrier call.
type CarrierAPIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *CarrierAPIError) Error() string {
	return fmt.Sprintf("carrier api error: status %d: %s", e.StatusCode, e.Message)
}

// ShipmentRequest carries everything the gateway needs to build the carrier's
// order-creation payload: the order itself, the resolved customer and address,
// and the computed package metrics.
type ShipmentRequest struct {
	Order    *order.Order
	Customer customer.Customer
	Address  customer.ShippingAddress
	Metrics  services.PackageMetrics
}

// CarrierOrder is the carrier's acknowledgement of an order-creation call.
// Both ids become the order's idempotency guard once recorded.
type CarrierOrder struct {
	OrderID    int64
	ShipmentID int64
}

// Waybill is the carrier's acknowledgement of a shipment-creation call.
type Waybill struct {
	AWBCode           string
	CourierName       string
	EstimatedDelivery *time.Time
}

// Courier is a carrier-side courier company option.
type Courier struct {
	ID   int64
	Name string
}

// CourierRate is a serviceability result for a concrete shipment profile.
type CourierRate struct {
	CourierID     int64
	Name          string
	Rate          float64
	EstimatedDays string
	CODAvailable  bool
}

// ServiceabilityQuery describes the shipment profile used to compute rates.
type ServiceabilityQuery struct {
	PickupPostcode   string
	DeliveryPostcode string
	WeightKg         float64
	CashOnDelivery   bool
	LengthCm         int
	BreadthCm        int
	HeightCm         int
}

// CarrierGateway is the outbound port to the logistics carrier's HTTP API.
// All privileged calls take the bearer token minted by Login; implementations
// impose a bounded per-call timeout so a slow carrier cannot stall a batch run.
type CarrierGateway interface {
	// Login exchanges the stored credentials for a fresh bearer token.
	// Failures are classified into ErrAuthenticationFailed, ErrPermissionDenied,
	// or a CarrierAPIError.
	Login(ctx context.Context, email, password string) (string, error)

	// CreateOrder submits the order to the carrier and returns its
	// correlation ids. Monetary and weight conversions to carrier units
	// happen inside the gateway, at the payload boundary only.
	CreateOrder(ctx context.Context, token string, req ShipmentRequest) (CarrierOrder, error)

	// CreateShipment assigns a courier to an already-created carrier order,
	// producing the waybill.
	CreateShipment(ctx context.Context, token string, carrierShipmentID, courierID int64) (Waybill, error)

	// RegisterPickup registers the seller's pickup location with the carrier.
	RegisterPickup(ctx context.Context, token string, pickup *settings.PickupAddress) error

	// ListCouriers retrieves the carrier's courier companies.
	ListCouriers(ctx context.Context, token string) ([]Courier, error)

	// CheckServiceability retrieves available couriers and rates for a
	// concrete shipment profile.
	CheckServiceability(ctx context.Context, token string, query ServiceabilityQuery) ([]CourierRate, error)
}
