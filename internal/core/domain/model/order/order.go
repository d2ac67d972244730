package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadySubmitted is returned when an order carrying a carrier
	// order id is submitted again. The carrier order id pair is the
	// idempotency guard; a non-nil value means the carrier has already
	// accepted this order and it must never be re-submitted.
	ErrOrderAlreadySubmitted = errors.New("order has already been submitted to the carrier")

	// ErrCarrierOrderIDIsInvalid is returned when the carrier returns a
	// non-positive order id for a create-order call.
	ErrCarrierOrderIDIsInvalid = errors.New("carrier order id must be positive")

	// ErrWaybillRequiresSubmission is returned when a waybill is attached to
	// an order that was never submitted to the carrier.
	ErrWaybillRequiresSubmission = errors.New("waybill can only be attached to a submitted order")
)

// PaymentMethod identifies how the customer paid for the order.
// The fulfillment subsystem only distinguishes cash-on-delivery from everything else.
type PaymentMethod string

const (
	// PaymentMethodCashOnDelivery marks orders paid on delivery. COD orders
	// are excluded from automatic shipping and are sent to the carrier with
	// the "COD" payment marker.
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
)

// IsCashOnDelivery reports whether the order is paid on delivery.
func (p PaymentMethod) IsCashOnDelivery() bool {
	return p == PaymentMethodCashOnDelivery
}

// ShippingStatusProcessing is the shipping status recorded when an order is
// first submitted to the carrier.
const ShippingStatusProcessing = "processing"

// Order represents a marketplace order in the system. It is the aggregate root
// that owns the shipping-related order state and enforces the ship-once
// invariant.
//
// Order follows these invariants:
//   - Must have valid order, user, and address identifiers
//   - Must have at least one line item
//   - Status transitions follow Pending -> Confirmed -> Shipped
//   - A non-nil carrier order id means the order was submitted to the carrier
//     and can never be submitted again
//   - A waybill can only exist on a submitted order
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	addressID     kernel.UUID
	status        Status
	paymentMethod PaymentMethod
	total         kernel.Money
	placedAt      time.Time
	items         []Item

	// Carrier correlation ids. Non-nil carrierOrderID is the idempotency
	// guard: the order has been accepted by the carrier.
	carrierOrderID    *int64
	carrierShipmentID *int64

	// Waybill details, populated only after a successful create-shipment call.
	shippingStatus        string
	awbCode               *string
	courierName           *string
	estimatedDeliveryDate *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the entry point used
// when checkout hands an order to the fulfillment subsystem.
//
// Parameters:
//   - id: Unique identifier for the order
//   - userID: The ordering customer
//   - addressID: The shipping address selected at checkout
//   - paymentMethod: The payment marker recorded by checkout
//   - total: Order total in minor currency units
//   - placedAt: Checkout timestamp
//   - items: Order lines (must be non-empty, each constructed via NewItem)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID kernel.UUID,
	paymentMethod PaymentMethod,
	total kernel.Money,
	placedAt time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddressID(addressID),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.placedAt = placedAt
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its shipping
// state. It validates the consistency between status and carrier ids so that
// corrupted rows are rejected at the repository boundary.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID kernel.UUID,
	status Status,
	paymentMethod PaymentMethod,
	total kernel.Money,
	placedAt time.Time,
	items []Item,
	carrierOrderID *int64,
	carrierShipmentID *int64,
	shippingStatus string,
	awbCode *string,
	courierName *string,
	estimatedDeliveryDate *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, addressID, paymentMethod, total, placedAt, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCarrierIDs(carrierOrderID != nil); err != nil {
		return nil, err
	}

	o.status = status
	o.carrierOrderID = carrierOrderID
	o.carrierShipmentID = carrierShipmentID
	o.shippingStatus = shippingStatus
	o.awbCode = awbCode
	o.courierName = courierName
	o.estimatedDeliveryDate = estimatedDeliveryDate
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the ordering customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// AddressID returns the shipping address identifier.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the payment marker recorded by checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Total returns the order total in minor currency units.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PlacedAt returns the checkout timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Items returns the order lines. The returned slice must not be mutated.
func (o *Order) Items() []Item {
	return o.items
}

// ProductIDs returns the distinct product ids referenced by the order lines.
func (o *Order) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.ProductID()]; ok {
			continue
		}
		seen[item.ProductID()] = struct{}{}
		ids = append(ids, item.ProductID())
	}
	return ids
}

// CarrierOrderID returns the carrier's order correlation id, or nil if the
// order has not been submitted.
func (o *Order) CarrierOrderID() *int64 {
	return o.carrierOrderID
}

// CarrierShipmentID returns the carrier's shipment correlation id, or nil if
// the order has not been submitted.
func (o *Order) CarrierShipmentID() *int64 {
	return o.carrierShipmentID
}

// ShippingStatus returns the shipping progress marker, empty before submission.
func (o *Order) ShippingStatus() string {
	return o.shippingStatus
}

// AWBCode returns the carrier waybill number, or nil while no courier has
// been assigned.
func (o *Order) AWBCode() *string {
	return o.awbCode
}

// CourierName returns the assigned courier's name, or nil while no courier
// has been assigned.
func (o *Order) CourierName() *string {
	return o.courierName
}

// EstimatedDeliveryDate returns the carrier's delivery estimate, or nil while
// no courier has been assigned.
func (o *Order) EstimatedDeliveryDate() *time.Time {
	return o.estimatedDeliveryDate
}

// IsSubmittedToCarrier reports whether the order has been accepted by the
// carrier. A true result means any further submission attempt must be refused.
func (o *Order) IsSubmittedToCarrier() bool {
	return o.carrierOrderID != nil
}

// Confirm transitions the order from Pending to Confirmed.
// Called when checkout confirms payment.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkSubmitted records a successful carrier create-order call and transitions
// the order to Shipped.
//
// This method enforces the ship-once invariant:
//   - Returns ErrOrderAlreadySubmitted if a carrier order id is already recorded
//   - Returns ErrCarrierOrderIDIsInvalid if the carrier returned a non-positive id
//   - The order must currently be Confirmed
//
// On success the order atomically carries the carrier correlation ids, moves
// to Shipped, and its shipping status becomes "processing". A later waybill
// failure does not undo any of this; assigning a courier is a recoverable
// secondary step (see AttachWaybill).
func (o *Order) MarkSubmitted(carrierOrderID, carrierShipmentID int64) error {
	if o.IsSubmittedToCarrier() {
		return ErrOrderAlreadySubmitted
	}
	if carrierOrderID <= 0 {
		return ErrCarrierOrderIDIsInvalid
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrierOrderID = &carrierOrderID
	o.carrierShipmentID = &carrierShipmentID
	o.shippingStatus = ShippingStatusProcessing
	return nil
}

// AttachWaybill records a successful carrier create-shipment call.
//
// The order must already be submitted to the carrier. The AWB code must be
// non-empty; courier name and delivery estimate are recorded as returned.
func (o *Order) AttachWaybill(awbCode, courierName string, estimatedDelivery *time.Time) error {
	if !o.IsSubmittedToCarrier() {
		return ErrWaybillRequiresSubmission
	}
	if awbCode == "" {
		return errs.NewValueIsRequiredError("awbCode")
	}

	o.awbCode = &awbCode
	if courierName != "" {
		o.courierName = &courierName
	}
	o.estimatedDeliveryDate = estimatedDelivery
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("order item is invalid: %w", err)
		}
	}
	o.items = items
	return nil
}
