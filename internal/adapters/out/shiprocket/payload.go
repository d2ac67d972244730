package shiprocket

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// orderDateLayout is the timestamp format the carrier expects for order_date.
const orderDateLayout = "2006-01-02 15:04"

// MinimumChargeableWeightKg is the smallest weight the carrier accepts.
// Orders whose aggregated weight rounds below it are billed at the floor.
const MinimumChargeableWeightKg = 0.5

const (
	paymentMethodCOD     = "COD"
	paymentMethodPrepaid = "Prepaid"
)

// defaultPickupLocation must match the registered pickup location name;
// orders reference the location by name, not by id.
const defaultPickupLocation = "Primary"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type orderItemPayload struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

type orderPayload struct {
	OrderID             string             `json:"order_id"`
	OrderDate           string             `json:"order_date"`
	PickupLocation      string             `json:"pickup_location"`
	BillingCustomerName string             `json:"billing_customer_name"`
	BillingLastName     string             `json:"billing_last_name"`
	BillingAddress      string             `json:"billing_address"`
	BillingCity         string             `json:"billing_city"`
	BillingPincode      string             `json:"billing_pincode"`
	BillingState        string             `json:"billing_state"`
	BillingCountry      string             `json:"billing_country"`
	BillingEmail        string             `json:"billing_email"`
	BillingPhone        string             `json:"billing_phone"`
	ShippingIsBilling   bool               `json:"shipping_is_billing"`
	OrderItems          []orderItemPayload `json:"order_items"`
	PaymentMethod       string             `json:"payment_method"`
	SubTotal            float64            `json:"sub_total"`
	Length              int                `json:"length"`
	Breadth             int                `json:"breadth"`
	Height              int                `json:"height"`
	Weight              float64            `json:"weight"`
}

type createOrderResponse struct {
	OrderID    int64 `json:"order_id"`
	ShipmentID int64 `json:"shipment_id"`
}

type createShipmentRequest struct {
	ShipmentID int64 `json:"shipment_id"`
	CourierID  int64 `json:"courier_id"`
}

type createShipmentResponse struct {
	AWBCode              string `json:"awb_code"`
	CourierName          string `json:"courier_name"`
	ExpectedDeliveryDate string `json:"expected_delivery_date"`
}

type pickupPayload struct {
	PickupLocation string `json:"pickup_location"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Address2       string `json:"address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	PinCode        string `json:"pin_code"`
}

type serviceabilityPayload struct {
	PickupPostcode   string  `json:"pickup_postcode"`
	DeliveryPostcode string  `json:"delivery_postcode"`
	Weight           float64 `json:"weight"`
	COD              int     `json:"cod"`
	Length           int     `json:"length"`
	Breadth          int     `json:"breadth"`
	Height           int     `json:"height"`
}

type serviceabilityResponse struct {
	Data struct {
		AvailableCourierCompanies []struct {
			CourierCompanyID      int64   `json:"courier_company_id"`
			CourierName           string  `json:"courier_name"`
			Rate                  float64 `json:"rate"`
			EstimatedDeliveryDays string  `json:"estimated_delivery_days"`
			COD                   int     `json:"cod"`
		} `json:"available_courier_companies"`
	} `json:"data"`
}

type courierListResponse struct {
	CourierData []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"courier_data"`
}

// newOrderPayload maps a shipment request onto the carrier's order-creation
// body. This is the single place where minor currency units become major
// units and grams become kilograms.
func newOrderPayload(req ports.ShipmentRequest) (orderPayload, error) {
	if req.Order == nil {
		return orderPayload{}, errs.NewValueIsRequiredError("order")
	}
	if err := req.Order.Validate(); err != nil {
		return orderPayload{}, err
	}

	firstName, lastName := splitName(req.Customer.Name)

	items := make([]orderItemPayload, 0, len(req.Order.Items()))
	for _, item := range req.Order.Items() {
		sku := itemSKU(item.ProductID())
		items = append(items, orderItemPayload{
			Name:         sku,
			SKU:          sku,
			Units:        item.Quantity(),
			SellingPrice: item.Price().MajorUnits(),
		})
	}

	paymentMethod := paymentMethodPrepaid
	if req.Order.PaymentMethod().IsCashOnDelivery() {
		paymentMethod = paymentMethodCOD
	}

	phone := req.Address.Phone
	if phone == "" {
		phone = req.Customer.Phone
	}

	return orderPayload{
		OrderID:             req.Order.ID().String(),
		OrderDate:           req.Order.PlacedAt().Format(orderDateLayout),
		PickupLocation:      defaultPickupLocation,
		BillingCustomerName: firstName,
		BillingLastName:     lastName,
		BillingAddress:      req.Address.Address,
		BillingCity:         req.Address.City,
		BillingPincode:      req.Address.Pincode,
		BillingState:        req.Address.State,
		BillingCountry:      req.Address.Country,
		BillingEmail:        req.Customer.Email,
		BillingPhone:        phone,
		ShippingIsBilling:   true,
		OrderItems:          items,
		PaymentMethod:       paymentMethod,
		SubTotal:            req.Order.Total().MajorUnits(),
		Length:              req.Metrics.Bounding.Length(),
		Breadth:             req.Metrics.Bounding.Width(),
		Height:              req.Metrics.Bounding.Height(),
		Weight:              chargeableWeightKg(req.Metrics.TotalWeight),
	}, nil
}

func newPickupPayload(fields settings.PickupFields) pickupPayload {
	return pickupPayload{
		PickupLocation: fields.LocationName,
		Name:           fields.ContactName,
		Email:          fields.Email,
		Phone:          fields.Phone,
		Address:        fields.Address,
		Address2:       fields.AddressLine2,
		City:           fields.City,
		State:          fields.State,
		Country:        fields.Country,
		PinCode:        fields.Pincode,
	}
}

func newServiceabilityPayload(query ports.ServiceabilityQuery) serviceabilityPayload {
	cod := 0
	if query.CashOnDelivery {
		cod = 1
	}

	weight := query.WeightKg
	if weight < MinimumChargeableWeightKg {
		weight = MinimumChargeableWeightKg
	}

	return serviceabilityPayload{
		PickupPostcode:   query.PickupPostcode,
		DeliveryPostcode: query.DeliveryPostcode,
		Weight:           weight,
		COD:              cod,
		Length:           query.LengthCm,
		Breadth:          query.BreadthCm,
		Height:           query.HeightCm,
	}
}

// itemSKU synthesizes a stable per-line identifier from the product id so the
// carrier always receives the same SKU for the same product.
func itemSKU(productID kernel.UUID) string {
	return fmt.Sprintf("SKU-%s", productID.String())
}

func chargeableWeightKg(weight kernel.Weight) float64 {
	kg := weight.Kilograms()
	if kg < MinimumChargeableWeightKg {
		return MinimumChargeableWeightKg
	}
	return kg
}

// splitName breaks a full customer name into the carrier's first/last fields.
// A single-word name goes into the first-name field with an empty last name.
func splitName(full string) (string, string) {
	trimmed := strings.TrimSpace(full)
	idx := strings.LastIndex(trimmed, " ")
	if idx < 0 {
		return trimmed, ""
	}
	return strings.TrimSpace(trimmed[:idx]), trimmed[idx+1:]
}
