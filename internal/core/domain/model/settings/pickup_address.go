package settings

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPickupAddressIsNotConstructed is returned when a PickupAddress instance
// was not created through its factory methods.
var ErrPickupAddressIsNotConstructed = errors.New(
	"PickupAddress must be created via NewPickupAddress or RestorePickupAddress constructor")

// PickupFields is the canonical pickup location payload after synonym
// coalescing. Use CoalescePickupFields to build it from raw client input.
type PickupFields struct {
	LocationName string
	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	Address      string
	AddressLine2 string
	City         string
	State        string
	Country      string
	Pincode      string
}

// pickupFieldSynonyms maps every historically accepted key spelling to its
// canonical field. Older clients used several spellings for the same logical
// field; all of them must keep working.
var pickupFieldSynonyms = map[string]string{
	"location_name": "location_name",
	"nickname":      "location_name",

	"business_name": "business_name",
	"company":       "business_name",
	"company_name":  "business_name",

	"contact_name":   "contact_name",
	"name":           "contact_name",
	"contact_person": "contact_name",

	"email": "email",

	"phone":        "phone",
	"phone_number": "phone",
	"mobile":       "phone",

	"address":       "address",
	"address_line1": "address",

	"address_2":     "address_line2",
	"address_line2": "address_line2",

	"city":  "city",
	"state": "state",

	"country": "country",

	"pincode":     "pincode",
	"pin_code":    "pincode",
	"postal_code": "pincode",
	"zip":         "pincode",
	"zipcode":     "pincode",
}

// CoalescePickupFields normalizes raw client input into canonical pickup
// fields. When multiple synonyms for the same field are present, the first
// non-empty value in the canonical spelling wins, then synonyms in map
// iteration order fill remaining gaps. Unknown keys are ignored.
func CoalescePickupFields(raw map[string]string) PickupFields {
	canonical := make(map[string]string, len(raw))

	// Canonical spellings take precedence over their synonyms.
	for key, value := range raw {
		if value == "" {
			continue
		}
		target, ok := pickupFieldSynonyms[key]
		if !ok || target != key {
			continue
		}
		canonical[target] = value
	}

	for key, value := range raw {
		if value == "" {
			continue
		}
		target, ok := pickupFieldSynonyms[key]
		if !ok {
			continue
		}
		if _, taken := canonical[target]; !taken {
			canonical[target] = value
		}
	}

	return PickupFields{
		LocationName: canonical["location_name"],
		BusinessName: canonical["business_name"],
		ContactName:  canonical["contact_name"],
		Email:        canonical["email"],
		Phone:        canonical["phone"],
		Address:      canonical["address"],
		AddressLine2: canonical["address_line2"],
		City:         canonical["city"],
		State:        canonical["state"],
		Country:      canonical["country"],
		Pincode:      canonical["pincode"],
	}
}

// PickupAddress is the seller's registered origin location. It is write-once:
// once persisted for a seller, update attempts are refused and only support
// tooling may change it out-of-band.
//
// Registration with the carrier is best-effort; carrierSynced records whether
// the carrier has acknowledged the location.
type PickupAddress struct {
	sellerID kernel.UUID
	fields   PickupFields

	carrierSynced bool
	isConstructed bool
}

// NewPickupAddress creates a pickup address with validation. Contact name,
// phone, street address, city, state, and pincode are required; location name
// defaults to "Primary" and country to "India" when absent.
func NewPickupAddress(sellerID kernel.UUID, fields PickupFields) (*PickupAddress, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}

	required := map[string]string{
		"contact_name": fields.ContactName,
		"phone":        fields.Phone,
		"address":      fields.Address,
		"city":         fields.City,
		"state":        fields.State,
		"pincode":      fields.Pincode,
	}
	for name, value := range required {
		if value == "" {
			return nil, errs.NewValueIsRequiredError(name)
		}
	}

	if fields.LocationName == "" {
		fields.LocationName = "Primary"
	}
	if fields.Country == "" {
		fields.Country = "India"
	}

	return &PickupAddress{
		sellerID:      sellerID,
		fields:        fields,
		isConstructed: true,
	}, nil
}

// RestorePickupAddress reconstructs a pickup address from persistence.
func RestorePickupAddress(sellerID kernel.UUID, fields PickupFields, carrierSynced bool) (*PickupAddress, error) {
	p, err := NewPickupAddress(sellerID, fields)
	if err != nil {
		return nil, err
	}
	p.carrierSynced = carrierSynced
	return p, nil
}

// Validate ensures the aggregate was properly constructed.
func (p *PickupAddress) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickupAddressIsNotConstructed
	}
	return nil
}

// SellerID returns the owning seller's identifier.
func (p *PickupAddress) SellerID() kernel.UUID {
	return p.sellerID
}

// Fields returns the canonical pickup location fields.
func (p *PickupAddress) Fields() PickupFields {
	return p.fields
}

// CarrierSynced reports whether the carrier has acknowledged the location.
func (p *PickupAddress) CarrierSynced() bool {
	return p.carrierSynced
}

// MarkCarrierSynced records a successful carrier registration.
func (p *PickupAddress) MarkCarrierSynced() {
	p.carrierSynced = true
}
