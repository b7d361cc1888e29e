package domain

import (
	"fmt"
	"strings"
)

// DefaultCountry is preselected on new delivery details.
const DefaultCountry = "United States"

// DeliveryDetails is the shipping address and contact of an order.
type DeliveryDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// NewDeliveryDetails returns empty details with the default country.
func NewDeliveryDetails() DeliveryDetails {
	return DeliveryDetails{Country: DefaultCountry}
}

// MissingFields lists the required fields that are empty. Only presence is
// checked. Country is optional.
func (d DeliveryDetails) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"city", d.City},
		{"state", d.State},
		{"zipCode", d.ZipCode},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Validate returns ErrIncompleteDelivery naming every empty required field.
func (d DeliveryDetails) Validate() error {
	if missing := d.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteDelivery, strings.Join(missing, ", "))
	}
	return nil
}

// FullName joins first and last name.
func (d DeliveryDetails) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// AddressLine formats the address on one line.
func (d DeliveryDetails) AddressLine() string {
	parts := []string{d.Address, d.City, strings.TrimSpace(d.State + " " + d.ZipCode)}
	if d.Country != "" {
		parts = append(parts, d.Country)
	}
	return strings.Join(parts, ", ")
}
