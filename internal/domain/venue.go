package domain

import (
	"net/url"
	"strings"
)

type PaymentMethod string

const (
	PaymentGooglePay  PaymentMethod = "google_pay"
	PaymentApplePay   PaymentMethod = "apple_pay"
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentVenmo      PaymentMethod = "venmo"
)

var paymentMethods = map[PaymentMethod]string{
	PaymentGooglePay:  "Google Pay",
	PaymentApplePay:   "Apple Pay",
	PaymentCash:       "Cash",
	PaymentCreditCard: "Credit Card",
	PaymentVenmo:      "Venmo",
}

// ParsePaymentMethod reports whether tag is one of the accepted payment methods.
func ParsePaymentMethod(tag string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.TrimSpace(tag))
	_, ok := paymentMethods[m]
	return m, ok
}

// ParsePaymentMethods keeps the recognised tags in their original order,
// drops duplicates, and returns whatever it could not recognise.
func ParsePaymentMethods(tags []string) ([]PaymentMethod, []string) {
	methods := make([]PaymentMethod, 0, len(tags))
	seen := make(map[PaymentMethod]bool, len(tags))
	var unknown []string
	for _, tag := range tags {
		m, ok := ParsePaymentMethod(tag)
		if !ok {
			unknown = append(unknown, tag)
			continue
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		methods = append(methods, m)
	}
	return methods, unknown
}

func (m PaymentMethod) Label() string {
	if label, ok := paymentMethods[m]; ok {
		return label
	}
	return strings.ReplaceAll(string(m), "_", " ")
}

// VenueLocation is a playing venue listed on the locations page.
type VenueLocation struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AddressLine1   string          `json:"addressLine1"`
	AddressLine2   string          `json:"addressLine2"`
	Seating        *string         `json:"seating,omitempty"`
	Concessions    *bool           `json:"concessions,omitempty"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// MapURL returns a Google Maps search link for the venue address.
func (v *VenueLocation) MapURL() string {
	parts := make([]string, 0, 2)
	for _, line := range []string{v.AddressLine1, v.AddressLine2} {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(strings.Join(parts, ", "))
}

func (v *VenueLocation) HasConcessions() bool {
	return v.Concessions != nil && *v.Concessions
}
