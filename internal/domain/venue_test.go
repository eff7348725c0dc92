package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethods(t *testing.T) {
	tests := []struct {
		name            string
		tags            []string
		expectedMethods []PaymentMethod
		expectedUnknown []string
	}{
		{
			name:            "all known",
			tags:            []string{"cash", "venmo", "apple_pay"},
			expectedMethods: []PaymentMethod{PaymentCash, PaymentVenmo, PaymentApplePay},
		},
		{
			name:            "unknown tag dropped",
			tags:            []string{"cash", "bitcoin"},
			expectedMethods: []PaymentMethod{PaymentCash},
			expectedUnknown: []string{"bitcoin"},
		},
		{
			name:            "duplicates collapse",
			tags:            []string{"credit_card", "credit_card", " credit_card "},
			expectedMethods: []PaymentMethod{PaymentCreditCard},
		},
		{
			name:            "nil tags",
			tags:            nil,
			expectedMethods: []PaymentMethod{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods, unknown := ParsePaymentMethods(tt.tags)
			assert.Equal(t, tt.expectedMethods, methods)
			assert.Equal(t, tt.expectedUnknown, unknown)
		})
	}
}

func TestPaymentMethod_Label(t *testing.T) {
	assert.Equal(t, "Google Pay", PaymentGooglePay.Label())
	assert.Equal(t, "Credit Card", PaymentCreditCard.Label())
	assert.Equal(t, "gift card", PaymentMethod("gift_card").Label())
}

func TestVenueLocation_MapURL(t *testing.T) {
	v := &VenueLocation{
		AddressLine1: "3131 Dunes Dr",
		AddressLine2: "Michigan City, IN 46360",
	}
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=3131+Dunes+Dr%2C+Michigan+City%2C+IN+46360",
		v.MapURL())

	v.AddressLine2 = "  "
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=3131+Dunes+Dr", v.MapURL())
}

func TestVenueLocation_HasConcessions(t *testing.T) {
	yes, no := true, false

	assert.False(t, (&VenueLocation{}).HasConcessions())
	assert.False(t, (&VenueLocation{Concessions: &no}).HasConcessions())
	assert.True(t, (&VenueLocation{Concessions: &yes}).HasConcessions())
}
