//go:build unit

package request_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"storefront/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRequest(a request.ShippingAddressRequest) *request.CheckoutRequest {
	return &request.CheckoutRequest{
		Items:           []request.CheckoutItemRequest{{ProductID: 1, Quantity: 1}},
		ShippingAddress: a,
		Locale:          "ro",
	}
}

func address() request.ShippingAddressRequest {
	return request.ShippingAddressRequest{
		Name:         "Ana Pop",
		AddressLine1: "Str. Lunga 10",
		City:         "Brasov",
		PostalCode:   "500035",
		Country:      "ro",
	}
}

func TestCheckoutRequestToDomain(t *testing.T) {
	tests := []struct {
		name   string
		modify func(a *request.ShippingAddressRequest)
		check  func(t *testing.T, name, line1, city string)
	}{
		{
			name:   "apostrophe is kept literal",
			modify: func(a *request.ShippingAddressRequest) { a.Name = "Ana O'Brien" },
			check: func(t *testing.T, name, _, _ string) {
				assert.Equal(t, "Ana O'Brien", name)
			},
		},
		{
			name:   "ampersand is kept literal",
			modify: func(a *request.ShippingAddressRequest) { a.AddressLine1 = "Str. Smith & Sons 5" },
			check: func(t *testing.T, _, line1, _ string) {
				assert.Equal(t, "Str. Smith & Sons 5", line1)
			},
		},
		{
			name:   "quotes and angle brackets in plain text survive",
			modify: func(a *request.ShippingAddressRequest) { a.City = `Targu "Nou" 3 > 2` },
			check: func(t *testing.T, _, _, city string) {
				assert.Equal(t, `Targu "Nou" 3 > 2`, city)
			},
		},
		{
			name:   "markup is stripped",
			modify: func(a *request.ShippingAddressRequest) { a.Name = "  <b>Ana</b> <script>alert(1)</script>Pop " },
			check: func(t *testing.T, name, _, _ string) {
				assert.Equal(t, "Ana Pop", name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := address()
			tt.modify(&a)

			got := checkoutRequest(a).ToDomain()

			tt.check(t, got.Shipping.Name, got.Shipping.AddressLine1, got.Shipping.City)
			assert.Equal(t, "RO", got.Shipping.Country)
		})
	}
}

func TestCheckoutRequestToDomainKeepsBounds(t *testing.T) {
	a := address()
	a.Name = strings.Repeat("O'B ", 24) + "Anna"
	require.Equal(t, 100, utf8.RuneCountInString(a.Name))

	got, err := checkoutRequest(a).ToDomain().Validate([]string{"ro", "en"})

	require.NoError(t, err)
	assert.Equal(t, a.Name, got.Shipping.Name)
	assert.Equal(t, 100, utf8.RuneCountInString(got.Shipping.Name))
}
