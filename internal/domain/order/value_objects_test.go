//go:build unit

package order_test

import (
	"strings"
	"testing"

	"storefront/internal/domain/order"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShippingAddress(t *testing.T) {
	base := builder.NewOrderBuilder().Shipping()

	tests := []struct {
		name   string
		mutate func(*order.ShippingAddress)
		errIs  error
	}{
		{name: "valid", mutate: func(*order.ShippingAddress) {}},
		{name: "lower case country is accepted", mutate: func(a *order.ShippingAddress) { a.Country = " ro " }},
		{name: "name too short", mutate: func(a *order.ShippingAddress) { a.Name = "A" }, errIs: order.ErrInvalidShippingAddress},
		{name: "name only spaces", mutate: func(a *order.ShippingAddress) { a.Name = "     " }, errIs: order.ErrInvalidShippingAddress},
		{name: "address too short", mutate: func(a *order.ShippingAddress) { a.AddressLine1 = "abc" }, errIs: order.ErrInvalidShippingAddress},
		{name: "phone too long", mutate: func(a *order.ShippingAddress) { a.Phone = strings.Repeat("1", 31) }, errIs: order.ErrInvalidShippingAddress},
		{name: "country of three letters", mutate: func(a *order.ShippingAddress) { a.Country = "ROU" }, errIs: order.ErrInvalidShippingAddress},
		{name: "missing postal code", mutate: func(a *order.ShippingAddress) { a.PostalCode = "" }, errIs: order.ErrInvalidShippingAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)

			got, err := order.NewShippingAddress(in)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "RO", got.Country)
		})
	}
}

func TestNewGuestEmail(t *testing.T) {
	ptr := func(s string) *string { return &s }

	got, err := order.NewGuestEmail(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = order.NewGuestEmail(ptr("   "))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = order.NewGuestEmail(ptr(" Guest@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", *got)

	_, err = order.NewGuestEmail(ptr("not-an-email"))
	require.ErrorIs(t, err, order.ErrInvalidGuestEmail)
}
