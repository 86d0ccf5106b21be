//go:build unit

package checkout_test

import (
	"testing"

	"storefront/internal/domain/checkout"
	"storefront/internal/domain/order"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supported = []string{"ro", "en"}

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []checkout.Line
		want  []checkout.Line
		errIs error
	}{
		{name: "empty", errIs: checkout.ErrNoItems},
		{
			name:  "merges duplicates keeping first-seen order",
			lines: []checkout.Line{{ProductID: 2, Quantity: 1}, {ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}},
			want:  []checkout.Line{{ProductID: 2, Quantity: 4}, {ProductID: 1, Quantity: 2}},
		},
		{name: "zero quantity", lines: []checkout.Line{{ProductID: 1, Quantity: 0}}, errIs: checkout.ErrInvalidQuantity},
		{name: "quantity above max", lines: []checkout.Line{{ProductID: 1, Quantity: 100}}, errIs: checkout.ErrInvalidQuantity},
		{
			name:  "merged quantity above max",
			lines: []checkout.Line{{ProductID: 1, Quantity: 60}, {ProductID: 1, Quantity: 40}},
			errIs: checkout.ErrInvalidQuantity,
		},
		{name: "invalid product id", lines: []checkout.Line{{ProductID: 0, Quantity: 1}}, errIs: checkout.ErrInvalidProductID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checkout.NormalizeLines(tt.lines)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("too many lines", func(t *testing.T) {
		lines := make([]checkout.Line, checkout.MaxLines+1)
		for i := range lines {
			lines[i] = checkout.Line{ProductID: int64(i + 1), Quantity: 1}
		}
		_, err := checkout.NormalizeLines(lines)
		require.ErrorIs(t, err, checkout.ErrTooManyLines)
	})
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		errIs error
	}{
		{in: "", want: "ro"},
		{in: "en", want: "en"},
		{in: "en-GB", want: "en"},
		{in: "ro_RO", want: "ro"},
		{in: "de", errIs: checkout.ErrUnsupportedLocale},
		{in: "!!", errIs: checkout.ErrUnsupportedLocale},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := checkout.NormalizeLocale(tt.in, supported)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestValidate(t *testing.T) {
	email := "  Guest@Example.com"
	req := checkout.Request{
		Lines:      []checkout.Line{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 1}},
		Shipping:   builder.NewOrderBuilder().Shipping(),
		GuestEmail: &email,
		Locale:     "en-US",
	}

	got, err := req.Validate(supported)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got.ProductIDs())
	assert.Equal(t, "guest@example.com", *got.GuestEmail)
	assert.Equal(t, "en", got.Locale)

	req.Shipping.Country = "Romania"
	_, err = req.Validate(supported)
	require.ErrorIs(t, err, order.ErrInvalidShippingAddress)
}
