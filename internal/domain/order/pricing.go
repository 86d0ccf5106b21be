package order

import (
	"storefront/internal/domain/money"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals are base currency amounts. Total == Subtotal - Discount to the cent.
type Totals struct {
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
}

// CalculateTotals applies a flat percentage discount to the sum of line totals.
func CalculateTotals(items []Item, discountPercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	subtotal = money.Round2(subtotal)

	discount := decimal.Zero
	if discountPercent.IsPositive() {
		discount = money.Round2(subtotal.Mul(discountPercent).Div(hundred))
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return Totals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		Discount:        discount,
		Total:           subtotal.Sub(discount),
	}
}
