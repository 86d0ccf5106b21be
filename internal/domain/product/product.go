package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeStock = errors.New("stock cannot be negative")

// Product is the catalog row as the checkout and stock paths see it.
type Product struct {
	ID       int64
	Name     string
	Brand    string
	Slug     string
	VolumeML int
	PriceRON decimal.Decimal
	Stock    int
	ImageURL string
}

func (p Product) HasStockFor(qty int) bool {
	return qty > 0 && p.Stock >= qty
}

func (p Product) IsAvailable() bool {
	return p.Stock > 0
}

// ClampedDecrement subtracts qty from stock without going below zero.
func ClampedDecrement(stock, qty int) int {
	if qty <= 0 {
		return stock
	}
	remaining := stock - qty
	if remaining < 0 {
		return 0
	}
	return remaining
}
