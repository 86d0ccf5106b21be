//go:build unit || e2e

package builder

import (
	"fmt"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/product"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID       int64
	Name     string
	Brand    string
	VolumeML int
	Price    string
	Stock    int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:       1,
		Name:     "Eau de Parfum",
		Brand:    "Maison Test",
		VolumeML: 50,
		Price:    "100.00",
		Stock:    10,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) WithID(id int64) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithStock(stock int) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) Build() product.Product {
	return product.Product{
		ID:       p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		Slug:     fmt.Sprintf("product-%d", p.ID),
		VolumeML: p.VolumeML,
		PriceRON: decimal.RequireFromString(p.Price),
		Stock:    p.Stock,
	}
}

func (p *ProductBuilder) BuildSnapshot() cart.Snapshot {
	return cart.SnapshotOf(p.Build())
}
