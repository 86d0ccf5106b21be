//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/domain/order"
	"storefront/internal/domain/product"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID                 uuid.UUID
	Number             string
	Products           []product.Product
	Quantities         []int
	DiscountPercent    decimal.Decimal
	SettlementCurrency money.Currency
	Status             order.Status
	Hold               order.FulfillmentHold
	SessionID          *string
	Paid               bool
	Now                time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:                 uuid.New(),
		Number:             "ORD-01JNTEST0000000000000000",
		Products:           []product.Product{NewProductBuilder().Build()},
		Quantities:         []int{2},
		SettlementCurrency: money.RON,
		Status:             order.StatusPending,
		Now:                time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	o.Status = s
	return o
}

func (o *OrderBuilder) WithHold(h order.FulfillmentHold) *OrderBuilder {
	o.Hold = h
	return o
}

func (o *OrderBuilder) WithSession(id string) *OrderBuilder {
	o.SessionID = &id
	return o
}

func (o *OrderBuilder) WithItem(p product.Product, qty int) *OrderBuilder {
	o.Products = append(o.Products, p)
	o.Quantities = append(o.Quantities, qty)
	return o
}

func (o *OrderBuilder) WithOnlyItem(p product.Product, qty int) *OrderBuilder {
	o.Products = []product.Product{p}
	o.Quantities = []int{qty}
	return o
}

func (o *OrderBuilder) AsPaid() *OrderBuilder {
	o.Paid = true
	return o
}

func (o *OrderBuilder) items() []order.Item {
	items := make([]order.Item, 0, len(o.Products))
	for i, p := range o.Products {
		it, _ := order.NewItem(p, o.Quantities[i])
		items = append(items, it)
	}
	return items
}

func (o *OrderBuilder) Shipping() order.ShippingAddress {
	return order.ShippingAddress{
		Name:         "Ana Popescu",
		Phone:        "+40700000000",
		AddressLine1: "Strada Exemplu 10",
		City:         "Bucharest",
		PostalCode:   "010101",
		Country:      "RO",
	}
}

// Build reconstructs the order as it would be loaded from storage.
func (o *OrderBuilder) Build() *order.Order {
	items := o.items()
	p := order.ReconstructParams{
		ID:                 o.ID,
		Number:             o.Number,
		Locale:             "ro",
		Shipping:           o.Shipping(),
		Items:              items,
		Totals:             order.CalculateTotals(items, o.DiscountPercent),
		SettlementCurrency: o.SettlementCurrency,
		PaymentSessionID:   o.SessionID,
		Status:             o.Status,
		Hold:               o.Hold,
		CreatedAt:          o.Now,
		UpdatedAt:          o.Now,
	}
	if o.Paid {
		amount := p.Totals.Total
		currency := o.SettlementCurrency
		paidAt := o.Now
		p.PaidAmount = &amount
		p.PaidCurrency = &currency
		p.PaidAt = &paidAt
	}
	return order.Reconstruct(p)
}

func (o *OrderBuilder) BuildView() queries.OrderView {
	ord := o.Build()
	items := make([]queries.OrderItemView, 0, len(ord.Items()))
	for _, it := range ord.Items() {
		items = append(items, queries.OrderItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Brand:       it.Brand,
			Slug:        it.Slug,
			VolumeML:    it.VolumeML,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal,
		})
	}
	s := ord.Shipping()
	return queries.OrderView{
		ID:              ord.ID(),
		OrderNumber:     ord.Number(),
		Locale:          ord.Locale(),
		Status:          ord.Status().String(),
		FulfillmentHold: string(ord.Hold()),
		Shipping: queries.ShippingView{
			Name:         s.Name,
			Phone:        s.Phone,
			AddressLine1: s.AddressLine1,
			City:         s.City,
			PostalCode:   s.PostalCode,
			Country:      s.Country,
		},
		Items:              items,
		Subtotal:           ord.Totals().Subtotal,
		DiscountPercent:    ord.Totals().DiscountPercent,
		Discount:           ord.Totals().Discount,
		Total:              ord.Totals().Total,
		SettlementCurrency: ord.SettlementCurrency().String(),
		PaymentSessionID:   ord.PaymentSessionID(),
		CreatedAt:          ord.CreatedAt(),
		UpdatedAt:          ord.UpdatedAt(),
	}
}
