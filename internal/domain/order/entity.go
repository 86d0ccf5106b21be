package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder             = errors.New("order must contain at least one item")
	ErrInvalidItemQuantity    = errors.New("item quantity must be positive")
	ErrFulfillmentHold        = errors.New("order is on fulfillment hold")
	ErrSessionAlreadyAttached = errors.New("payment session already attached")
	ErrAlreadySettled         = errors.New("order already settled")
)

// FulfillmentHold flags a paid order that cannot ship without manual review.
type FulfillmentHold string

const (
	HoldNone           FulfillmentHold = ""
	HoldStockShortfall FulfillmentHold = "STOCK_SHORTFALL"
)

// Item is a line snapshot taken when the order is created. It never changes afterwards.
type Item struct {
	ProductID   int64
	ProductName string
	Brand       string
	Slug        string
	VolumeML    int
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

func NewItem(p product.Product, qty int) (Item, error) {
	if qty <= 0 {
		return Item{}, ErrInvalidItemQuantity
	}
	return Item{
		ProductID:   p.ID,
		ProductName: p.Name,
		Brand:       p.Brand,
		Slug:        p.Slug,
		VolumeML:    p.VolumeML,
		UnitPrice:   p.PriceRON,
		Quantity:    qty,
		LineTotal:   money.Round2(p.PriceRON.Mul(decimal.NewFromInt(int64(qty)))),
	}, nil
}

// Settlement is what the payment provider actually charged.
type Settlement struct {
	PaidAmount       decimal.Decimal
	Currency         money.Currency
	ExchangeRateUsed *decimal.Decimal
}

type NewOrderParams struct {
	UserID             *uuid.UUID
	GuestEmail         *string
	Locale             string
	Shipping           ShippingAddress
	Items              []Item
	DiscountPercent    decimal.Decimal
	SettlementCurrency money.Currency
}

type Order struct {
	id                 uuid.UUID
	number             string
	userID             *uuid.UUID
	guestEmail         *string
	locale             string
	shipping           ShippingAddress
	items              []Item
	totals             Totals
	settlementCurrency money.Currency
	paymentSessionID   *string
	status             Status
	hold               FulfillmentHold
	paidAmount         *decimal.Decimal
	paidCurrency       *money.Currency
	exchangeRateUsed   *decimal.Decimal
	paidAt             *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewOrder creates a PENDING order whose totals are derived from the item snapshots.
func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range p.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidItemQuantity
		}
	}
	currency := p.SettlementCurrency
	if currency == "" {
		currency = money.Base
	}

	items := make([]Item, len(p.Items))
	copy(items, p.Items)

	return &Order{
		id:                 uuid.New(),
		number:             NewNumber(now),
		userID:             p.UserID,
		guestEmail:         p.GuestEmail,
		locale:             p.Locale,
		shipping:           p.Shipping,
		items:              items,
		totals:             CalculateTotals(items, p.DiscountPercent),
		settlementCurrency: currency,
		status:             StatusPending,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type ReconstructParams struct {
	ID                 uuid.UUID
	Number             string
	UserID             *uuid.UUID
	GuestEmail         *string
	Locale             string
	Shipping           ShippingAddress
	Items              []Item
	Totals             Totals
	SettlementCurrency money.Currency
	PaymentSessionID   *string
	Status             Status
	Hold               FulfillmentHold
	PaidAmount         *decimal.Decimal
	PaidCurrency       *money.Currency
	ExchangeRateUsed   *decimal.Decimal
	PaidAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:                 p.ID,
		number:             p.Number,
		userID:             p.UserID,
		guestEmail:         p.GuestEmail,
		locale:             p.Locale,
		shipping:           p.Shipping,
		items:              p.Items,
		totals:             p.Totals,
		settlementCurrency: p.SettlementCurrency,
		paymentSessionID:   p.PaymentSessionID,
		status:             p.Status,
		hold:               p.Hold,
		paidAmount:         p.PaidAmount,
		paidCurrency:       p.PaidCurrency,
		exchangeRateUsed:   p.ExchangeRateUsed,
		paidAt:             p.PaidAt,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

func (o *Order) ID() uuid.UUID                      { return o.id }
func (o *Order) Number() string                     { return o.number }
func (o *Order) UserID() *uuid.UUID                 { return o.userID }
func (o *Order) GuestEmail() *string                { return o.guestEmail }
func (o *Order) Locale() string                     { return o.locale }
func (o *Order) Shipping() ShippingAddress          { return o.shipping }
func (o *Order) Totals() Totals                     { return o.totals }
func (o *Order) SettlementCurrency() money.Currency { return o.settlementCurrency }
func (o *Order) PaymentSessionID() *string          { return o.paymentSessionID }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) Hold() FulfillmentHold              { return o.hold }
func (o *Order) PaidAmount() *decimal.Decimal       { return o.paidAmount }
func (o *Order) PaidCurrency() *money.Currency      { return o.paidCurrency }
func (o *Order) ExchangeRateUsed() *decimal.Decimal { return o.exchangeRateUsed }
func (o *Order) PaidAt() *time.Time                 { return o.paidAt }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) UpdatedAt() time.Time               { return o.updatedAt }
func (o *Order) OnHold() bool                       { return o.hold != HoldNone }

func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Quantities sums ordered units per product.
func (o *Order) Quantities() map[int64]int {
	q := make(map[int64]int, len(o.items))
	for _, it := range o.items {
		q[it.ProductID] += it.Quantity
	}
	return q
}

func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.items))
	seen := make(map[int64]struct{}, len(o.items))
	for _, it := range o.items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

// Transition applies a manual status change from the transition table.
// PAID is not reachable here; it is reserved for MarkPaid.
func (o *Order) Transition(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrUnknownStatus
	}
	if !CanTransition(o.status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, to)
	}
	if o.OnHold() && blockedByHold(to) {
		return fmt.Errorf("%w: %s", ErrFulfillmentHold, o.hold)
	}
	o.status = to
	o.updatedAt = now
	return nil
}

// AllowedTargetsFor narrows AllowedTargets by an active hold.
func AllowedTargetsFor(s Status, hold FulfillmentHold) []Status {
	targets := AllowedTargets(s)
	if hold == HoldNone {
		return targets
	}
	out := targets[:0]
	for _, t := range targets {
		if !blockedByHold(t) {
			out = append(out, t)
		}
	}
	return out
}

func blockedByHold(to Status) bool {
	switch to {
	case StatusProcessing, StatusShipped, StatusDelivered:
		return true
	default:
		return false
	}
}

// MarkPaid moves a PENDING order to PAID and records the settlement exactly once.
func (o *Order) MarkPaid(s Settlement, now time.Time) error {
	if o.paidAt != nil {
		return ErrAlreadySettled
	}
	if !canSettle(o.status, StatusPaid) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, StatusPaid)
	}
	amount := s.PaidAmount
	currency := s.Currency
	if currency == "" {
		currency = o.settlementCurrency
	}
	o.paidAmount = &amount
	o.paidCurrency = &currency
	if s.ExchangeRateUsed != nil && !currency.IsBase() {
		rate := *s.ExchangeRateUsed
		o.exchangeRateUsed = &rate
	}
	paidAt := now
	o.paidAt = &paidAt
	o.status = StatusPaid
	o.updatedAt = now
	return nil
}

func (o *Order) PlaceHold(h FulfillmentHold, now time.Time) {
	o.hold = h
	o.updatedAt = now
}

func (o *Order) AttachPaymentSession(sessionID string, now time.Time) error {
	if o.paymentSessionID != nil {
		return ErrSessionAlreadyAttached
	}
	o.paymentSessionID = &sessionID
	o.updatedAt = now
	return nil
}
