package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemView is the immutable line snapshot taken at checkout
type OrderItemView struct {
	ProductID   int64
	ProductName string
	Brand       string
	Slug        string
	VolumeML    int
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

type ShippingView struct {
	Name         string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// OrderView represents read-optimized order data
type OrderView struct {
	ID                 uuid.UUID
	OrderNumber        string
	UserID             *uuid.UUID
	GuestEmail         *string
	Locale             string
	Status             string
	FulfillmentHold    string
	Shipping           ShippingView
	Items              []OrderItemView
	Subtotal           decimal.Decimal
	DiscountPercent    decimal.Decimal
	Discount           decimal.Decimal
	Total              decimal.Decimal
	SettlementCurrency string
	PaymentSessionID   *string
	PaidAmount         *decimal.Decimal
	PaidCurrency       *string
	ExchangeRateUsed   *decimal.Decimal
	PaidAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AdminOrderView adds the statuses an administrator may move the order to
type AdminOrderView struct {
	OrderView
	AllowedTransitions []string
}

type OrderListView struct {
	Items  []OrderView
	Total  int64
	Limit  int
	Offset int
}

// StatusTableView publishes the transition table so clients never duplicate it
type StatusTableView struct {
	Statuses    []string
	Transitions map[string][]string
}

// RatesView represents the cached exchange rate snapshot
type RatesView struct {
	Base       string
	EUR        decimal.Decimal
	GBP        decimal.Decimal
	FeePercent decimal.Decimal
	FetchedAt  time.Time
	Stale      bool
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}
