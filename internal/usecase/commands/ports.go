package commands

import (
	"context"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/money"
	"storefront/internal/domain/product"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// PaymentSessionRequest asks the provider for a hosted checkout page.
type PaymentSessionRequest struct {
	OrderID       uuid.UUID
	OrderNumber   string
	Amount        decimal.Decimal
	Currency      money.Currency
	ExchangeRate  *decimal.Decimal
	Locale        string
	CustomerEmail *string
	ExpiresAt     time.Time
}

type PaymentSession struct {
	ID  string
	URL string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req PaymentSessionRequest) (*PaymentSession, error)
}

// CartStore persists only the line list; totals are always recomputed.
type CartStore interface {
	Load(ctx context.Context, cartID string) ([]cart.Item, error)
	Save(ctx context.Context, cartID string, items []cart.Item) error
	Delete(ctx context.Context, cartID string) error
}

// ProductReader reads live catalog rows without locking.
type ProductReader interface {
	FindByID(ctx context.Context, id int64) (*product.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]product.Product, error)
}

type RateProvider interface {
	Get(ctx context.Context) (*money.Rates, error)
}

var ErrInvalidWebhook = errs.New("invalid webhook payload or signature")

type ProviderEventKind string

const (
	ProviderEventPaid    ProviderEventKind = "PAID"
	ProviderEventExpired ProviderEventKind = "EXPIRED"
	ProviderEventIgnored ProviderEventKind = "IGNORED"
)

// ProviderEvent is a verified provider notification. Exactly one of
// Confirmation or Expiry is set for PAID and EXPIRED kinds.
type ProviderEvent struct {
	ID           string
	Type         string
	Kind         ProviderEventKind
	Confirmation *PaymentConfirmation
	Expiry       *SessionExpiry
}

type WebhookVerifier interface {
	// Verify fails with ErrInvalidWebhook for bad signatures or unreadable payloads.
	Verify(payload []byte, signature string) (*ProviderEvent, error)
}
