package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/checkout"
	"storefront/internal/domain/money"
	"storefront/internal/domain/order"
	"storefront/internal/domain/product"
	"storefront/internal/domain/promotion"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout_mock.go -package=commandsmock

var (
	ErrProductUnavailable = errs.New("product unavailable")
	ErrInsufficientStock  = errs.New("insufficient stock")
	ErrPaymentProvider    = errs.New("payment provider error")
)

// InsufficientStockError names the first line that cannot be covered.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

type CheckoutInput struct {
	Request checkout.Request
	UserID  *uuid.UUID
}

type CheckoutResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	SessionID   string
	URL         string
	Amount      decimal.Decimal
	Currency    money.Currency
}

type CheckoutCommands interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	rates   RateProvider
	clock   clock.Clock
	cfg     config.Config
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway PaymentGateway, rates RateProvider, clk clock.Clock, cfg config.Config) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:     uow,
		gateway: gateway,
		rates:   rates,
		clock:   clk,
		cfg:     cfg,
	}
}

func (c *checkoutCommandsImpl) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	req, err := in.Request.Validate(c.cfg.Checkout.SupportedLocales)
	if err != nil {
		return nil, errs.Validation(err)
	}

	currency, rates := c.resolveSettlement(ctx, req.Locale)

	var created *order.Order
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, terr := c.placeOrder(ctx, tx, req, in.UserID, currency)
		if terr != nil {
			return terr
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	amount, rate := settlementAmount(created.Totals().Total, currency, rates)

	session, err := c.gateway.CreateCheckoutSession(ctx, PaymentSessionRequest{
		OrderID:       created.ID(),
		OrderNumber:   created.Number(),
		Amount:        amount,
		Currency:      currency,
		ExchangeRate:  rate,
		Locale:        created.Locale(),
		CustomerEmail: created.GuestEmail(),
		ExpiresAt:     c.clock.Now().Add(c.cfg.Stripe.SessionTTL),
	})
	if err != nil {
		slog.Error("payment session creation failed",
			"order_id", created.ID().String(),
			"order_number", created.Number(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrPaymentProvider)
	}

	c.attachSession(ctx, created.ID(), session.ID)

	slog.Info("checkout session created",
		"order_id", created.ID().String(),
		"order_number", created.Number(),
		"session_id", session.ID,
		"currency", currency.String(),
		"amount", amount.StringFixed(2))

	return &CheckoutResult{
		OrderID:     created.ID(),
		OrderNumber: created.Number(),
		SessionID:   session.ID,
		URL:         session.URL,
		Amount:      amount,
		Currency:    currency,
	}, nil
}

// placeOrder runs inside the transaction: it validates stock against locked rows
// and inserts the PENDING order. Stock itself is never touched here.
func (c *checkoutCommandsImpl) placeOrder(
	ctx context.Context,
	tx shared.Tx,
	req checkout.Request,
	userID *uuid.UUID,
	currency money.Currency,
) (*order.Order, error) {
	locked, err := tx.Products().LockForCheckout(ctx, req.ProductIDs())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	byID := make(map[int64]product.Product, len(locked))
	for _, p := range locked {
		byID[p.ID] = p
	}

	items := make([]order.Item, 0, len(req.Lines))
	for _, line := range req.Lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.Wrapf(ErrProductUnavailable, "product %d", line.ProductID)
		}
		if !p.HasStockFor(line.Quantity) {
			return nil, errs.Mark(&InsufficientStockError{
				ProductID: p.ID,
				Requested: line.Quantity,
				Available: p.Stock,
			}, ErrInsufficientStock)
		}
		item, ierr := order.NewItem(p, line.Quantity)
		if ierr != nil {
			return nil, errs.Validation(ierr)
		}
		items = append(items, item)
	}

	now := c.clock.Now()
	discountPercent := decimal.Zero
	promos, err := tx.Promotions().ListActive(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if promo, ok := promotion.Pick(promos, now); ok {
		discountPercent = promo.DiscountPercent
	}

	o, err := order.NewOrder(order.NewOrderParams{
		UserID:             userID,
		GuestEmail:         req.GuestEmail,
		Locale:             req.Locale,
		Shipping:           req.Shipping,
		Items:              items,
		DiscountPercent:    discountPercent,
		SettlementCurrency: currency,
	}, now)
	if err != nil {
		return nil, errs.Validation(err)
	}

	if err := tx.Orders().Create(ctx, o); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}

// resolveSettlement picks the locale's currency. Without usable rates a foreign
// settlement cannot be priced, so the order falls back to the base currency.
func (c *checkoutCommandsImpl) resolveSettlement(ctx context.Context, locale string) (money.Currency, *money.Rates) {
	currency, err := money.ParseCurrency(c.cfg.Checkout.SettlementCurrency(locale))
	if err != nil || currency.IsBase() {
		return money.Base, nil
	}

	rates, err := c.rates.Get(ctx)
	if err != nil {
		slog.Warn("exchange rates unavailable, settling in base currency",
			"locale", locale,
			"currency", currency.String(),
			"error", err.Error())
		return money.Base, nil
	}
	if _, ok := rates.RateFor(currency); !ok {
		slog.Warn("no usable rate for settlement currency, settling in base currency",
			"currency", currency.String())
		return money.Base, nil
	}
	return currency, rates
}

func settlementAmount(total decimal.Decimal, currency money.Currency, rates *money.Rates) (decimal.Decimal, *decimal.Decimal) {
	if currency.IsBase() {
		return total, nil
	}
	rate, ok := rates.RateFor(currency)
	if !ok {
		return total, nil
	}
	return money.Round2(money.Convert(total, currency, rates)), &rate
}

// attachSession stores the provider session id for lookups by session. The
// webhook carries the order id itself, so a failure here is logged, not returned.
func (c *checkoutCommandsImpl) attachSession(ctx context.Context, orderID uuid.UUID, sessionID string) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, terr := tx.Orders().FindForUpdate(ctx, orderID)
		if terr != nil {
			return terr
		}
		if terr = o.AttachPaymentSession(sessionID, c.clock.Now()); terr != nil {
			return terr
		}
		return tx.Orders().Save(ctx, o)
	})
	if err != nil {
		slog.Error("failed to store payment session on order",
			"order_id", orderID.String(),
			"session_id", sessionID,
			"error", err.Error())
	}
}
