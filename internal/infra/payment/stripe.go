package payment

import (
	"context"

	"storefront/internal/domain/money"
	"storefront/internal/infra/breaker"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/sony/gobreaker/v2"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

// Metadata keys echoed back on webhook events.
const (
	MetaOrderID      = "order_id"
	MetaOrderNumber  = "order_number"
	MetaExchangeRate = "exchange_rate"
	MetaCurrency     = "settlement_currency"
)

type sessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions   sessionAPI
	successURL string
	cancelURL  string
	cb         *gobreaker.CircuitBreaker[*stripe.CheckoutSession]
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	sc := &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.SecretKey}
	return newStripeGateway(sc, cfg)
}

func newStripeGateway(sessions sessionAPI, cfg config.StripeConfig) *StripeGateway {
	return &StripeGateway{
		sessions:   sessions,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		cb:         breaker.New[*stripe.CheckoutSession]("stripe-checkout", cfg.BreakerMaxFailures, cfg.BreakerOpenTimeout),
	}
}

// CreateCheckoutSession requests a hosted page for one line carrying the
// order total in minor units of the settlement currency.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req commands.PaymentSessionRequest) (*commands.PaymentSession, error) {
	params := g.buildParams(req)
	params.Context = ctx

	s, err := g.cb.Execute(func() (*stripe.CheckoutSession, error) {
		return g.sessions.New(params)
	})
	if err != nil {
		if breaker.IsOpen(err) {
			return nil, errs.Wrap(err, "payment provider temporarily disabled")
		}
		return nil, errs.Wrap(err, "failed to create checkout session")
	}
	if s == nil || s.ID == "" || s.URL == "" {
		return nil, errs.New("payment provider returned an empty session")
	}

	return &commands.PaymentSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) buildParams(req commands.PaymentSessionRequest) *stripe.CheckoutSessionParams {
	metadata := map[string]string{
		MetaOrderID:     req.OrderID.String(),
		MetaOrderNumber: req.OrderNumber,
		MetaCurrency:    req.Currency.String(),
	}
	if req.ExchangeRate != nil {
		metadata[MetaExchangeRate] = req.ExchangeRate.String()
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.OrderID.String()),
		Locale:            stripe.String(req.Locale),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency.Lower()),
					UnitAmount: stripe.Int64(money.ToMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Order " + req.OrderNumber),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: metadata,
		},
		Metadata: metadata,
	}
	if req.CustomerEmail != nil && *req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(*req.CustomerEmail)
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	return params
}
