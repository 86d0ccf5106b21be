package payment

import (
	"encoding/json"
	"log/slog"
	"strings"

	"storefront/internal/domain/money"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

const (
	eventSessionCompleted      = "checkout.session.completed"
	eventSessionExpired        = "checkout.session.expired"
	eventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	eventAsyncPaymentFailed    = "checkout.session.async_payment_failed"
)

type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret}
}

// Verify checks the Stripe-Signature header and maps checkout session events.
// Events that cannot be tied to an order come back as IGNORED so the caller acknowledges them.
func (v *StripeWebhookVerifier) Verify(payload []byte, signature string) (*commands.ProviderEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to verify webhook"), commands.ErrInvalidWebhook)
	}

	out := &commands.ProviderEvent{
		ID:   event.ID,
		Type: string(event.Type),
		Kind: commands.ProviderEventIgnored,
	}

	switch string(event.Type) {
	case eventSessionCompleted, eventAsyncPaymentSucceeded, eventSessionExpired, eventAsyncPaymentFailed:
	default:
		return out, nil
	}
	if event.Data == nil {
		return nil, errs.Mark(errs.New("webhook event has no data"), commands.ErrInvalidWebhook)
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode checkout session"), commands.ErrInvalidWebhook)
	}

	orderID, ok := orderIDOf(&s)
	if !ok {
		slog.Warn("webhook session without a usable order id",
			"event_id", event.ID,
			"session_id", s.ID)
		return out, nil
	}

	// A failed delayed payment leaves the order as unpaid as an expired page does.
	if t := string(event.Type); t == eventSessionExpired || t == eventAsyncPaymentFailed {
		out.Kind = commands.ProviderEventExpired
		out.Expiry = &commands.SessionExpiry{
			EventID:   event.ID,
			OrderID:   orderID,
			SessionID: s.ID,
		}
		return out, nil
	}

	// Delayed payment methods complete the session before the money arrives;
	// async_payment_succeeded follows once it does.
	if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		slog.Info("checkout session completed without payment",
			"event_id", event.ID,
			"session_id", s.ID,
			"payment_status", string(s.PaymentStatus))
		return out, nil
	}

	currency, err := money.ParseCurrency(string(s.Currency))
	if err != nil {
		slog.Warn("webhook session in unsupported currency",
			"event_id", event.ID,
			"session_id", s.ID,
			"currency", string(s.Currency))
		return out, nil
	}

	out.Kind = commands.ProviderEventPaid
	out.Confirmation = &commands.PaymentConfirmation{
		EventID:      event.ID,
		OrderID:      orderID,
		SessionID:    s.ID,
		PaidAmount:   money.FromMinorUnits(s.AmountTotal),
		Currency:     currency,
		ExchangeRate: exchangeRateOf(&s),
	}
	return out, nil
}

func orderIDOf(s *stripe.CheckoutSession) (uuid.UUID, bool) {
	raw := s.Metadata[MetaOrderID]
	if raw == "" {
		raw = s.ClientReferenceID
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func exchangeRateOf(s *stripe.CheckoutSession) *decimal.Decimal {
	raw, ok := s.Metadata[MetaExchangeRate]
	if !ok || raw == "" {
		return nil
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || !rate.IsPositive() {
		return nil
	}
	return &rate
}
