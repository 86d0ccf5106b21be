//go:build unit

package payment_test

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/infra/payment"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78/webhook"
)

const secret = "whsec_test_secret"

func sign(payload string) (body []byte, header string) {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func sessionEvent(eventType, session string) string {
	return fmt.Sprintf(`{"id":"evt_1","object":"event","api_version":"2024-04-10","type":%q,"data":{"object":%s}}`, eventType, session)
}

func TestStripeWebhookVerifier(t *testing.T) {
	v := payment.NewStripeWebhookVerifier(secret)
	orderID := uuid.New()

	t.Run("paid session maps to a confirmation", func(t *testing.T) {
		body, header := sign(sessionEvent("checkout.session.completed", fmt.Sprintf(
			`{"id":"cs_1","object":"checkout.session","payment_status":"paid","currency":"eur","amount_total":4105,"metadata":{"order_id":%q,"exchange_rate":"4.8706"}}`,
			orderID)))

		ev, err := v.Verify(body, header)

		require.NoError(t, err)
		assert.Equal(t, commands.ProviderEventPaid, ev.Kind)
		require.NotNil(t, ev.Confirmation)
		c := ev.Confirmation
		assert.Equal(t, "evt_1", c.EventID)
		assert.Equal(t, orderID, c.OrderID)
		assert.Equal(t, "cs_1", c.SessionID)
		assert.Equal(t, "41.05", c.PaidAmount.StringFixed(2))
		assert.Equal(t, money.EUR, c.Currency)
		require.NotNil(t, c.ExchangeRate)
		assert.Equal(t, "4.8706", c.ExchangeRate.String())
	})

	t.Run("client reference id is the fallback order id", func(t *testing.T) {
		body, header := sign(sessionEvent("checkout.session.completed", fmt.Sprintf(
			`{"id":"cs_1","object":"checkout.session","payment_status":"paid","currency":"ron","amount_total":20000,"client_reference_id":%q}`,
			orderID)))

		ev, err := v.Verify(body, header)

		require.NoError(t, err)
		require.NotNil(t, ev.Confirmation)
		assert.Equal(t, orderID, ev.Confirmation.OrderID)
		assert.Nil(t, ev.Confirmation.ExchangeRate)
	})

	t.Run("expired session maps to an expiry", func(t *testing.T) {
		body, header := sign(sessionEvent("checkout.session.expired", fmt.Sprintf(
			`{"id":"cs_1","object":"checkout.session","payment_status":"unpaid","metadata":{"order_id":%q}}`, orderID)))

		ev, err := v.Verify(body, header)

		require.NoError(t, err)
		assert.Equal(t, commands.ProviderEventExpired, ev.Kind)
		require.NotNil(t, ev.Expiry)
		assert.Equal(t, orderID, ev.Expiry.OrderID)
	})

	t.Run("delayed payment success maps to a confirmation", func(t *testing.T) {
		body, header := sign(sessionEvent("checkout.session.async_payment_succeeded", fmt.Sprintf(
			`{"id":"cs_2","object":"checkout.session","payment_status":"paid","currency":"ron","amount_total":20000,"metadata":{"order_id":%q}}`,
			orderID)))

		ev, err := v.Verify(body, header)

		require.NoError(t, err)
		assert.Equal(t, "checkout.session.async_payment_succeeded", ev.Type)
		assert.Equal(t, commands.ProviderEventPaid, ev.Kind)
		require.NotNil(t, ev.Confirmation)
		assert.Equal(t, orderID, ev.Confirmation.OrderID)
		assert.Equal(t, "cs_2", ev.Confirmation.SessionID)
		assert.Equal(t, "200.00", ev.Confirmation.PaidAmount.StringFixed(2))
		assert.Equal(t, money.RON, ev.Confirmation.Currency)
	})

	t.Run("delayed payment failure maps to an expiry", func(t *testing.T) {
		body, header := sign(sessionEvent("checkout.session.async_payment_failed", fmt.Sprintf(
			`{"id":"cs_2","object":"checkout.session","payment_status":"unpaid","metadata":{"order_id":%q}}`, orderID)))

		ev, err := v.Verify(body, header)

		require.NoError(t, err)
		assert.Equal(t, commands.ProviderEventExpired, ev.Kind)
		assert.Nil(t, ev.Confirmation)
		require.NotNil(t, ev.Expiry)
		assert.Equal(t, orderID, ev.Expiry.OrderID)
		assert.Equal(t, "cs_2", ev.Expiry.SessionID)
	})

	ignored := map[string]string{
		"other event type": sessionEvent("customer.created", `{"id":"cus_1","object":"customer"}`),
		"unpaid completion": sessionEvent("checkout.session.completed", fmt.Sprintf(
			`{"id":"cs_1","object":"checkout.session","payment_status":"unpaid","metadata":{"order_id":%q}}`, orderID)),
		"delayed payment success without paid status": sessionEvent("checkout.session.async_payment_succeeded", fmt.Sprintf(
			`{"id":"cs_2","object":"checkout.session","payment_status":"unpaid","metadata":{"order_id":%q}}`, orderID)),
		"no order id": sessionEvent("checkout.session.completed",
			`{"id":"cs_1","object":"checkout.session","payment_status":"paid","currency":"ron","amount_total":100}`),
		"unsupported currency": sessionEvent("checkout.session.completed", fmt.Sprintf(
			`{"id":"cs_1","object":"checkout.session","payment_status":"paid","currency":"usd","amount_total":100,"metadata":{"order_id":%q}}`, orderID)),
	}
	for name, payload := range ignored {
		t.Run(name, func(t *testing.T) {
			body, header := sign(payload)

			ev, err := v.Verify(body, header)

			require.NoError(t, err)
			assert.Equal(t, commands.ProviderEventIgnored, ev.Kind)
			assert.Nil(t, ev.Confirmation)
			assert.Nil(t, ev.Expiry)
		})
	}

	t.Run("bad signature is rejected", func(t *testing.T) {
		body, _ := sign(sessionEvent("checkout.session.completed", `{"id":"cs_1"}`))

		_, err := v.Verify(body, "t=1700000000,v1=deadbeef")

		assert.True(t, errs.Is(err, commands.ErrInvalidWebhook))
	})

	t.Run("payload signed with another secret is rejected", func(t *testing.T) {
		_, header := sign(sessionEvent("checkout.session.completed", `{"id":"cs_1"}`))

		_, err := payment.NewStripeWebhookVerifier("whsec_other").Verify([]byte(`{}`), header)

		assert.True(t, errs.Is(err, commands.ErrInvalidWebhook))
	})
}
