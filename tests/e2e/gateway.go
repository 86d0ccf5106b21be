//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront/internal/infra/payment"
	"storefront/internal/usecase/commands"

	"github.com/stripe/stripe-go/v78/webhook"
)

// FakeGateway records checkout sessions instead of calling the provider and
// signs the matching webhook payloads with the configured secret.
type FakeGateway struct {
	mu       sync.Mutex
	seq      int
	Requests []commands.PaymentSessionRequest
	Fail     error
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) CreateCheckoutSession(_ context.Context, req commands.PaymentSessionRequest) (*commands.PaymentSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Fail != nil {
		return nil, g.Fail
	}
	g.seq++
	g.Requests = append(g.Requests, req)
	id := fmt.Sprintf("cs_test_%d", g.seq)
	return &commands.PaymentSession{ID: id, URL: "https://checkout.test/" + id}, nil
}

func (g *FakeGateway) Last() commands.PaymentSessionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Requests[len(g.Requests)-1]
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Requests = nil
	g.Fail = nil
}

// CompletedEvent builds a signed checkout.session.completed payload for req.
func CompletedEvent(secret, eventID, sessionID string, req commands.PaymentSessionRequest, amountMinor int64) ([]byte, string) {
	session := fmt.Sprintf(`{"id":%q,"object":"checkout.session","payment_status":"paid","currency":%q,"amount_total":%d,"metadata":{%q:%q}}`,
		sessionID, req.Currency.Lower(), amountMinor, payment.MetaOrderID, req.OrderID.String())
	return signEvent(secret, eventID, "checkout.session.completed", session)
}

// ExpiredEvent builds a signed checkout.session.expired payload for req.
func ExpiredEvent(secret, eventID, sessionID string, req commands.PaymentSessionRequest) ([]byte, string) {
	session := fmt.Sprintf(`{"id":%q,"object":"checkout.session","payment_status":"unpaid","metadata":{%q:%q}}`,
		sessionID, payment.MetaOrderID, req.OrderID.String())
	return signEvent(secret, eventID, "checkout.session.expired", session)
}

func signEvent(secret, eventID, eventType, session string) ([]byte, string) {
	payload := fmt.Sprintf(`{"id":%q,"object":"event","api_version":"2024-04-10","type":%q,"data":{"object":%s}}`,
		eventID, eventType, session)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}
