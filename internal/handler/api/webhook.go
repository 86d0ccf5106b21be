package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Stripe caps event payloads well below this.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	verifier commands.WebhookVerifier
	payments commands.PaymentCommands
}

func NewWebhookHandler(verifier commands.WebhookVerifier, payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, payments: payments}
}

// @Summary Payment provider webhook
// @Description Receives signed Stripe events. Answers 200 for handled, ignored and anomalous events so the provider stops retrying
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("rejected oversized webhook", "limit", tooLarge.Limit)
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, httperr.CodePayloadTooLarge, "Payload too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidWebhook, "Unreadable payload", nil)
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		slog.Warn("rejected webhook", "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidWebhook, "Invalid webhook", nil)
		return
	}

	ctx := c.Request.Context()
	switch event.Kind {
	case commands.ProviderEventPaid:
		err = h.payments.HandlePaymentConfirmed(ctx, *event.Confirmation)
	case commands.ProviderEventExpired:
		err = h.payments.HandleSessionExpired(ctx, *event.Expiry)
	default:
		slog.Debug("ignoring webhook event", "event_id", event.ID, "type", event.Type)
	}

	// An unknown order is an anomaly to log, not something a redelivery can fix.
	if err != nil && !errs.Is(err, commands.ErrOrderNotFound) {
		slog.Error("webhook processing failed",
			"event_id", event.ID,
			"type", event.Type,
			"error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Webhook processing failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
