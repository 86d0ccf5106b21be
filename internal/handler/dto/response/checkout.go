package response

import "storefront/internal/usecase/commands"

type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	SessionID   string `json:"sessionId"`
	URL         string `json:"url"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:     r.OrderID.String(),
		OrderNumber: r.OrderNumber,
		SessionID:   r.SessionID,
		URL:         r.URL,
		Amount:      r.Amount.StringFixed(2),
		Currency:    r.Currency.String(),
	}
}
