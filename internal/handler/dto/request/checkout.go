package request

import (
	"html"
	"strings"

	"storefront/internal/domain/checkout"
	"storefront/internal/domain/order"
	"storefront/internal/pkg/patch"

	"github.com/microcosm-cc/bluemonday"
)

var stripTags = bluemonday.StrictPolicy()

type CheckoutItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,min=1,max=99"`
}

type ShippingAddressRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Phone        string `json:"phone" binding:"omitempty,max=30"`
	AddressLine1 string `json:"addressLine1" binding:"required,min=5,max=200"`
	AddressLine2 string `json:"addressLine2" binding:"omitempty,max=200"`
	City         string `json:"city" binding:"required,min=2,max=100"`
	State        string `json:"state" binding:"omitempty,max=100"`
	PostalCode   string `json:"postalCode" binding:"required,min=2,max=20"`
	Country      string `json:"country" binding:"required,len=2,alpha"`
}

type CheckoutRequest struct {
	Items           []CheckoutItemRequest  `json:"items" binding:"required,min=1,max=50,dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
	GuestEmail      *string                `json:"guestEmail" binding:"omitempty,email,max=254"`
	Locale          string                 `json:"locale" binding:"omitempty,locale"`
}

// ToDomain strips markup from free text; bounds are re-checked by the domain.
func (r *CheckoutRequest) ToDomain() checkout.Request {
	lines := make([]checkout.Line, len(r.Items))
	for i, it := range r.Items {
		lines[i] = checkout.Line{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	a := r.ShippingAddress
	return checkout.Request{
		Lines: lines,
		Shipping: order.ShippingAddress{
			Name:         sanitize(a.Name),
			Phone:        sanitize(a.Phone),
			AddressLine1: sanitize(a.AddressLine1),
			AddressLine2: sanitize(a.AddressLine2),
			City:         sanitize(a.City),
			State:        sanitize(a.State),
			PostalCode:   sanitize(a.PostalCode),
			Country:      strings.ToUpper(strings.TrimSpace(a.Country)),
		},
		GuestEmail: patch.TrimmedOrNil(r.GuestEmail),
		Locale:     strings.TrimSpace(r.Locale),
	}
}

// sanitize drops tags but keeps the text literal; the policy entity-encodes what it keeps.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(s)))
}
