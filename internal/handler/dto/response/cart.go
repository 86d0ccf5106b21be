package response

import (
	"storefront/internal/domain/money"
	"storefront/internal/usecase/commands"
)

type CartItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Slug      string `json:"slug"`
	VolumeML  int    `json:"volumeMl"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type CartResponse struct {
	CartID     string             `json:"cartId,omitempty"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	Subtotal   string             `json:"subtotal"`
	Currency   string             `json:"currency"`
	Adjusted   bool               `json:"adjusted"`
}

func FromCartResult(r *commands.CartResult) *CartResponse {
	items := make([]CartItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Slug:      it.Slug,
			VolumeML:  it.VolumeML,
			Price:     it.PriceRON.StringFixed(2),
			Stock:     it.Stock,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			LineTotal: money.Round2(it.LineTotal()).StringFixed(2),
		}
	}
	return &CartResponse{
		CartID:     r.CartID,
		Items:      items,
		TotalItems: r.TotalItems,
		Subtotal:   r.Subtotal.StringFixed(2),
		Currency:   money.Base.String(),
		Adjusted:   r.Adjusted,
	}
}
