package response

import (
	"storefront/internal/usecase/queries"
)

type OrderItemResponse struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Brand       string `json:"brand"`
	Slug        string `json:"slug"`
	VolumeML    int    `json:"volumeMl"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"lineTotal"`
}

type ShippingResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	UserID             *string             `json:"userId,omitempty"`
	GuestEmail         *string             `json:"guestEmail,omitempty"`
	Locale             string              `json:"locale"`
	Status             string              `json:"status"`
	FulfillmentHold    string              `json:"fulfillmentHold,omitempty"`
	Shipping           ShippingResponse    `json:"shippingAddress"`
	Items              []OrderItemResponse `json:"items" copier:"-"`
	Subtotal           string              `json:"subtotal"`
	DiscountPercent    string              `json:"discountPercent"`
	Discount           string              `json:"discount"`
	Total              string              `json:"total"`
	Currency           string              `json:"currency" copier:"-"`
	SettlementCurrency string              `json:"settlementCurrency"`
	PaymentSessionID   *string             `json:"paymentSessionId,omitempty"`
	PaidAmount         *string             `json:"paidAmount,omitempty"`
	PaidCurrency       *string             `json:"paidCurrency,omitempty"`
	ExchangeRateUsed   *string             `json:"exchangeRateUsed,omitempty"`
	PaidAt             *string             `json:"paidAt,omitempty"`
	CreatedAt          string              `json:"createdAt"`
	UpdatedAt          string              `json:"updatedAt"`
}

type AdminOrderResponse struct {
	OrderResponse
	AllowedTransitions []string `json:"allowedTransitions"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type StatusTableResponse struct {
	Statuses    []string            `json:"statuses"`
	Transitions map[string][]string `json:"transitions"`
}

type ChangeStatusResponse struct {
	OrderID string `json:"orderId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Base currency of every stored amount
const baseCurrency = "RON"

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	res.Currency = baseCurrency
	res.Items = make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		res.Items[i] = OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Brand:       it.Brand,
			Slug:        it.Slug,
			VolumeML:    it.VolumeML,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal.StringFixed(2),
		}
	}
	return res, nil
}

func FromAdminOrderView(v *queries.AdminOrderView) (*AdminOrderResponse, error) {
	base, err := FromOrderView(&v.OrderView)
	if err != nil {
		return nil, err
	}
	allowed := v.AllowedTransitions
	if allowed == nil {
		allowed = []string{}
	}
	return &AdminOrderResponse{OrderResponse: *base, AllowedTransitions: allowed}, nil
}

func FromOrderList(v *queries.OrderListView) (*OrderListResponse, error) {
	res := &OrderListResponse{
		Orders: make([]OrderResponse, 0, len(v.Items)),
		Total:  v.Total,
		Limit:  v.Limit,
		Offset: v.Offset,
	}
	for i := range v.Items {
		o, err := FromOrderView(&v.Items[i])
		if err != nil {
			return nil, err
		}
		res.Orders = append(res.Orders, *o)
	}
	return res, nil
}

func FromStatusTable(v *queries.StatusTableView) *StatusTableResponse {
	return &StatusTableResponse{Statuses: v.Statuses, Transitions: v.Transitions}
}
