package response

import (
	"time"

	"storefront/internal/usecase/queries"
)

type RatesResponse struct {
	Base       string `json:"base"`
	EUR        string `json:"EUR"`
	GBP        string `json:"GBP"`
	FeePercent string `json:"feePercent"`
	FetchedAt  string `json:"fetchedAt"`
	Stale      bool   `json:"stale"`
}

func FromRatesView(v *queries.RatesView) *RatesResponse {
	return &RatesResponse{
		Base:       v.Base,
		EUR:        v.EUR.String(),
		GBP:        v.GBP.String(),
		FeePercent: v.FeePercent.String(),
		FetchedAt:  v.FetchedAt.UTC().Format(time.RFC3339),
		Stale:      v.Stale,
	}
}
