package queries

import (
	"context"
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
)

//go:generate mockgen -source=rates.go -destination=../../../tests/mock/queries/rates_mock.go -package=queriesmock

var ErrRatesUnavailable = errs.New("exchange rates unavailable")

type RateQueries interface {
	Current(ctx context.Context) (*RatesView, error)
}

// RateSource is satisfied by *money.RateCache.
type RateSource interface {
	Get(ctx context.Context) (*money.Rates, error)
	IsStale(now time.Time) bool
}

type rateQueriesImpl struct {
	cache RateSource
	clock clock.Clock
}

func NewRateQueries(cache RateSource, clk clock.Clock) RateQueries {
	return &rateQueriesImpl{cache: cache, clock: clk}
}

// Current serves the cached snapshot; rates are advisory for display only.
func (q *rateQueriesImpl) Current(ctx context.Context) (*RatesView, error) {
	rates, err := q.cache.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRatesUnavailable)
	}
	return &RatesView{
		Base:       money.Base.String(),
		EUR:        rates.EUR,
		GBP:        rates.GBP,
		FeePercent: rates.FeePercent,
		FetchedAt:  rates.FetchedAt,
		Stale:      q.cache.IsStale(q.clock.Now()),
	}, nil
}
