//go:build unit

package money_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	rates *money.Rates
	err   error
	calls int
}

func (f *stubFetcher) FetchRates(_ context.Context) (*money.Rates, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func TestRateCache(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("fetches when empty and caches within ttl", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		f := &stubFetcher{rates: testRates()}
		cache := money.NewRateCache(f, clk, time.Hour)

		r, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.True(t, d("5.00").Equal(r.EUR))

		clk.Add(59 * time.Minute)
		_, err = cache.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, f.calls)
		assert.False(t, cache.IsStale(clk.Now()))
	})

	t.Run("refreshes once ttl elapsed", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		f := &stubFetcher{rates: testRates()}
		cache := money.NewRateCache(f, clk, time.Hour)

		_, err := cache.Get(ctx)
		require.NoError(t, err)
		clk.Add(time.Hour)
		assert.True(t, cache.IsStale(clk.Now()))

		_, err = cache.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, f.calls)
	})

	t.Run("serves stale snapshot when refresh fails", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		f := &stubFetcher{rates: testRates()}
		cache := money.NewRateCache(f, clk, time.Hour)

		_, err := cache.Get(ctx)
		require.NoError(t, err)

		f.err = errors.New("feed down")
		clk.Add(2 * time.Hour)

		r, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.True(t, d("5.00").Equal(r.EUR))
	})

	t.Run("fails without any snapshot", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		cache := money.NewRateCache(&stubFetcher{err: errors.New("feed down")}, clk, time.Hour)

		r, err := cache.Get(ctx)
		require.ErrorIs(t, err, money.ErrRatesUnavailable)
		assert.Nil(t, r)
		assert.Nil(t, cache.Current())
	})

	t.Run("current returns a copy", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		cache := money.NewRateCache(&stubFetcher{rates: testRates()}, clk, time.Hour)
		require.NoError(t, cache.Refresh(ctx))

		r := cache.Current()
		r.EUR = d("99")

		assert.True(t, d("5.00").Equal(cache.Current().EUR))
	})
}
