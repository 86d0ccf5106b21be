package money

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/pkg/clock"
)

var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// RateFetcher loads a fresh snapshot from an upstream source.
type RateFetcher interface {
	FetchRates(ctx context.Context) (*Rates, error)
}

// RateCache keeps the last good snapshot. Staleness is judged against the
// injected clock so it can be tested without sleeping.
type RateCache struct {
	mu      sync.RWMutex
	fetcher RateFetcher
	clock   clock.Clock
	ttl     time.Duration
	current *Rates
	loaded  time.Time
}

func NewRateCache(fetcher RateFetcher, clk clock.Clock, ttl time.Duration) *RateCache {
	return &RateCache{
		fetcher: fetcher,
		clock:   clk,
		ttl:     ttl,
	}
}

// Current returns the cached snapshot, possibly nil or stale.
func (c *RateCache) Current() *Rates {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

func (c *RateCache) IsStale(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return true
	}
	return !now.Before(c.loaded.Add(c.ttl))
}

// Refresh replaces the snapshot. A failed fetch keeps the previous one.
func (c *RateCache) Refresh(ctx context.Context) error {
	rates, err := c.fetcher.FetchRates(ctx)
	if err != nil {
		return err
	}
	if rates == nil {
		return ErrRatesUnavailable
	}

	c.mu.Lock()
	c.current = rates
	c.loaded = c.clock.Now()
	c.mu.Unlock()
	return nil
}

// Get refreshes when stale and falls back to the last good snapshot.
func (c *RateCache) Get(ctx context.Context) (*Rates, error) {
	if c.IsStale(c.clock.Now()) {
		if err := c.Refresh(ctx); err != nil {
			if cur := c.Current(); cur != nil {
				slog.Warn("exchange rate refresh failed, serving stale rates",
					"error", err.Error(),
					"fetched_at", cur.FetchedAt)
				return cur, nil
			}
			return nil, errors.Join(ErrRatesUnavailable, err)
		}
	}
	return c.Current(), nil
}
