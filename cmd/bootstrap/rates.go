package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/domain/money"
	"storefront/internal/infra/rates"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var RatesModule = fx.Module("rates",
	fx.Provide(
		NewRateFetcher,
		NewRateCache,
		func(c *money.RateCache) commands.RateProvider { return c },
		func(c *money.RateCache) queries.RateSource { return c },
	),
	fx.Invoke(StartRateRefresher),
)

// NewRateFetcher falls back to configured static rates when no feed URL is set.
func NewRateFetcher(cfg config.Config, clk clock.Clock) money.RateFetcher {
	fee := money.ParsePrice(cfg.Rates.FeePercent)
	if cfg.Rates.FeedURL == "" {
		slog.Info("using static exchange rates")
		return rates.NewStaticFetcher(
			money.ParsePrice(cfg.Rates.StaticEUR),
			money.ParsePrice(cfg.Rates.StaticGBP),
			fee,
			clk,
		)
	}
	return rates.NewBNRFetcher(rates.BNRFetcherConfig{
		URL:                cfg.Rates.FeedURL,
		FeePercent:         fee,
		Timeout:            cfg.Rates.FetchTimeout,
		BreakerMaxFailures: cfg.Rates.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.Rates.BreakerOpenTimeout,
	}, clk)
}

func NewRateCache(fetcher money.RateFetcher, clk clock.Clock, cfg config.Config) *money.RateCache {
	return money.NewRateCache(fetcher, clk, cfg.Rates.TTL)
}

func StartRateRefresher(lc fx.Lifecycle, cache *money.RateCache, cfg config.Config) {
	refresher := rates.NewRefresher(cache, cfg.Rates.TTL, cfg.Rates.FetchTimeout)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Rates.RefreshOnBoot {
				// A cold cache is tolerated; checkout settles in RON until a refresh succeeds.
				if err := cache.Refresh(ctx); err != nil {
					slog.Warn("initial exchange rate refresh failed", "error", err.Error())
				}
			}
			refresher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return refresher.Stop(ctx)
		},
	})
}
