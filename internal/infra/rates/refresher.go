package rates

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type refreshable interface {
	Refresh(ctx context.Context) error
}

// Refresher reloads the rate cache on a fixed interval until stopped.
type Refresher struct {
	cache    refreshable
	interval time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func NewRefresher(cache refreshable, interval, timeout time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Refresher{
		cache:    cache,
		interval: interval,
		timeout:  timeout,
	}
}

func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	r.started = true

	go r.loop(ctx, r.done)
}

// Stop cancels the loop and waits for it, bounded by ctx.
func (r *Refresher) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	r.cancel()
	done := r.done
	r.started = false
	r.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Refresher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refreshOnce(ctx)
		}
	}
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.cache.Refresh(refreshCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("exchange rate refresh failed", "error", err.Error())
		return
	}
	slog.Debug("exchange rates refreshed")
}
