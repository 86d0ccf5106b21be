//go:build unit

package cartstore_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/infra/cartstore"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*cartstore.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cartstore.NewRedisCartStore(client, "test", time.Hour), mr
}

func TestRedisCartStore(t *testing.T) {
	ctx := context.Background()
	p := builder.NewProductBuilder().WithPrice("89.95").Build()
	items := []cart.Item{{Snapshot: cart.SnapshotOf(p), Quantity: 2}}

	t.Run("round trip keeps decimal prices", func(t *testing.T) {
		store, mr := newStore(t)

		require.NoError(t, store.Save(ctx, "c1", items))
		got, err := store.Load(ctx, "c1")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].PriceRON.Equal(p.PriceRON))
		assert.Equal(t, 2, got[0].Quantity)
		assert.True(t, mr.Exists("test:cart:c1"))
	})

	t.Run("missing cart is empty", func(t *testing.T) {
		store, _ := newStore(t)

		got, err := store.Load(ctx, "nope")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("reads slide the expiry", func(t *testing.T) {
		store, mr := newStore(t)
		require.NoError(t, store.Save(ctx, "c1", items))

		mr.FastForward(50 * time.Minute)
		_, err := store.Load(ctx, "c1")
		require.NoError(t, err)
		mr.FastForward(50 * time.Minute)

		assert.True(t, mr.Exists("test:cart:c1"))
		mr.FastForward(2 * time.Hour)
		assert.False(t, mr.Exists("test:cart:c1"))
	})

	t.Run("delete", func(t *testing.T) {
		store, mr := newStore(t)
		require.NoError(t, store.Save(ctx, "c1", items))

		require.NoError(t, store.Delete(ctx, "c1"))

		assert.False(t, mr.Exists("test:cart:c1"))
	})

	t.Run("corrupt payload", func(t *testing.T) {
		store, mr := newStore(t)
		require.NoError(t, mr.Set("test:cart:c1", "{not json"))

		_, err := store.Load(ctx, "c1")

		assert.True(t, errs.Is(err, cartstore.ErrCorruptCart))
	})

	t.Run("server down", func(t *testing.T) {
		store, mr := newStore(t)
		mr.Close()

		_, err := store.Load(ctx, "c1")

		assert.Error(t, err)
	})
}
