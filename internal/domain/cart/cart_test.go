//go:build unit

package cart_test

import (
	"testing"

	"storefront/internal/domain/cart"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func snapshot(id int64, price string, stock int) cart.Snapshot {
	return builder.NewProductBuilder().WithID(id).WithPrice(price).WithStock(stock).BuildSnapshot()
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		stock    int
		add      int
		wantQty  int
		errIs    error
	}{
		{name: "new line", stock: 5, add: 2, wantQty: 2},
		{name: "merges into existing line", existing: 2, stock: 5, add: 3, wantQty: 5},
		{name: "exceeding stock is rejected", existing: 2, stock: 5, add: 4, wantQty: 2, errIs: cart.ErrStockExceeded},
		{name: "out of stock", stock: 0, add: 1, errIs: cart.ErrOutOfStock},
		{name: "zero quantity", stock: 5, add: 0, errIs: cart.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New()
			if tt.existing > 0 {
				require.NoError(t, c.AddItem(snapshot(1, "10.00", tt.stock), tt.existing))
			}

			err := c.AddItem(snapshot(1, "10.00", tt.stock), tt.add)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantQty, c.QuantityOf(1))
		})
	}

	t.Run("replaces the cached snapshot", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.AddItem(snapshot(1, "10.00", 5), 1))
		require.NoError(t, c.AddItem(snapshot(1, "12.00", 5), 1))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "12.00", items[0].PriceRON.StringFixed(2))
		assert.Equal(t, "24.00", c.TotalPrice().StringFixed(2))
	})
}

func TestUpdateQuantity(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(snapshot(1, "10.00", 5), 1))
	require.NoError(t, c.AddItem(snapshot(2, "20.00", 5), 1))

	require.NoError(t, c.UpdateQuantity(1, 4))
	assert.Equal(t, 4, c.QuantityOf(1))

	require.ErrorIs(t, c.UpdateQuantity(1, 6), cart.ErrStockExceeded)
	require.ErrorIs(t, c.UpdateQuantity(99, 1), cart.ErrItemNotFound)

	require.NoError(t, c.UpdateQuantity(2, 0))
	assert.False(t, c.Contains(2))
	assert.Equal(t, []int64{1}, c.ProductIDs())
}

func TestResync(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(snapshot(1, "10.00", 5), 5))
	require.NoError(t, c.AddItem(snapshot(2, "20.00", 5), 1))
	require.NoError(t, c.AddItem(snapshot(3, "30.00", 5), 1))

	changed := c.Resync(map[int64]cart.Snapshot{
		1: snapshot(1, "11.00", 3),
		2: snapshot(2, "20.00", 0),
	})

	assert.True(t, changed)
	assert.Equal(t, []int64{1}, c.ProductIDs())
	assert.Equal(t, 3, c.QuantityOf(1))
	assert.Equal(t, "33.00", c.TotalPrice().StringFixed(2))

	assert.False(t, c.Resync(map[int64]cart.Snapshot{1: snapshot(1, "11.00", 3)}))
}

func TestNewClampsToStock(t *testing.T) {
	c := cart.New(
		cart.Item{Snapshot: snapshot(1, "10.00", 2), Quantity: 5},
		cart.Item{Snapshot: snapshot(2, "10.00", 0), Quantity: 1},
		cart.Item{Snapshot: snapshot(3, "10.00", 4), Quantity: 0},
	)

	assert.Equal(t, []int64{1}, c.ProductIDs())
	assert.Equal(t, 2, c.TotalItems())
}

// Any sequence of operations keeps every line within its snapshot's stock
// and the totals consistent with the lines.
func TestCartInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := cart.New()
		stocks := map[int64]int{}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.Int64Range(1, 5).Draw(t, "id")
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				stock := rapid.IntRange(0, 10).Draw(t, "stock")
				stocks[id] = stock
				_ = c.AddItem(snapshot(id, "9.99", stock), rapid.IntRange(-1, 12).Draw(t, "qty"))
			case 1:
				_ = c.UpdateQuantity(id, rapid.IntRange(-1, 12).Draw(t, "qty"))
			case 2:
				c.RemoveItem(id)
			case 3:
				latest := map[int64]cart.Snapshot{}
				for pid := range stocks {
					if rapid.Bool().Draw(t, "keep") {
						s := rapid.IntRange(0, 10).Draw(t, "restock")
						stocks[pid] = s
						latest[pid] = snapshot(pid, "9.99", s)
					}
				}
				c.Resync(latest)
			}
		}

		total := 0
		seen := map[int64]bool{}
		for _, it := range c.Items() {
			if it.Quantity <= 0 || it.Quantity > it.Stock {
				t.Fatalf("line %d has quantity %d with stock %d", it.ProductID, it.Quantity, it.Stock)
			}
			if seen[it.ProductID] {
				t.Fatalf("duplicate line %d", it.ProductID)
			}
			seen[it.ProductID] = true
			total += it.Quantity
		}
		if total != c.TotalItems() {
			t.Fatalf("total items %d, lines sum %d", c.TotalItems(), total)
		}
	})
}
