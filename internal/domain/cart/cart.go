package cart

import (
	"errors"

	"storefront/internal/domain/money"
	"storefront/internal/domain/product"

	"github.com/shopspring/decimal"
)

var (
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrStockExceeded   = errors.New("requested quantity exceeds available stock")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Snapshot is the product data cached on a line at add time.
type Snapshot struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Slug      string          `json:"slug"`
	VolumeML  int             `json:"volumeMl"`
	PriceRON  decimal.Decimal `json:"priceRON"`
	Stock     int             `json:"stock"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

func SnapshotOf(p product.Product) Snapshot {
	return Snapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Slug:      p.Slug,
		VolumeML:  p.VolumeML,
		PriceRON:  p.PriceRON,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
	}
}

type Item struct {
	Snapshot
	Quantity int `json:"quantity"`
}

func (i Item) LineTotal() decimal.Decimal {
	return i.PriceRON.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is advisory client state. Every line keeps Quantity <= Stock of its snapshot.
type Cart struct {
	items []Item
}

func New(items ...Item) *Cart {
	c := &Cart{}
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if it.Quantity > it.Stock {
			it.Quantity = it.Stock
		}
		if it.Quantity == 0 {
			continue
		}
		if idx := c.indexOf(it.ProductID); idx >= 0 {
			c.items[idx] = it
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem merges qty into an existing line or appends a new one. The cached
// snapshot is always replaced with the one passed in.
func (c *Cart) AddItem(p Snapshot, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock <= 0 {
		return ErrOutOfStock
	}

	idx := c.indexOf(p.ProductID)
	existing := 0
	if idx >= 0 {
		existing = c.items[idx].Quantity
	}
	if existing+qty > p.Stock {
		return ErrStockExceeded
	}

	if idx >= 0 {
		c.items[idx].Snapshot = p
		c.items[idx].Quantity = existing + qty
		return nil
	}
	c.items = append(c.items, Item{Snapshot: p, Quantity: qty})
	return nil
}

// UpdateQuantity sets qty exactly; qty <= 0 removes the line.
func (c *Cart) UpdateQuantity(productID int64, qty int) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		return ErrItemNotFound
	}
	if qty <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return nil
	}
	if qty > c.items[idx].Stock {
		return ErrStockExceeded
	}
	c.items[idx].Quantity = qty
	return nil
}

func (c *Cart) RemoveItem(productID int64) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Resync refreshes snapshots from latest and clamps quantities to the new stock.
// Lines whose product disappeared or sold out are dropped. It reports whether
// anything changed.
func (c *Cart) Resync(latest map[int64]Snapshot) bool {
	changed := false
	kept := c.items[:0]
	for _, it := range c.items {
		snap, ok := latest[it.ProductID]
		if !ok || snap.Stock <= 0 {
			changed = true
			continue
		}
		if !sameSnapshot(snap, it.Snapshot) {
			changed = true
		}
		it.Snapshot = snap
		if it.Quantity > snap.Stock {
			it.Quantity = snap.Stock
			changed = true
		}
		kept = append(kept, it)
	}
	c.items = kept
	return changed
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice sums line totals through the converter's base-currency path.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(money.Convert(it.LineTotal(), money.Base, nil))
	}
	return money.Round2(total)
}

func (c *Cart) QuantityOf(productID int64) int {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.items[idx].Quantity
	}
	return 0
}

func (c *Cart) Contains(productID int64) bool {
	return c.indexOf(productID) >= 0
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.items))
	for _, it := range c.items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

func sameSnapshot(a, b Snapshot) bool {
	return a.ProductID == b.ProductID &&
		a.Name == b.Name &&
		a.Brand == b.Brand &&
		a.Slug == b.Slug &&
		a.VolumeML == b.VolumeML &&
		a.PriceRON.Equal(b.PriceRON) &&
		a.Stock == b.Stock &&
		a.ImageURL == b.ImageURL
}
