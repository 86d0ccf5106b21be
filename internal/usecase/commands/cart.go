package commands

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart_mock.go -package=commandsmock

var (
	ErrProductNotFound = errs.New("product not found")
	ErrCartStore       = errs.New("cart store unavailable")
)

type CartResult struct {
	CartID     string
	Items      []cart.Item
	TotalItems int
	Subtotal   decimal.Decimal
	// Adjusted is set when a resync against live stock changed the cart.
	Adjusted bool
}

type CartCommands interface {
	Get(ctx context.Context, cartID string) (*CartResult, error)
	AddItem(ctx context.Context, cartID string, productID int64, qty int) (*CartResult, error)
	UpdateQuantity(ctx context.Context, cartID string, productID int64, qty int) (*CartResult, error)
	RemoveItem(ctx context.Context, cartID string, productID int64) (*CartResult, error)
	Clear(ctx context.Context, cartID string) (*CartResult, error)
}

type cartCommandsImpl struct {
	store    CartStore
	products ProductReader
}

func NewCartCommands(store CartStore, products ProductReader) CartCommands {
	return &cartCommandsImpl{store: store, products: products}
}

// Get loads the cart and resyncs it against live catalog data.
func (uc *cartCommandsImpl) Get(ctx context.Context, cartID string) (*CartResult, error) {
	if cartID == "" {
		return &CartResult{Items: []cart.Item{}, Subtotal: decimal.Zero}, nil
	}
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	adjusted := false
	if !c.IsEmpty() {
		adjusted, err = uc.resync(ctx, c)
		if err != nil {
			return nil, err
		}
		if adjusted {
			if err := uc.save(ctx, cartID, c); err != nil {
				return nil, err
			}
		}
	}
	return toCartResult(cartID, c, adjusted), nil
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, cartID string, productID int64, qty int) (*CartResult, error) {
	cartID = ensureCartID(cartID)
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.AddItem(cart.SnapshotOf(*p), qty); err != nil {
		return nil, err
	}
	if err := uc.save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return toCartResult(cartID, c, false), nil
}

// UpdateQuantity validates against live stock, not the cached snapshot.
func (uc *cartCommandsImpl) UpdateQuantity(ctx context.Context, cartID string, productID int64, qty int) (*CartResult, error) {
	if cartID == "" {
		return nil, cart.ErrItemNotFound
	}
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !c.Contains(productID) {
		return nil, cart.ErrItemNotFound
	}

	if qty > 0 {
		p, err := uc.products.FindByID(ctx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				c.RemoveItem(productID)
				if serr := uc.save(ctx, cartID, c); serr != nil {
					return nil, serr
				}
				return nil, errs.Mark(err, ErrProductNotFound)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snaps := make(map[int64]cart.Snapshot, len(c.Items()))
		for _, it := range c.Items() {
			snaps[it.ProductID] = it.Snapshot
		}
		snaps[productID] = cart.SnapshotOf(*p)
		c.Resync(snaps)
		if !c.Contains(productID) {
			if serr := uc.save(ctx, cartID, c); serr != nil {
				return nil, serr
			}
			return nil, cart.ErrOutOfStock
		}
	}

	if err := c.UpdateQuantity(productID, qty); err != nil {
		return nil, err
	}
	if err := uc.save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return toCartResult(cartID, c, false), nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, cartID string, productID int64) (*CartResult, error) {
	if cartID == "" {
		return toCartResult(cartID, cart.New(), false), nil
	}
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !c.Contains(productID) {
		return toCartResult(cartID, c, false), nil
	}
	c.RemoveItem(productID)
	if err := uc.save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return toCartResult(cartID, c, false), nil
}

func (uc *cartCommandsImpl) Clear(ctx context.Context, cartID string) (*CartResult, error) {
	if cartID != "" {
		if err := uc.store.Delete(ctx, cartID); err != nil {
			return nil, errs.Mark(err, ErrCartStore)
		}
	}
	return toCartResult(cartID, cart.New(), false), nil
}

func (uc *cartCommandsImpl) load(ctx context.Context, cartID string) (*cart.Cart, error) {
	items, err := uc.store.Load(ctx, cartID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartStore)
	}
	return cart.New(items...), nil
}

func (uc *cartCommandsImpl) save(ctx context.Context, cartID string, c *cart.Cart) error {
	if c.IsEmpty() {
		if err := uc.store.Delete(ctx, cartID); err != nil {
			return errs.Mark(err, ErrCartStore)
		}
		return nil
	}
	if err := uc.store.Save(ctx, cartID, c.Items()); err != nil {
		return errs.Mark(err, ErrCartStore)
	}
	return nil
}

func (uc *cartCommandsImpl) resync(ctx context.Context, c *cart.Cart) (bool, error) {
	latest, err := uc.products.FindByIDs(ctx, c.ProductIDs())
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	snaps := make(map[int64]cart.Snapshot, len(latest))
	for _, p := range latest {
		snaps[p.ID] = cart.SnapshotOf(p)
	}
	return c.Resync(snaps), nil
}

func ensureCartID(cartID string) string {
	if _, err := uuid.Parse(cartID); err == nil {
		return cartID
	}
	return uuid.NewString()
}

func toCartResult(cartID string, c *cart.Cart, adjusted bool) *CartResult {
	return &CartResult{
		CartID:     cartID,
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		Subtotal:   c.TotalPrice(),
		Adjusted:   adjusted,
	}
}
