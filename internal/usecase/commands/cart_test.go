//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/product"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	commandsmock "storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *commandsmock.MockCartStore
	products *commandsmock.MockProductReader
	uc       commands.CartCommands
	cartID   string
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = commandsmock.NewMockCartStore(s.ctrl)
	s.products = commandsmock.NewMockProductReader(s.ctrl)
	s.uc = commands.NewCartCommands(s.store, s.products)
	s.cartID = uuid.NewString()
}

func item(p product.Product, qty int) cart.Item {
	return cart.Item{Snapshot: cart.SnapshotOf(p), Quantity: qty}
}

func notFound() error {
	return infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound)
}

func (s *CartCommandsTestSuite) TestGet() {
	ctx := context.Background()

	s.Run("success: empty id yields an empty cart without touching the store", func() {
		s.SetupTest()

		res, err := s.uc.Get(ctx, "")

		s.Require().NoError(err)
		s.Empty(res.Items)
		s.True(res.Subtotal.IsZero())
	})

	s.Run("success: unchanged cart is not rewritten", func() {
		s.SetupTest()
		p := builder.NewProductBuilder().WithID(1).WithStock(5).Build()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(p, 2)}, nil)
		s.products.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return([]product.Product{p}, nil)

		res, err := s.uc.Get(ctx, s.cartID)

		s.Require().NoError(err)
		s.False(res.Adjusted)
		s.Equal(2, res.TotalItems)
		s.Equal("200.00", res.Subtotal.StringFixed(2))
	})

	s.Run("success: resync clamps to live stock and drops sold out lines", func() {
		s.SetupTest()
		kept := builder.NewProductBuilder().WithID(1).WithStock(5).Build()
		gone := builder.NewProductBuilder().WithID(2).WithStock(5).Build()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(kept, 4), item(gone, 1)}, nil)
		live := builder.NewProductBuilder().WithID(1).WithStock(3).Build()
		s.products.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return([]product.Product{live}, nil)
		s.store.EXPECT().Save(gomock.Any(), s.cartID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, items []cart.Item) error {
				s.Require().Len(items, 1)
				s.Equal(3, items[0].Quantity)
				return nil
			})

		res, err := s.uc.Get(ctx, s.cartID)

		s.Require().NoError(err)
		s.True(res.Adjusted)
		s.Equal(3, res.TotalItems)
	})

	s.Run("error: store outage", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return(nil, errors.New("redis down"))

		_, err := s.uc.Get(ctx, s.cartID)

		s.True(errs.Is(err, commands.ErrCartStore))
	})
}

func (s *CartCommandsTestSuite) TestAddItem() {
	ctx := context.Background()
	p := builder.NewProductBuilder().WithID(1).WithStock(3).Build()

	s.Run("success: invalid cart id gets a fresh one", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.products.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&p, nil)
		s.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)

		res, err := s.uc.AddItem(ctx, "not-a-uuid", 1, 2)

		s.Require().NoError(err)
		_, perr := uuid.Parse(res.CartID)
		s.NoError(perr)
		s.Equal(2, res.TotalItems)
	})

	s.Run("error: exceeding stock across calls", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(p, 2)}, nil)
		s.products.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&p, nil)

		_, err := s.uc.AddItem(ctx, s.cartID, 1, 2)

		s.ErrorIs(err, cart.ErrStockExceeded)
	})

	s.Run("error: unknown product", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return(nil, nil)
		s.products.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, notFound())

		_, err := s.uc.AddItem(ctx, s.cartID, 42, 1)

		s.True(errs.Is(err, commands.ErrProductNotFound))
	})
}

func (s *CartCommandsTestSuite) TestUpdateQuantity() {
	ctx := context.Background()
	p := builder.NewProductBuilder().WithID(1).WithStock(5).Build()

	s.Run("success: sets quantity against live stock", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(p, 1)}, nil)
		s.products.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&p, nil)
		s.store.EXPECT().Save(gomock.Any(), s.cartID, gomock.Any()).Return(nil)

		res, err := s.uc.UpdateQuantity(ctx, s.cartID, 1, 4)

		s.Require().NoError(err)
		s.Equal(4, res.TotalItems)
	})

	s.Run("success: zero removes the line and deletes the empty cart", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(p, 1)}, nil)
		s.store.EXPECT().Delete(gomock.Any(), s.cartID).Return(nil)

		res, err := s.uc.UpdateQuantity(ctx, s.cartID, 1, 0)

		s.Require().NoError(err)
		s.Empty(res.Items)
	})

	s.Run("error: live stock lower than request", func() {
		s.SetupTest()
		live := builder.NewProductBuilder().WithID(1).WithStock(2).Build()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(p, 1)}, nil)
		s.products.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&live, nil)

		_, err := s.uc.UpdateQuantity(ctx, s.cartID, 1, 4)

		s.ErrorIs(err, cart.ErrStockExceeded)
	})

	s.Run("error: sold out product is dropped", func() {
		s.SetupTest()
		soldOut := builder.NewProductBuilder().WithID(1).WithStock(0).Build()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(p, 1)}, nil)
		s.products.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&soldOut, nil)
		s.store.EXPECT().Delete(gomock.Any(), s.cartID).Return(nil)

		_, err := s.uc.UpdateQuantity(ctx, s.cartID, 1, 1)

		s.ErrorIs(err, cart.ErrOutOfStock)
	})

	s.Run("error: line not in cart", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return(nil, nil)

		_, err := s.uc.UpdateQuantity(ctx, s.cartID, 1, 1)

		s.ErrorIs(err, cart.ErrItemNotFound)
	})
}

func (s *CartCommandsTestSuite) TestRemoveAndClear() {
	ctx := context.Background()
	a := builder.NewProductBuilder().WithID(1).Build()
	b := builder.NewProductBuilder().WithID(2).Build()

	s.Run("success: remove keeps other lines", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(a, 1), item(b, 1)}, nil)
		s.store.EXPECT().Save(gomock.Any(), s.cartID, gomock.Len(1)).Return(nil)

		res, err := s.uc.RemoveItem(ctx, s.cartID, 1)

		s.Require().NoError(err)
		s.Require().Len(res.Items, 1)
		s.Equal(int64(2), res.Items[0].ProductID)
	})

	s.Run("success: clear deletes the stored cart", func() {
		s.SetupTest()
		s.store.EXPECT().Delete(gomock.Any(), s.cartID).Return(nil)

		res, err := s.uc.Clear(ctx, s.cartID)

		s.Require().NoError(err)
		s.Zero(res.TotalItems)
	})

	s.Run("success: removing an absent line returns the cart unchanged", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return([]cart.Item{item(b, 1)}, nil).Times(2)
		s.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		for range 2 {
			res, err := s.uc.RemoveItem(ctx, s.cartID, 1)

			s.Require().NoError(err)
			s.Require().Len(res.Items, 1)
			s.Equal(int64(2), res.Items[0].ProductID)
		}
	})

	s.Run("success: removing from an empty stored cart", func() {
		s.SetupTest()
		s.store.EXPECT().Load(gomock.Any(), s.cartID).Return(nil, nil)

		res, err := s.uc.RemoveItem(ctx, s.cartID, 1)

		s.Require().NoError(err)
		s.Empty(res.Items)
		s.Zero(res.TotalItems)
	})

	s.Run("success: empty id yields an empty cart without touching the store", func() {
		s.SetupTest()

		res, err := s.uc.RemoveItem(ctx, "", 1)

		s.Require().NoError(err)
		s.Empty(res.Items)
	})
}
