//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/checkout"
	"storefront/internal/domain/money"
	"storefront/internal/domain/order"
	"storefront/internal/domain/promotion"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	"storefront/tests/common/memuow"
	commandsmock "storefront/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *memuow.Store
	gateway *commandsmock.MockPaymentGateway
	rates   *commandsmock.MockRateProvider
	clock   *clock.MockClock
	uc      commands.CheckoutCommands
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memuow.New()
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.rates = commandsmock.NewMockRateProvider(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	s.uc = commands.NewCheckoutCommands(s.store, s.gateway, s.rates, s.clock, config.NewTestConfig())

	s.store.AddProduct(builder.NewProductBuilder().WithID(1).WithPrice("100.00").WithStock(5).Build())
	s.store.AddProduct(builder.NewProductBuilder().WithID(2).WithPrice("49.90").WithStock(1).Build())
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CheckoutCommandsTestSuite) input(locale string, lines ...checkout.Line) commands.CheckoutInput {
	email := "guest@example.com"
	return commands.CheckoutInput{
		Request: checkout.Request{
			Lines:      lines,
			Shipping:   builder.NewOrderBuilder().Shipping(),
			GuestEmail: &email,
			Locale:     locale,
		},
	}
}

func (s *CheckoutCommandsTestSuite) TestCreateCheckoutSession() {
	ctx := context.Background()

	s.Run("success: RON order is created pending and session attached", func() {
		s.SetupTest()
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PaymentSessionRequest) (*commands.PaymentSession, error) {
				s.Equal(money.RON, req.Currency)
				s.True(decimal.RequireFromString("200").Equal(req.Amount))
				s.Nil(req.ExchangeRate)
				s.Equal(s.clock.Now().Add(30*time.Minute), req.ExpiresAt)
				return &commands.PaymentSession{ID: "cs_test_1", URL: "https://pay.example/cs_test_1"}, nil
			})

		res, err := s.uc.CreateCheckoutSession(ctx, s.input("ro", checkout.Line{ProductID: 1, Quantity: 2}))

		s.Require().NoError(err)
		s.Equal("cs_test_1", res.SessionID)
		s.Equal("https://pay.example/cs_test_1", res.URL)
		s.Equal(money.RON, res.Currency)

		o, ok := s.store.Order(res.OrderID)
		s.Require().True(ok)
		s.Equal(order.StatusPending, o.Status())
		s.Require().NotNil(o.PaymentSessionID())
		s.Equal("cs_test_1", *o.PaymentSessionID())
		s.Equal(5, s.store.Product(1).Stock, "checkout never touches stock")
	})

	s.Run("success: EUR locale converts with fee and rounds to cents", func() {
		s.SetupTest()
		s.rates.EXPECT().Get(gomock.Any()).Return(&money.Rates{
			EUR:        decimal.RequireFromString("4.97"),
			GBP:        decimal.RequireFromString("5.88"),
			FeePercent: decimal.RequireFromString("2"),
		}, nil)
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PaymentSessionRequest) (*commands.PaymentSession, error) {
				s.Equal(money.EUR, req.Currency)
				s.Require().NotNil(req.ExchangeRate)
				s.True(decimal.RequireFromString("4.97").Equal(*req.ExchangeRate))
				return &commands.PaymentSession{ID: "cs_eur", URL: "https://pay.example/cs_eur"}, nil
			})

		res, err := s.uc.CreateCheckoutSession(ctx, s.input("en-GB", checkout.Line{ProductID: 1, Quantity: 2}))

		s.Require().NoError(err)
		s.Equal(money.EUR, res.Currency)
		// 200 * 1.02 / 4.97
		s.Equal("41.05", res.Amount.StringFixed(2))
		o, _ := s.store.Order(res.OrderID)
		s.Equal(money.EUR, o.SettlementCurrency())
	})

	s.Run("success: rates failure falls back to RON settlement", func() {
		s.SetupTest()
		s.rates.EXPECT().Get(gomock.Any()).Return(nil, money.ErrRatesUnavailable)
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{ID: "cs_ron", URL: "u"}, nil)

		res, err := s.uc.CreateCheckoutSession(ctx, s.input("en", checkout.Line{ProductID: 1, Quantity: 1}))

		s.Require().NoError(err)
		s.Equal(money.RON, res.Currency)
		s.Equal("100.00", res.Amount.StringFixed(2))
	})

	s.Run("success: active promotion discounts the order", func() {
		s.SetupTest()
		s.store.AddPromotion(promotion.Promotion{
			ID:              1,
			Name:            "Spring",
			DiscountPercent: decimal.NewFromInt(10),
			StartsAt:        s.clock.Now().Add(-time.Hour),
			EndsAt:          s.clock.Now().Add(time.Hour),
			IsActive:        true,
		})
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{ID: "cs_promo", URL: "u"}, nil)

		res, err := s.uc.CreateCheckoutSession(ctx, s.input("ro", checkout.Line{ProductID: 1, Quantity: 2}))

		s.Require().NoError(err)
		s.Equal("180.00", res.Amount.StringFixed(2))
		o, _ := s.store.Order(res.OrderID)
		s.Equal("20.00", o.Totals().Discount.StringFixed(2))
	})

	s.Run("success: duplicate lines are merged before stock check", func() {
		s.SetupTest()
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{ID: "cs_merge", URL: "u"}, nil)

		res, err := s.uc.CreateCheckoutSession(ctx, s.input("ro",
			checkout.Line{ProductID: 1, Quantity: 2},
			checkout.Line{ProductID: 1, Quantity: 3},
		))

		s.Require().NoError(err)
		o, _ := s.store.Order(res.OrderID)
		s.Equal(map[int64]int{1: 5}, o.Quantities())
	})

	s.Run("success: session attach failure still returns the session", func() {
		s.SetupTest()
		s.store.Fail["orders.find_for_update"] = errors.New("connection reset")
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{ID: "cs_detached", URL: "u"}, nil)

		res, err := s.uc.CreateCheckoutSession(ctx, s.input("ro", checkout.Line{ProductID: 1, Quantity: 1}))

		s.Require().NoError(err)
		o, ok := s.store.Order(res.OrderID)
		s.Require().True(ok)
		s.Nil(o.PaymentSessionID())
	})

	s.Run("error: insufficient stock names the line", func() {
		s.SetupTest()

		_, err := s.uc.CreateCheckoutSession(ctx, s.input("ro",
			checkout.Line{ProductID: 1, Quantity: 1},
			checkout.Line{ProductID: 2, Quantity: 3},
		))

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrInsufficientStock))
		var detail *commands.InsufficientStockError
		s.Require().ErrorAs(err, &detail)
		s.Equal(int64(2), detail.ProductID)
		s.Equal(3, detail.Requested)
		s.Equal(1, detail.Available)
		s.Empty(s.store.Orders())
	})

	s.Run("error: unknown product is unavailable", func() {
		s.SetupTest()

		_, err := s.uc.CreateCheckoutSession(ctx, s.input("ro", checkout.Line{ProductID: 999, Quantity: 1}))

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrProductUnavailable))
		s.Empty(s.store.Orders())
	})

	s.Run("error: invalid request is a validation error", func() {
		s.SetupTest()

		_, err := s.uc.CreateCheckoutSession(ctx, s.input("ro"))

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.Zero(s.store.Calls)
	})

	s.Run("error: unsupported locale is a validation error", func() {
		s.SetupTest()

		_, err := s.uc.CreateCheckoutSession(ctx, s.input("de", checkout.Line{ProductID: 1, Quantity: 1}))

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: gateway failure is a payment provider error", func() {
		s.SetupTest()
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe: 500"))

		_, err := s.uc.CreateCheckoutSession(ctx, s.input("ro", checkout.Line{ProductID: 1, Quantity: 1}))

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrPaymentProvider))
		orders := s.store.Orders()
		s.Require().Len(orders, 1)
		s.Equal(order.StatusPending, orders[0].Status())
	})

	s.Run("error: repository failure rolls back", func() {
		s.SetupTest()
		s.store.Fail["orders.create"] = errors.New("disk full")

		_, err := s.uc.CreateCheckoutSession(ctx, s.input("ro", checkout.Line{ProductID: 1, Quantity: 1}))

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
		s.Empty(s.store.Orders())
		s.Zero(s.store.Commits)
	})
}
