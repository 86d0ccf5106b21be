//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/domain/user"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderStatusCommands
	mockQueries  *queriesmock.MockOrderQueries
	mockRates    *queriesmock.MockRateQueries
	adminID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderStatusCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockRates = queriesmock.NewMockRateQueries(s.mockCtrl)
	s.adminID = uuid.New()

	orders := api.NewOrderHandler(s.mockQueries)
	admin := api.NewAdminOrderHandler(s.mockCommands, s.mockQueries)
	rates := api.NewRateHandler(s.mockRates)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/orders/statuses", orders.Statuses)
	s.router.GET("/orders/session/:sessionId", orders.GetBySession)
	s.router.GET("/orders/:id", orders.Get)
	s.router.GET("/admin/orders", authMiddleware, admin.List)
	s.router.GET("/admin/orders/:id", authMiddleware, admin.Get)
	s.router.PATCH("/admin/orders/:id/status", authMiddleware, admin.ChangeStatus)
	s.router.GET("/exchange-rates", rates.Current)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGet() {
	view := builder.NewOrderBuilder().WithSession("cs_1").BuildView()

	s.Run("success: money is rendered with two decimals", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(view.OrderNumber, response.OrderNumber)
		s.Equal("200.00", response.Total)
		s.Equal("RON", response.Currency)
		s.Equal("PENDING", response.Status)
		s.Require().Len(response.Items, 1)
		s.Equal("100.00", response.Items[0].UnitPrice)
		s.Equal("Bucharest", response.Shipping.City)
	})

	s.Run("success: lookup by session", func() {
		s.mockQueries.EXPECT().GetBySessionID(gomock.Any(), "cs_1").Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/session/cs_1", nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order id")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), queries.ErrOrderNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+uuid.NewString(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestStatuses() {
	s.mockQueries.EXPECT().StatusTable().Return(&queries.StatusTableView{
		Statuses:    []string{"PENDING", "CANCELLED"},
		Transitions: map[string][]string{"PENDING": {"CANCELLED"}, "CANCELLED": {}},
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/statuses", nil, "")

	var response resdto.StatusTableResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal([]string{"CANCELLED"}, response.Transitions["PENDING"])
}

func (s *OrderHandlerTestSuite) TestAdminList() {
	s.Run("success: filter and paging are forwarded", func() {
		view := builder.NewOrderBuilder().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any(), queries.OrderFilter{Status: "PAID", Page: queries.Page{Limit: 10, Offset: 20}}).
			Return(&queries.OrderListView{Items: []queries.OrderView{view}, Total: 21, Limit: 10, Offset: 20}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders?status=PAID&limit=10&offset=20", nil, "token")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(21), response.Total)
		s.Len(response.Orders, 1)
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders", nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: unknown status filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation(errs.Mark(order.ErrUnknownStatus, queries.ErrInvalidFilter)))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders?status=LOST", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestAdminGet() {
	view := builder.NewOrderBuilder().WithStatus(order.StatusPaid).AsPaid().WithHold(order.HoldStockShortfall).BuildView()
	s.mockQueries.EXPECT().GetAdminDetail(gomock.Any(), view.ID).
		Return(&queries.AdminOrderView{OrderView: view, AllowedTransitions: []string{"CANCELLED", "REFUNDED"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders/"+view.ID.String(), nil, "token")

	var response resdto.AdminOrderResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("STOCK_SHORTFALL", response.FulfillmentHold)
	s.Equal([]string{"CANCELLED", "REFUNDED"}, response.AllowedTransitions)
	s.Require().NotNil(response.PaidAmount)
}

func (s *OrderHandlerTestSuite) TestAdminChangeStatus() {
	id := uuid.New()
	url := "/admin/orders/" + id.String() + "/status"

	s.Run("success: actor is the authenticated admin", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), id, "SHIPPED", s.adminID).
			Return(&commands.ChangeStatusResult{OrderID: id, From: order.StatusProcessing, To: order.StatusShipped}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "SHIPPED"}, "token")

		var response resdto.ChangeStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("PROCESSING", response.From)
		s.Equal("SHIPPED", response.To)
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps transition errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "invalid transition", err: errs.Mark(order.ErrInvalidTransition, commands.ErrInvalidTransition), status: http.StatusConflict, code: "INVALID_TRANSITION"},
			{name: "fulfillment hold", err: errs.Mark(order.ErrFulfillmentHold, commands.ErrFulfillmentHold), status: http.StatusConflict, code: "FULFILLMENT_HOLD"},
			{name: "unknown status", err: errs.Mark(errs.Validation(order.ErrUnknownStatus), commands.ErrUnknownStatus), status: http.StatusBadRequest, code: "INVALID_STATUS"},
			{name: "missing order", err: errs.Mark(errors.New("no rows"), commands.ErrOrderNotFound), status: http.StatusNotFound, code: "ORDER_NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), id, gomock.Any(), s.adminID).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "X"}, "token")

				s.Equal(tc.status, rec.Code)
				var body struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.Equal(tc.code, body.Error.Code)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestRates() {
	s.Run("success: cached snapshot", func() {
		fetched := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		s.mockRates.EXPECT().Current(gomock.Any()).Return(&queries.RatesView{
			Base:       "RON",
			EUR:        decimal.RequireFromString("4.9771"),
			GBP:        decimal.RequireFromString("5.8812"),
			FeePercent: decimal.RequireFromString("2"),
			FetchedAt:  fetched,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exchange-rates", nil, "")

		var response resdto.RatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("4.9771", response.EUR)
		s.Equal("2025-03-01T09:00:00Z", response.FetchedAt)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Cache-Control": "public, max-age=300"})
	})

	s.Run("error: no snapshot", func() {
		s.mockRates.EXPECT().Current(gomock.Any()).Return(nil, errs.Mark(errors.New("feed down"), queries.ErrRatesUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exchange-rates", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Exchange rates are unavailable")
	})
}
