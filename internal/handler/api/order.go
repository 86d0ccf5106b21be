package api

import (
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary Get order
// @Description Order confirmation data by order id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid order id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, view)
}

// @Summary Get order by payment session
// @Description Used by the payment success page, which only knows the session id
// @Tags orders
// @Produce json
// @Param sessionId path string true "Payment session ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/session/{sessionId} [get]
func (h *OrderHandler) GetBySession(c *gin.Context) {
	view, err := h.q.GetBySessionID(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, view)
}

// @Summary Order status table
// @Description Every status with the statuses an administrator may move it to
// @Tags orders
// @Produce json
// @Success 200 {object} resdto.StatusTableResponse
// @Router /api/orders/statuses [get]
func (h *OrderHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromStatusTable(h.q.StatusTable()))
}

func (h *OrderHandler) respond(c *gin.Context, view *queries.OrderView) {
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
