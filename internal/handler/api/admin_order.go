package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminOrderHandler struct {
	cmds commands.OrderStatusCommands
	q    queries.OrderQueries
}

func NewAdminOrderHandler(cmds commands.OrderStatusCommands, q queries.OrderQueries) *AdminOrderHandler {
	return &AdminOrderHandler{cmds: cmds, q: q}
}

// @Summary List orders
// @Description Newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/orders [get]
func (h *AdminOrderHandler) List(c *gin.Context) {
	var q reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	view, err := h.q.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromOrderList(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get order (admin)
// @Description Order detail including the statuses it may move to next
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.AdminOrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/orders/{id} [get]
func (h *AdminOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid order id", nil)
		return
	}
	view, err := h.q.GetAdminDetail(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAdminOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Change order status
// @Description Applies a transition from the status table
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ChangeOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.ChangeStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/orders/{id}/status [patch]
func (h *AdminOrderHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid order id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ChangeStatusResponse{
		OrderID: result.OrderID.String(),
		From:    result.From.String(),
		To:      result.To.String(),
	})
}
