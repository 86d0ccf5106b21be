package api

import (
	"net/http"
	"strconv"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/cookie"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds      commands.CartCommands
	cookieCfg config.CookieConfig
	cartCfg   config.CartConfig
}

func NewCartHandler(cmds commands.CartCommands, cfg config.Config) *CartHandler {
	return &CartHandler{cmds: cmds, cookieCfg: cfg.Cookie, cartCfg: cfg.Cart}
}

// @Summary Get cart
// @Description Returns the cart resynced against live stock; adjusted is true when lines changed
// @Tags cart
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	result, err := h.cmds.Get(c.Request.Context(), cookie.GetCartID(c))
	h.respond(c, http.StatusOK, result, err)
}

// @Summary Add cart item
// @Description Adds quantity to a line, issuing a cart id on first use
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.AddItem(c.Request.Context(), cookie.GetCartID(c), req.ProductID, req.Quantity)
	h.respond(c, http.StatusOK, result, err)
}

// @Summary Update cart item quantity
// @Description Sets the quantity exactly; 0 removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param productId path int true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.UpdateQuantity(c.Request.Context(), cookie.GetCartID(c), productID, *req.Quantity)
	h.respond(c, http.StatusOK, result, err)
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	result, err := h.cmds.RemoveItem(c.Request.Context(), cookie.GetCartID(c), productID)
	h.respond(c, http.StatusOK, result, err)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	result, err := h.cmds.Clear(c.Request.Context(), cookie.GetCartID(c))
	h.respond(c, http.StatusOK, result, err)
}

func (h *CartHandler) respond(c *gin.Context, status int, result *commands.CartResult, err error) {
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if result.CartID != "" {
		cookie.SetCartID(c, h.cookieCfg, result.CartID, h.cartCfg.TTL)
	}
	c.JSON(status, resdto.FromCartResult(result))
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid product id", nil)
		return 0, false
	}
	return id, true
}
