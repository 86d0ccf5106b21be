package api

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/domain/cart"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{commands.ErrPaymentProvider, http.StatusBadGateway, httperr.CodePaymentProvider, "Payment provider is unavailable, please try again"},
	{commands.ErrInsufficientStock, http.StatusConflict, httperr.CodeInsufficientStock, "Insufficient stock"},
	{commands.ErrProductUnavailable, http.StatusConflict, httperr.CodeProductUnavailable, "Product is no longer available"},
	{commands.ErrProductNotFound, http.StatusNotFound, httperr.CodeProductNotFound, "Product not found"},
	{cart.ErrOutOfStock, http.StatusConflict, httperr.CodeOutOfStock, "Product is out of stock"},
	{cart.ErrStockExceeded, http.StatusConflict, httperr.CodeStockExceeded, "Requested quantity exceeds available stock"},
	{cart.ErrInvalidQuantity, http.StatusBadRequest, httperr.CodeValidation, "Quantity must be positive"},
	{cart.ErrItemNotFound, http.StatusNotFound, httperr.CodeItemNotFound, "Item not found in cart"},
	{commands.ErrOrderNotFound, http.StatusNotFound, httperr.CodeOrderNotFound, "Order not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, httperr.CodeOrderNotFound, "Order not found"},
	{commands.ErrUnknownStatus, http.StatusBadRequest, httperr.CodeInvalidStatus, "Unknown order status"},
	{commands.ErrFulfillmentHold, http.StatusConflict, httperr.CodeFulfillmentHold, "Order is on fulfillment hold"},
	{commands.ErrInvalidTransition, http.StatusConflict, httperr.CodeInvalidTransition, "Status transition is not allowed"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, httperr.CodeInvalidCredentials, "Invalid email or password"},
	{commands.ErrAccountLocked, http.StatusLocked, httperr.CodeAccountLocked, "Account is temporarily locked"},
	{commands.ErrUserInactive, http.StatusForbidden, httperr.CodeAccountInactive, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, httperr.CodeAccountInactive, "Account is inactive"},
	{queries.ErrUserNotFound, http.StatusNotFound, httperr.CodeUnauthorized, "User not found"},
	{queries.ErrRatesUnavailable, http.StatusServiceUnavailable, httperr.CodeRatesUnavailable, "Exchange rates are unavailable"},
	{commands.ErrCartStore, http.StatusServiceUnavailable, httperr.CodeServiceUnavailable, "Cart is temporarily unavailable"},
	{errs.ErrDomainValidation, http.StatusBadRequest, httperr.CodeValidation, "Invalid request"},
}

// abortWithUsecaseError translates usecase sentinels. Unknown errors become 500
// without leaking details.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.code, m.msg, detailFor(err, m))
			return
		}
	}
	slog.Error("unhandled usecase error",
		"path", c.Request.URL.Path,
		"error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
}

func detailFor(err error, m errorMapping) any {
	var stockErr *commands.InsufficientStockError
	if errors.As(err, &stockErr) {
		return gin.H{
			"productId": stockErr.ProductID,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		}
	}
	if m.code == httperr.CodeValidation {
		return gin.H{"reason": err.Error()}
	}
	return nil
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", gin.H{"reason": err.Error()})
}
