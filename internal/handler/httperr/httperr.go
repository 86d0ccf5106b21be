package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Codes returned in error.code
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountLocked      = "ACCOUNT_LOCKED"
	CodeAccountInactive    = "ACCOUNT_INACTIVE"
	CodeOutOfStock         = "OUT_OF_STOCK"
	CodeStockExceeded      = "STOCK_EXCEEDED"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	CodeProductNotFound    = "PRODUCT_NOT_FOUND"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeOrderNotFound      = "ORDER_NOT_FOUND"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeFulfillmentHold    = "FULFILLMENT_HOLD"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodePaymentProvider    = "PAYMENT_PROVIDER_ERROR"
	CodeInvalidWebhook     = "INVALID_WEBHOOK"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeRatesUnavailable   = "RATES_UNAVAILABLE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
