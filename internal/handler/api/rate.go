package api

import (
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	q queries.RateQueries
}

func NewRateHandler(q queries.RateQueries) *RateHandler {
	return &RateHandler{q: q}
}

// @Summary Current exchange rates
// @Description RON per unit of EUR and GBP plus the conversion fee. Advisory, for price display only
// @Tags rates
// @Produce json
// @Success 200 {object} resdto.RatesResponse
// @Failure 503 {object} httperr.Response
// @Router /api/exchange-rates [get]
func (h *RateHandler) Current(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, resdto.FromRatesView(view))
}
