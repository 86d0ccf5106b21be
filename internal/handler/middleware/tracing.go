package middleware

import (
	"net/http"

	"storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewTracingMiddleware uses the global tracer provider; without an exporter spans are dropped.
func NewTracingMiddleware(cfg config.TracingConfig) gin.HandlerFunc {
	return otelgin.Middleware(cfg.ServiceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
	)
}
