package tracing

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/comdbstn/fashionking/internal/config"
)

// untracedPrefixes are health checks, metrics and static downloads.
var untracedPrefixes = []string{"/health", "/ready", "/metrics", "/static/", "/wasm/"}

func skipTracing(path string) bool {
	for _, p := range untracedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RegisterEchoMiddleware adds the otelecho middleware to the Echo instance.
func RegisterEchoMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Otel.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(
		cfg.Otel.ServiceName,
		otelecho.WithSkipper(func(c echo.Context) bool {
			return skipTracing(c.Request().URL.Path)
		}),
	))
}
