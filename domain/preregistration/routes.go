package preregistration

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/pkg/apperror"
	"github.com/comdbstn/fashionking/pkg/prereg"
)

// RateLimiter limits pre-registration posts per client IP. The JSON API and
// the no-script form share one limiter so a client cannot double its budget.
type RateLimiter echo.MiddlewareFunc

// NewRateLimiter creates the per-IP limiter from PREREG_RATE_LIMIT and
// PREREG_RATE_BURST.
func NewRateLimiter(cfg *config.Config) RateLimiter {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Preregistration.RateLimit),
		Burst:     cfg.Preregistration.RateBurst,
		ExpiresIn: 10 * time.Minute,
	})

	return RateLimiter(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperror.ErrBadRequest.WithInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return apperror.ErrTooManyRequests
		},
	}))
}

// RegisterRoutes registers pre-registration routes and the metrics endpoint
func RegisterRoutes(e *echo.Echo, h *Handler, limit RateLimiter) {
	e.POST(prereg.APIPath, h.Create, echo.MiddlewareFunc(limit))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
