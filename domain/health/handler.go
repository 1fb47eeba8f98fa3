package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comdbstn/fashionking/domain/email"
	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/internal/version"
)

// Handler handles health check requests
type Handler struct {
	cfg      *config.Config
	emailCfg *email.Config
	startAt  time.Time
}

// NewHandler creates a new health handler
func NewHandler(cfg *config.Config, emailCfg *email.Config) *Handler {
	return &Handler{
		cfg:      cfg,
		emailCfg: emailCfg,
		startAt:  time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health. The server only starts once
// its collaborators are built, so the checks report how submissions are
// delivered rather than probing the collaborators.
// @Summary      Get service health
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "Service is healthy"
// @Router       /health [get]
func (h *Handler) Health(c echo.Context) error {
	mode := h.cfg.Preregistration

	checks := map[string]Check{
		"preregistration": {Status: "healthy", Message: "mode=" + mode.Mode},
	}
	if mode.UsesEmail() {
		check := Check{Status: "healthy", Message: "mailgun"}
		if !h.emailCfg.Live() {
			check = Check{Status: "degraded", Message: "email is logged, not sent"}
		}
		checks["email"] = check
	}
	if mode.UsesSheets() {
		checks["sheets"] = Check{Status: "healthy", Message: "service account"}
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Version:   version.Current().String(),
		Checks:    checks,
	})
}

// Healthz returns a simple health check (for k8s liveness checks)
// @Summary      Liveness check
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "OK"
// @Router       /healthz [get]
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness checks)
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Service is ready"
// @Router       /ready [get]
func (h *Handler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime information outside production.
// @Summary      Get debug information
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Debug information"
// @Failure      404 {object} apperror.Error "Not found in production"
// @Router       /debug [get]
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"build":       version.Current(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"preregistration": map[string]any{
			"mode":       h.cfg.Preregistration.Mode,
			"rate_limit": h.cfg.Preregistration.RateLimit,
			"rate_burst": h.cfg.Preregistration.RateBurst,
		},
	})
}
