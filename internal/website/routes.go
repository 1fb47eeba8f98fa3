package website

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/labstack/echo/v4"

	"github.com/comdbstn/fashionking/domain/preregistration"
	"github.com/comdbstn/fashionking/internal/config"
)

//go:embed static
var staticFS embed.FS

// Assets serves /static/* from the embedded files and /wasm/* from the
// browser client build directory.
type Assets http.Handler

// NewAssets builds the asset router.
func NewAssets(cfg *config.Config) (Assets, error) {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("access static files: %w", err)
	}
	return newAssets(staticSub, http.Dir(cfg.WasmDir)), nil
}

func newAssets(static fs.FS, wasm http.FileSystem) Assets {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.SetHeader("Cache-Control", "public, max-age=3600"))
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Handle("/wasm/*", http.StripPrefix("/wasm/", http.FileServer(wasm)))
	})

	return r
}

// RegisterRoutes mounts the page and assets. The no-script form shares the
// API's rate limiter.
func RegisterRoutes(e *echo.Echo, h *Handler, assets Assets, limit preregistration.RateLimiter) {
	e.GET("/", h.Landing)
	e.POST("/preregister", h.Preregister, echo.MiddlewareFunc(limit))

	files := echo.WrapHandler(assets)
	e.GET("/static/*", files)
	e.HEAD("/static/*", files)
	e.GET("/wasm/*", files)
	e.HEAD("/wasm/*", files)
}
