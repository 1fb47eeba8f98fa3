// Package server builds the echo instance every domain module registers its
// routes on and runs it for the lifetime of the fx application.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/pkg/apperror"
	"github.com/comdbstn/fashionking/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewEcho),
	fx.Invoke(StartServer),
)

// EchoParams are the dependencies for creating an Echo instance
type EchoParams struct {
	fx.In

	Config     *config.Config
	Log        *slog.Logger
	HTTPLogger *logger.HTTPLogger
}

// NewEcho creates the echo instance with error rendering and the shared
// middleware stack. Routes are added by the domain modules.
func NewEcho(p EchoParams) *echo.Echo {
	log := p.Log.With(logger.Scope("http"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = p.Config.Debug
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)

	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool { return c.Request().URL.Path == "/" },
	}))

	e.Use(
		middleware.RequestID(),
		accessLog(log, p.HTTPLogger),
		recoverPanics(log),
		securityHeaders(),
		middleware.GzipWithConfig(middleware.GzipConfig{Skipper: skipMonitoring}),
	)

	return e
}

// StartServer binds the listen address when the application starts, so a
// port conflict aborts startup, and drains connections on stop.
func StartServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.ServerAddress, fmt.Sprint(cfg.ServerPort)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			e.Listener = ln

			log.Info("landing server listening",
				slog.String("address", ln.Addr().String()),
				slog.String("public_url", cfg.PublicURL),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("landing server stopped unexpectedly", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			log.Info("draining landing server", slog.Duration("timeout", cfg.ShutdownTimeout))
			return e.Shutdown(ctx)
		},
	})
}
