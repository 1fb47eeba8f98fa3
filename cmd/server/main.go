// Package main provides the entry point for the FASHIONKING landing server
//
// @title FASHIONKING Pre-registration API
// @version 1.0.0
// @description Landing page and pre-registration intake for FASHIONKING
// @host localhost:4002
// @BasePath /
// @schemes http https
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/comdbstn/fashionking/domain/email"
	"github.com/comdbstn/fashionking/domain/health"
	"github.com/comdbstn/fashionking/domain/preregistration"
	"github.com/comdbstn/fashionking/domain/sheets"
	"github.com/comdbstn/fashionking/domain/tracing"
	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/internal/server"
	"github.com/comdbstn/fashionking/internal/website"
	"github.com/comdbstn/fashionking/pkg/logger"
)

func main() {
	// .env.local overrides .env; neither overrides the real environment
	// except through Overload.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Collaborators
		email.Module,
		sheets.Module,

		// Domain
		preregistration.Module,
		health.Module,
		website.Module,
	).Run()
}
