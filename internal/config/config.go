package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Submission modes for PREREG_MODE.
const (
	ModeEmail         = "email"
	ModeSheets        = "sheets"
	ModeEmailAndSheet = "email+sheets"
	ModeNoop          = "noop"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// PublicURL is the externally visible origin, used for canonical links
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:4002"`

	// WasmDir holds landing.wasm and wasm_exec.js produced by `make wasm`
	WasmDir string `env:"WASM_DIR" envDefault:"dist/wasm"`

	Preregistration PreregistrationConfig

	Email EmailConfig

	Sheets SheetsConfig

	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// PreregistrationConfig selects how submissions are delivered
type PreregistrationConfig struct {
	// Mode is one of email, sheets, email+sheets, noop
	Mode string `env:"PREREG_MODE" envDefault:"email"`
	// RateLimit is the sustained submissions per second allowed per client IP
	RateLimit float64 `env:"PREREG_RATE_LIMIT" envDefault:"0.2"`
	// RateBurst is the burst allowed per client IP
	RateBurst int `env:"PREREG_RATE_BURST" envDefault:"3"`
}

// UsesEmail reports whether the mode sends notification emails
func (p PreregistrationConfig) UsesEmail() bool {
	return p.Mode == ModeEmail || p.Mode == ModeEmailAndSheet
}

// UsesSheets reports whether the mode appends spreadsheet rows
func (p PreregistrationConfig) UsesSheets() bool {
	return p.Mode == ModeSheets || p.Mode == ModeEmailAndSheet
}

// EmailConfig holds email service configuration
type EmailConfig struct {
	// Enabled determines if email sending is enabled
	Enabled bool `env:"EMAIL_ENABLED" envDefault:"false"`
	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the Mailgun endpoint (EU region, tests)
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@fashionking.app"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"FASHIONKING"`

	// Each submission notifies both targets, operator first
	OperatorRecipient  string `env:"PREREG_OPERATOR_EMAIL" envDefault:""`
	OperatorTemplate   string `env:"PREREG_OPERATOR_TEMPLATE" envDefault:"prereg_operator"`
	MarketingRecipient string `env:"PREREG_MARKETING_EMAIL" envDefault:""`
	MarketingTemplate  string `env:"PREREG_MARKETING_TEMPLATE" envDefault:"prereg_marketing"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// SheetsConfig holds the Google service account used for the spreadsheet path
type SheetsConfig struct {
	SheetID             string `env:"GOOGLE_SHEET_ID" envDefault:""`
	ServiceAccountEmail string `env:"GOOGLE_SERVICE_ACCOUNT_EMAIL" envDefault:""`
	// PrivateKey is the PEM key; literal \n sequences are accepted
	PrivateKey string `env:"GOOGLE_PRIVATE_KEY" envDefault:""`
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks the server-level settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Preregistration.Mode {
	case ModeEmail, ModeSheets, ModeEmailAndSheet, ModeNoop:
	default:
		return fmt.Errorf("PREREG_MODE must be one of %s, got %q",
			strings.Join([]string{ModeEmail, ModeSheets, ModeEmailAndSheet, ModeNoop}, ", "),
			c.Preregistration.Mode)
	}
	if c.Preregistration.RateLimit <= 0 {
		return fmt.Errorf("PREREG_RATE_LIMIT must be positive")
	}
	if c.Preregistration.RateBurst <= 0 {
		return fmt.Errorf("PREREG_RATE_BURST must be positive")
	}
	return nil
}

// Load parses configuration from the environment without logging.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("prereg_mode", cfg.Preregistration.Mode),
		slog.Bool("email_enabled", cfg.Email.Enabled),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
