package email

import (
	"github.com/comdbstn/fashionking/internal/config"
)

// Target is one inbox that is notified of every pre-registration.
type Target struct {
	// Name labels the target in logs and errors (operator, marketing)
	Name string
	// Recipient is the inbox address
	Recipient string
	// Template is the template identifier rendered for this inbox
	Template string
}

// Config contains email service configuration
type Config struct {
	// Enabled determines if email sending is enabled
	Enabled bool
	// MailgunDomain is the Mailgun domain
	MailgunDomain string
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string
	// MailgunAPIBase overrides the default Mailgun endpoint when set
	MailgunAPIBase string
	// FromEmail is the default from email address
	FromEmail string
	// FromName is the default from name
	FromName string
	// Targets are notified in order for each submission
	Targets []Target
}

// NewConfig creates email configuration from the app config
func NewConfig(cfg *config.Config) *Config {
	e := cfg.Email
	return &Config{
		Enabled:        e.Enabled,
		MailgunDomain:  e.MailgunDomain,
		MailgunAPIKey:  e.MailgunAPIKey,
		MailgunAPIBase: e.MailgunAPIBase,
		FromEmail:      e.FromEmail,
		FromName:       e.FromName,
		Targets: []Target{
			{Name: "operator", Recipient: e.OperatorRecipient, Template: e.OperatorTemplate},
			{Name: "marketing", Recipient: e.MarketingRecipient, Template: e.MarketingTemplate},
		},
	}
}

// IsConfigured returns true if Mailgun is configured
func (c *Config) IsConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

// Live reports whether messages actually leave the process.
func (c *Config) Live() bool {
	return c.Enabled && c.IsConfigured()
}
