package sheets

import (
	"fmt"
	"strings"

	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/pkg/prereg"
)

// Config holds the spreadsheet and the service account allowed to edit it.
type Config struct {
	SheetID             string
	ServiceAccountEmail string
	PrivateKey          string
}

// NewConfig creates sheets configuration from the app config.
// Literal "\n" sequences in the private key become newlines.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		SheetID:             cfg.Sheets.SheetID,
		ServiceAccountEmail: cfg.Sheets.ServiceAccountEmail,
		PrivateKey:          strings.ReplaceAll(cfg.Sheets.PrivateKey, `\n`, "\n"),
	}
}

// Validate reports the first missing credential.
func (c *Config) Validate() error {
	switch {
	case c.SheetID == "":
		return fmt.Errorf("%w: GOOGLE_SHEET_ID is required", prereg.ErrConfiguration)
	case c.ServiceAccountEmail == "":
		return fmt.Errorf("%w: GOOGLE_SERVICE_ACCOUNT_EMAIL is required", prereg.ErrConfiguration)
	case c.PrivateKey == "":
		return fmt.Errorf("%w: GOOGLE_PRIVATE_KEY is required", prereg.ErrConfiguration)
	}
	return nil
}
