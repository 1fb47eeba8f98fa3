package preregistration

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/comdbstn/fashionking/domain/email"
	"github.com/comdbstn/fashionking/domain/sheets"
	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/pkg/logger"
	"github.com/comdbstn/fashionking/pkg/prereg"
)

// SubmitterParams are the collaborators a submitter can be built from.
type SubmitterParams struct {
	fx.In

	Config       *config.Config
	Log          *slog.Logger
	EmailConfig  *email.Config
	Notifier     *email.Notifier
	SheetsConfig *sheets.Config
}

// NewSubmitter builds the collaborator chain selected by PREREG_MODE.
// In email+sheets mode both inboxes are notified before the row is appended.
// Missing spreadsheet credentials fail here so the server refuses to start,
// as does an email mode in production whose emails would only be logged.
func NewSubmitter(p SubmitterParams) (prereg.Submitter, error) {
	log := p.Log.With(logger.Scope("preregistration"))
	mode := p.Config.Preregistration

	var chain []prereg.Submitter

	if mode.UsesEmail() {
		if p.Config.IsProduction() && !p.EmailConfig.Live() {
			return nil, fmt.Errorf("email collaborator: %w: PREREG_MODE=%s needs EMAIL_ENABLED, MAILGUN_DOMAIN and MAILGUN_API_KEY in production",
				prereg.ErrConfiguration, mode.Mode)
		}
		s, err := email.NewSubmitter(p.EmailConfig, p.Notifier)
		if err != nil {
			return nil, fmt.Errorf("email collaborator: %w", err)
		}
		chain = append(chain, s)
	}

	if mode.UsesSheets() {
		a, err := sheets.New(context.Background(), p.SheetsConfig, p.Log)
		if err != nil {
			return nil, fmt.Errorf("sheets collaborator: %w", err)
		}
		chain = append(chain, prereg.Named("sheets", a))
	}

	if len(chain) == 0 {
		log.Warn("pre-registrations are accepted but not delivered", slog.String("mode", mode.Mode))
		return prereg.Discard, nil
	}

	log.Info("pre-registration collaborators ready",
		slog.String("mode", mode.Mode),
		slog.Int("collaborators", len(chain)))
	return prereg.Chain(chain...), nil
}
