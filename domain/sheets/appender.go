// Package sheets appends pre-registrations to a Google spreadsheet using a
// service account.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/comdbstn/fashionking/pkg/logger"
	"github.com/comdbstn/fashionking/pkg/prereg"
	"github.com/comdbstn/fashionking/pkg/tracing"
)

// Header is written to row 1 of an empty worksheet.
var Header = []string{"이름", "전화번호", "이메일", "신청일시"}

// Appender is the spreadsheet-append collaborator.
type Appender struct {
	store rowStore
	log   *slog.Logger

	mu          sync.Mutex
	headerReady bool
}

// New authenticates the service account and returns an Appender for the
// first worksheet of cfg.SheetID. Missing credentials fail with
// prereg.ErrConfiguration before any network call.
func New(ctx context.Context, cfg *Config, log *slog.Logger) (*Appender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating Sheets service: %w", err)
	}

	return NewWithService(svc, cfg.SheetID, log), nil
}

// NewWithService wraps an existing Sheets client.
func NewWithService(svc *sheets.Service, sheetID string, log *slog.Logger) *Appender {
	return newAppender(newAPIStore(svc, sheetID), log)
}

func newAppender(store rowStore, log *slog.Logger) *Appender {
	return &Appender{
		store: store,
		log:   log.With(logger.Scope("sheets")),
	}
}

// Submit appends one row for s, writing the header first if the sheet is empty.
func (a *Appender) Submit(ctx context.Context, s prereg.Submission) (err error) {
	ctx, span := tracing.Start(ctx, "sheets.append")
	defer func() { tracing.Finish(span, err) }()

	if err := a.ensureHeader(ctx); err != nil {
		return err
	}

	row := []string{s.Name, s.Phone, s.Email, prereg.FormatTimestamp(s.SubmittedAt)}
	if err := a.store.Append(ctx, row); err != nil {
		a.log.Error("failed to add pre-registration",
			slog.String("submission_id", s.ID),
			logger.Error(err))
		return err
	}

	a.log.Debug("pre-registration row appended", slog.String("submission_id", s.ID))
	return nil
}

func (a *Appender) ensureHeader(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.headerReady {
		return nil
	}

	existing, err := a.store.Header(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		if err := a.store.SetHeader(ctx, Header); err != nil {
			return err
		}
		a.log.Info("wrote header row")
	}

	a.headerReady = true
	return nil
}
