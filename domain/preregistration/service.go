// Package preregistration accepts pre-registrations over HTTP and delivers
// them to the configured collaborators.
package preregistration

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/comdbstn/fashionking/pkg/logger"
	"github.com/comdbstn/fashionking/pkg/prereg"
	"github.com/comdbstn/fashionking/pkg/tracing"
)

// Service runs one pre-registration form per request.
type Service struct {
	submitter prereg.Submitter
	log       *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewService creates a Service that delivers through submitter.
func NewService(submitter prereg.Submitter, log *slog.Logger) *Service {
	return &Service{
		submitter: submitter,
		log:       log.With(logger.Scope("preregistration")),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Register fills a fresh form with data and submits it. The returned
// response carries the submission id and the status the visitor should see,
// also when err is non-nil.
func (s *Service) Register(ctx context.Context, data prereg.FormData) (prereg.Response, error) {
	id := s.newID()
	ctx, span := tracing.Start(ctx, "preregistration.register", attribute.String("submission.id", id))

	form := prereg.NewForm(s.submitter,
		prereg.WithClock(s.now),
		prereg.WithIDGenerator(func() string { return id }),
	)
	form.Fill(data)

	start := time.Now()
	err := form.Submit(ctx)
	elapsed := time.Since(start)

	result := outcome(err)
	registrationsTotal.WithLabelValues(result).Inc()
	span.SetAttributes(attribute.String("preregistration.result", result))

	log := s.log.With(slog.String("submission_id", id), slog.String("result", result))
	switch result {
	case resultSuccess:
		registrationDuration.Observe(elapsed.Seconds())
		log.Info("pre-registration delivered", slog.Duration("duration", elapsed))
		tracing.Finish(span, nil)
	case resultInvalid:
		log.Debug("pre-registration rejected", slog.Any("missing", prereg.MissingFields(data)))
		tracing.Finish(span, nil)
	default:
		if result == resultFailed {
			registrationDuration.Observe(elapsed.Seconds())
		}
		log.Error("pre-registration failed", logger.Error(err))
		tracing.Finish(span, err)
	}

	return prereg.Response{ID: id, Status: form.Status()}, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, prereg.ErrValidation):
		return resultInvalid
	case errors.Is(err, prereg.ErrSubmitInProgress):
		return resultBusy
	default:
		return resultFailed
	}
}
