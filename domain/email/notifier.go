package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/comdbstn/fashionking/pkg/logger"
	"github.com/comdbstn/fashionking/pkg/prereg"
)

// Notifier emails a pre-registration to a target inbox.
type Notifier struct {
	sender    Sender
	templates *TemplateService
	log       *slog.Logger
}

// NewNotifier creates a Notifier.
func NewNotifier(sender Sender, templates *TemplateService, log *slog.Logger) *Notifier {
	return &Notifier{
		sender:    sender,
		templates: templates,
		log:       log.With(logger.Scope("email.notifier")),
	}
}

// Payload is the template data for a submission.
func Payload(s prereg.Submission) TemplateContext {
	return TemplateContext{
		"senderName":      s.Name,
		"phone":           s.Phone,
		"email":           s.Email,
		"submitTimestamp": prereg.FormatTimestamp(s.SubmittedAt),
		"submissionId":    s.ID,
	}
}

// Notify renders target's template for s and sends it.
func (n *Notifier) Notify(ctx context.Context, target Target, s prereg.Submission) error {
	rendered, err := n.templates.Render(target.Template, Payload(s))
	if err != nil {
		return err
	}

	result, err := n.sender.Send(ctx, SendOptions{
		To:      target.Recipient,
		Subject: rendered.Subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return errors.New(result.Error)
	}

	n.log.Debug("pre-registration notification sent",
		slog.String("target", target.Name),
		slog.String("submission_id", s.ID),
		slog.String("message_id", result.MessageID))
	return nil
}

// Submitter adapts one target to the prereg collaborator contract.
func (n *Notifier) Submitter(target Target) prereg.Submitter {
	return prereg.Named("email:"+target.Name, prereg.SubmitterFunc(
		func(ctx context.Context, s prereg.Submission) error {
			return n.Notify(ctx, target, s)
		}))
}

// NewSubmitter returns a submitter that notifies every configured target in
// order. A submission succeeds only when all targets were notified.
func NewSubmitter(cfg *Config, n *Notifier) (prereg.Submitter, error) {
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("%w: no email targets", prereg.ErrConfiguration)
	}

	submitters := make([]prereg.Submitter, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		if !n.templates.HasTemplate(target.Template) {
			return nil, fmt.Errorf("%w: email target %s uses unknown template %q",
				prereg.ErrConfiguration, target.Name, target.Template)
		}
		if cfg.Live() && target.Recipient == "" {
			return nil, fmt.Errorf("%w: email target %s has no recipient",
				prereg.ErrConfiguration, target.Name)
		}
		submitters = append(submitters, n.Submitter(target))
	}
	return prereg.Chain(submitters...), nil
}
