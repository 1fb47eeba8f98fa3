package prereg

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Form owns one visitor's FormData and SubmitStatus for the lifetime of a
// page mount (or, on the server, one request).
type Form struct {
	submitter Submitter
	now       func() time.Time
	newID     func() string

	mu     sync.Mutex
	data   FormData
	status SubmitStatus
	phase  Phase
}

// Option configures a Form.
type Option func(*Form)

// WithClock overrides the time source used for SubmittedAt.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

// WithIDGenerator overrides how submission IDs are generated.
func WithIDGenerator(gen func() string) Option {
	return func(f *Form) { f.newID = gen }
}

// NewForm creates an empty form that delivers through submitter.
func NewForm(submitter Submitter, opts ...Option) *Form {
	f := &Form{
		submitter: submitter,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Data returns the current field values.
func (f *Form) Data() FormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Status returns the current submit status.
func (f *Form) Status() SubmitStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Phase returns the state machine phase.
func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// SetField updates one text field.
func (f *Form) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case FieldName:
		f.data.Name = value
	case FieldPhone:
		f.data.Phone = value
	case FieldEmail:
		f.data.Email = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// SetName replaces the name field.
func (f *Form) SetName(v string) { _ = f.SetField(FieldName, v) }

// SetPhone replaces the phone field.
func (f *Form) SetPhone(v string) { _ = f.SetField(FieldPhone, v) }

// SetEmail replaces the email field.
func (f *Form) SetEmail(v string) { _ = f.SetField(FieldEmail, v) }

// SetAgreement records the privacy agreement checkbox.
func (f *Form) SetAgreement(accepted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.AgreementAccepted = accepted
}

// Fill replaces every field at once.
func (f *Form) Fill(d FormData) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = d
}

// Submit validates the form and, if it passes, delivers it through the
// submitter exactly once.
//
// Validation failures leave the phase Idle, keep the entered data and return
// an error wrapping ErrValidation without calling the submitter. Collaborator
// failures move the form to Failed and return a *SubmissionError; the data is
// kept so the visitor can retry. Success clears the data.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	if err := Validate(f.data); err != nil {
		f.phase = PhaseIdle
		f.status = SubmitStatus{Message: ValidationMessage}
		f.mu.Unlock()
		return err
	}

	f.phase = PhaseSubmitting
	f.status = SubmitStatus{IsSubmitting: true}
	sub := newSubmission(f.newID(), f.data, f.now())
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.phase = PhaseFailed
		f.status = SubmitStatus{Message: FailureMessage}
		var subErr *SubmissionError
		if errors.As(err, &subErr) {
			return err
		}
		return &SubmissionError{Err: err}
	}

	f.phase = PhaseSuccess
	f.data = FormData{}
	f.status = SubmitStatus{IsSuccess: true, Message: SuccessMessage}
	return nil
}
