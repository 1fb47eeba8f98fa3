// Package prereg implements the pre-registration form: its field state,
// validation, the submit state machine and the collaborator contract used to
// deliver a submission. It is shared by the HTTP server and the browser client.
package prereg

import (
	"context"
	"time"
)

// User-facing status messages.
const (
	ValidationMessage = "모든 필드를 입력하고 개인정보 수집에 동의해주세요."
	SuccessMessage    = "사전예약이 성공적으로 완료되었습니다!"
	FailureMessage    = "오류가 발생했습니다. 다시 시도해주세요."
)

// Submit button labels.
const (
	SubmitLabel     = "사전예약 신청하기"
	SubmittingLabel = "제출 중..."
)

// ButtonLabel is the submit button text for s.
func ButtonLabel(s SubmitStatus) string {
	if s.IsSubmitting {
		return SubmittingLabel
	}
	return SubmitLabel
}

// FormData holds the values a visitor has entered.
type FormData struct {
	Name              string `json:"name" form:"name"`
	Phone             string `json:"phone" form:"phone"`
	Email             string `json:"email" form:"email"`
	AgreementAccepted bool   `json:"agreementAccepted" form:"agreement"`
}

// IsEmpty reports whether the form is in its initial state.
func (d FormData) IsEmpty() bool {
	return d == FormData{}
}

// SubmitStatus is what the form shows the visitor about the last attempt.
type SubmitStatus struct {
	IsSubmitting bool   `json:"isSubmitting"`
	IsSuccess    bool   `json:"isSuccess"`
	Message      string `json:"message"`
}

// Phase is the form's position in the submit state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Field names a single FormData text field.
type Field string

const (
	FieldName  Field = "name"
	FieldPhone Field = "phone"
	FieldEmail Field = "email"
)

// Submission is the payload handed to a Submitter.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func newSubmission(id string, d FormData, at time.Time) Submission {
	return Submission{
		ID:          id,
		Name:        d.Name,
		Phone:       d.Phone,
		Email:       d.Email,
		SubmittedAt: at,
	}
}

// Submitter delivers a validated submission to an external collaborator.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s Submission) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}
