package prereg

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation means a required field is empty or the agreement is unchecked.
	ErrValidation = errors.New("pre-registration: required field missing")
	// ErrSubmitInProgress means Submit was called while a submission was in flight.
	ErrSubmitInProgress = errors.New("pre-registration: submission already in progress")
	// ErrConfiguration means a collaborator is missing required credentials.
	ErrConfiguration = errors.New("pre-registration: collaborator not configured")
)

// SubmissionError reports a failed collaborator call.
type SubmissionError struct {
	// Target names the collaborator call that failed, e.g. "email:operator".
	Target string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("pre-registration submit failed: %v", e.Err)
	}
	return fmt.Sprintf("pre-registration submit to %s failed: %v", e.Target, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
