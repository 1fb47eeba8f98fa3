package prereg

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	mu    sync.Mutex
	calls []Submission
	err   error
}

func (r *recordingSubmitter) Submit(_ context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, s)
	return r.err
}

var fixedNow = time.Date(2026, 10, 16, 11, 16, 0, 0, time.UTC)

func newTestForm(s Submitter) *Form {
	return NewForm(s,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "sub-1" }),
	)
}

func validData() FormData {
	return FormData{Name: "홍길동", Phone: "010-1234-5678", Email: "a@b.com", AgreementAccepted: true}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FormData)
		missing []string
	}{
		{"complete", func(*FormData) {}, nil},
		{"empty name", func(d *FormData) { d.Name = "" }, []string{"name"}},
		{"empty phone", func(d *FormData) { d.Phone = "" }, []string{"phone"}},
		{"whitespace name is input", func(d *FormData) { d.Name = "   " }, nil},
		{"empty email", func(d *FormData) { d.Email = "" }, []string{"email"}},
		{"agreement unchecked", func(d *FormData) { d.AgreementAccepted = false }, []string{"agreement"}},
		{"everything missing", func(d *FormData) { *d = FormData{} }, []string{"name", "phone", "email", "agreement"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.mutate(&d)
			err := Validate(d)
			assert.Equal(t, tt.missing, MissingFields(d))
			if tt.missing == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestForm_SubmitSuccessResetsData(t *testing.T) {
	sub := &recordingSubmitter{}
	f := newTestForm(sub)
	f.SetName("홍길동")
	f.SetPhone("010-1234-5678")
	f.SetEmail("a@b.com")
	f.SetAgreement(true)

	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, sub.calls, 1)
	assert.Equal(t, Submission{
		ID:          "sub-1",
		Name:        "홍길동",
		Phone:       "010-1234-5678",
		Email:       "a@b.com",
		SubmittedAt: fixedNow,
	}, sub.calls[0])
	assert.Equal(t, SubmitStatus{IsSubmitting: false, IsSuccess: true, Message: SuccessMessage}, f.Status())
	assert.Equal(t, FormData{}, f.Data())
	assert.Equal(t, PhaseSuccess, f.Phase())
}

func TestForm_SubmitWithMissingFieldNeverCallsCollaborator(t *testing.T) {
	mutations := map[string]func(*FormData){
		"name":      func(d *FormData) { d.Name = "" },
		"phone":     func(d *FormData) { d.Phone = "" },
		"email":     func(d *FormData) { d.Email = "" },
		"agreement": func(d *FormData) { d.AgreementAccepted = false },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			sub := &recordingSubmitter{}
			f := newTestForm(sub)
			d := validData()
			mutate(&d)
			f.Fill(d)

			err := f.Submit(context.Background())

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, sub.calls)
			assert.Equal(t, d, f.Data(), "form data must be left unchanged")
			assert.Equal(t, SubmitStatus{Message: ValidationMessage}, f.Status())
			assert.Equal(t, PhaseIdle, f.Phase())
		})
	}
}

func TestForm_SubmitFailureKeepsDataForRetry(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("smtp down")}
	f := newTestForm(sub)
	f.Fill(validData())

	err := f.Submit(context.Background())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmitStatus{Message: FailureMessage}, f.Status())
	assert.False(t, f.Status().IsSuccess, "failures are never reported as success")
	assert.Equal(t, validData(), f.Data())
	assert.Equal(t, PhaseFailed, f.Phase())

	sub.err = nil
	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, sub.calls, 2)
	assert.Equal(t, PhaseSuccess, f.Phase())
}

func TestForm_FieldUpdateDoesNotTouchStatus(t *testing.T) {
	f := newTestForm(&recordingSubmitter{})
	_ = f.Submit(context.Background())
	before := f.Status()

	require.NoError(t, f.SetField(FieldEmail, "x@y.kr"))
	f.SetAgreement(true)

	assert.Equal(t, before, f.Status())
	assert.Equal(t, "x@y.kr", f.Data().Email)
	assert.True(t, f.Data().AgreementAccepted)
	assert.Error(t, f.SetField(Field("nickname"), "v"))
}

type blockingSubmitter struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSubmitter) Submit(ctx context.Context, _ Submission) error {
	close(b.entered)
	<-b.release
	return nil
}

func TestForm_RejectsConcurrentSubmit(t *testing.T) {
	sub := &blockingSubmitter{entered: make(chan struct{}), release: make(chan struct{})}
	f := newTestForm(sub)
	f.Fill(validData())

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-sub.entered

	assert.Equal(t, PhaseSubmitting, f.Phase())
	assert.Equal(t, SubmitStatus{IsSubmitting: true}, f.Status())
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInProgress)

	close(sub.release)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseSuccess, f.Phase())
}

func TestForm_ScenarioEmptyName(t *testing.T) {
	sub := &recordingSubmitter{}
	f := newTestForm(sub)
	f.Fill(FormData{Name: "", Phone: "010-1234-5678", Email: "a@b.com", AgreementAccepted: true})

	_ = f.Submit(context.Background())

	assert.Empty(t, sub.calls)
	assert.Equal(t, ValidationMessage, f.Status().Message)
}

func TestForm_SubmitsValuesAsEntered(t *testing.T) {
	sub := &recordingSubmitter{}
	f := newTestForm(sub)
	f.Fill(FormData{Name: " 홍길동 ", Phone: "010-1234-5678\n", Email: "a@b.com", AgreementAccepted: true})

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, sub.calls, 1)
	assert.Equal(t, " 홍길동 ", sub.calls[0].Name)
	assert.Equal(t, "010-1234-5678\n", sub.calls[0].Phone)
}

func TestForm_WhitespaceOnlyNameIsSubmitted(t *testing.T) {
	sub := &recordingSubmitter{}
	f := newTestForm(sub)
	f.Fill(FormData{Name: "   ", Phone: "010-1234-5678", Email: "a@b.com", AgreementAccepted: true})

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, sub.calls, 1)
	assert.Equal(t, "   ", sub.calls[0].Name)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "submitting", PhaseSubmitting.String())
	assert.Equal(t, "success", PhaseSuccess.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, SubmitLabel, ButtonLabel(SubmitStatus{}))
	assert.Equal(t, SubmittingLabel, ButtonLabel(SubmitStatus{IsSubmitting: true}))
	assert.Equal(t, SubmitLabel, ButtonLabel(SubmitStatus{IsSuccess: true, Message: SuccessMessage}))
}
