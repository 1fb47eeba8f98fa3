package prereg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_RunsSequentially(t *testing.T) {
	var order []string
	step := func(name string) Submitter {
		return SubmitterFunc(func(context.Context, Submission) error {
			order = append(order, name)
			return nil
		})
	}

	err := Chain(step("operator"), step("marketing")).Submit(context.Background(), Submission{ID: "1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"operator", "marketing"}, order)
}

func TestChain_PartialCompletionIsFailure(t *testing.T) {
	first := &recordingSubmitter{}
	second := Named("email:marketing", &recordingSubmitter{err: errors.New("mailbox full")})
	third := &recordingSubmitter{}

	err := Chain(first, second, third).Submit(context.Background(), Submission{ID: "1"})

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "email:marketing", subErr.Target)
	assert.Len(t, first.calls, 1, "first call completed before the failure")
	assert.Empty(t, third.calls, "chain stops at the first failure")
}

func TestChain_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sub := &recordingSubmitter{}

	err := Chain(sub).Submit(ctx, Submission{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sub.calls)
}

func TestNamed_KeepsInnerTarget(t *testing.T) {
	inner := Named("sheets", &recordingSubmitter{err: errors.New("quota")})
	err := Named("outer", inner).Submit(context.Background(), Submission{})

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "sheets", subErr.Target)
	assert.Contains(t, err.Error(), "quota")
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Submit(context.Background(), Submission{}))
}
