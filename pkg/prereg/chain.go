package prereg

import (
	"context"
	"errors"
)

// Named labels a submitter so failures say which call broke.
func Named(target string, s Submitter) Submitter {
	return named{target: target, next: s}
}

type named struct {
	target string
	next   Submitter
}

func (n named) Submit(ctx context.Context, s Submission) error {
	err := n.next.Submit(ctx, s)
	if err == nil {
		return nil
	}
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return err
	}
	return &SubmissionError{Target: n.target, Err: err}
}

// Chain runs submitters one after another, waiting for each to finish
// before starting the next. The first failure stops the chain and fails the
// whole submission, even if earlier calls succeeded.
func Chain(submitters ...Submitter) Submitter {
	return chain(submitters)
}

type chain []Submitter

func (c chain) Submit(ctx context.Context, s Submission) error {
	for _, next := range c {
		if err := ctx.Err(); err != nil {
			return &SubmissionError{Err: err}
		}
		if err := next.Submit(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Discard accepts every submission without delivering it anywhere.
var Discard Submitter = SubmitterFunc(func(context.Context, Submission) error { return nil })
