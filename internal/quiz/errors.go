package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrQuizNotFound is returned when a session has no quiz.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrImmutableQuiz rejects regeneration once any attempt exists, to
	// preserve grading integrity.
	ErrImmutableQuiz = errors.New("quiz is immutable once attempted")

	// ErrSummaryMissing rejects generation before a lesson summary exists.
	ErrSummaryMissing = errors.New("session has no lesson summary")

	// ErrIncompleteSubmission rejects an answer map that does not cover
	// every question exactly once.
	ErrIncompleteSubmission = errors.New("incomplete submission")
)

// ContractError reports a malformed payload at a component boundary: a
// generator response that violates the question rules, or a submission that
// does not match the quiz shape. Nothing was persisted.
type ContractError struct {
	Op     string
	Detail string
	Reason error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Reason)
}

func (e *ContractError) Unwrap() error { return e.Reason }

// GenerationFailed reports that the external generator was unreachable or
// produced an invalid quiz. No partial quiz was persisted.
type GenerationFailed struct {
	SessionID string
	Err       error
}

func (e *GenerationFailed) Error() string {
	return fmt.Sprintf("quiz generation for session %s failed: %v", e.SessionID, e.Err)
}

func (e *GenerationFailed) Unwrap() error { return e.Err }
