// Package summary turns a completed session's tutor notes into the
// structured AI-authored lesson summary that unlocks quiz generation.
package summary

import (
	"context"
	"fmt"
	"time"
)

// Directory resolves display names for prompt context. Profile data is
// owned elsewhere; this is the only slice of it the generator needs.
type Directory interface {
	SubjectName(ctx context.Context, subjectID string) (string, error)
	StudentName(ctx context.Context, studentID string) (string, error)
}

// Config holds summary generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout is the caller-enforced deadline for the generation call.
	// Expiry fails closed: the session is left exactly as before.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for summary generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.4,
		Timeout:     45 * time.Second,
	}
}

// GenerationFailed reports that the external generator was unreachable or
// returned a non-conforming summary. Nothing was persisted.
type GenerationFailed struct {
	SessionID string
	Err       error
}

func (e *GenerationFailed) Error() string {
	return fmt.Sprintf("summary generation for session %s failed: %v", e.SessionID, e.Err)
}

func (e *GenerationFailed) Unwrap() error { return e.Err }
