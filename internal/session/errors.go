package session

import (
	"errors"
	"fmt"
)

// Sentinel reasons carried inside a StateError. Callers match them with
// errors.Is.
var (
	ErrInvalidTransition   = errors.New("invalid lifecycle transition")
	ErrNotScheduled        = errors.New("session is not scheduled")
	ErrAlreadyRequested    = errors.New("cancellation already requested by this party")
	ErrNoPendingRequest    = errors.New("no pending cancellation request")
	ErrSelfRequestConflict = errors.New("cannot respond to own cancellation request")
	ErrNotCompleted        = errors.New("session is not completed")
	ErrMissingNotes        = errors.New("session has no tutor notes")
	ErrNotesExist          = errors.New("tutor notes already attached")
	ErrSummaryExists       = errors.New("summary already attached")
)

// StateError reports an illegal lifecycle or negotiation operation. The
// operation left status and cancellation state untouched.
type StateError struct {
	Op        string
	SessionID string
	Status    Status
	Reason    error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s on session %s (status %s): %v", e.Op, e.SessionID, e.Status, e.Reason)
}

func (e *StateError) Unwrap() error { return e.Reason }

// RaceError reports an optimistic-lock write that was lost twice in a row:
// once on the initial attempt and again after the single automatic re-read.
type RaceError struct {
	Op        string
	SessionID string
	Err       error
}

func (e *RaceError) Error() string {
	return fmt.Sprintf("%s on session %s: lost optimistic-lock race twice: %v", e.Op, e.SessionID, e.Err)
}

func (e *RaceError) Unwrap() error { return e.Err }
