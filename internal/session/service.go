package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tutorbay/tutorbay/internal/notify"
)

// Service owns all session mutations. Every write goes through a
// compare-and-set against the persisted record: read, validate, write only
// if unchanged since read. A lost write is re-read and re-validated once
// automatically, which resolves concurrent cancellation requests
// deterministically regardless of arrival order.
type Service struct {
	repo     Repo
	notifier notify.Notifier
}

// NewService creates a session service.
func NewService(repo Repo, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{repo: repo, notifier: notifier}
}

// CreateParams holds the booking-flow inputs for a new session.
type CreateParams struct {
	TutorID     string
	StudentID   string
	SubjectID   string
	ScheduledAt time.Time
	Duration    time.Duration
	PriceCents  int
	Notes       string
}

// Create books a new pending session.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:          uuid.NewString(),
		TutorID:     p.TutorID,
		StudentID:   p.StudentID,
		SubjectID:   p.SubjectID,
		ScheduledAt: p.ScheduledAt,
		Duration:    p.Duration,
		Status:      StatusPending,
		Cancel:      CancelNone,
		PriceCents:  p.PriceCents,
		Notes:       p.Notes,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Get returns the session by ID.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.repo.Get(ctx, id)
}

// Schedule confirms a pending booking.
func (s *Service) Schedule(ctx context.Context, id string) (*Session, error) {
	return s.mutate(ctx, "schedule", id, func(sess *Session) error {
		return Transition(sess, StatusScheduled)
	})
}

// Start marks a scheduled session as in progress.
func (s *Service) Start(ctx context.Context, id string) (*Session, error) {
	return s.mutate(ctx, "start", id, func(sess *Session) error {
		return Transition(sess, StatusInProgress)
	})
}

// Complete finishes an in-progress session and publishes session.completed.
func (s *Service) Complete(ctx context.Context, id string) (*Session, error) {
	sess, err := s.mutate(ctx, "complete", id, func(sess *Session) error {
		return Transition(sess, StatusCompleted)
	})
	if err != nil {
		return nil, err
	}
	s.publish(notify.EventSessionCompleted, sess)
	return sess, nil
}

// AttachTutorNotes records the tutor's post-session notes. Allowed exactly
// once, on a completed session.
func (s *Service) AttachTutorNotes(ctx context.Context, id, notes string) (*Session, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("attach tutor notes: %w", ErrMissingNotes)
	}
	return s.mutate(ctx, "attach-tutor-notes", id, func(sess *Session) error {
		if sess.Status != StatusCompleted {
			return &StateError{Op: "attach-tutor-notes", SessionID: id, Status: sess.Status, Reason: ErrNotCompleted}
		}
		if sess.TutorNotes != "" {
			return &StateError{Op: "attach-tutor-notes", SessionID: id, Status: sess.Status, Reason: ErrNotesExist}
		}
		sess.TutorNotes = notes
		return nil
	})
}

// AttachSummary attaches the generated lesson summary. Allowed exactly once,
// on a completed session; the summary is immutable afterwards.
func (s *Service) AttachSummary(ctx context.Context, id string, sum Summary) (*Session, error) {
	sess, err := s.mutate(ctx, "attach-summary", id, func(sess *Session) error {
		if sess.Status != StatusCompleted {
			return &StateError{Op: "attach-summary", SessionID: id, Status: sess.Status, Reason: ErrNotCompleted}
		}
		if sess.AISummary != nil {
			return &StateError{Op: "attach-summary", SessionID: id, Status: sess.Status, Reason: ErrSummaryExists}
		}
		attached := sum
		sess.AISummary = &attached
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(notify.EventSummaryReady, sess)
	return sess, nil
}

// RequestCancel records the actor's cancellation request on a scheduled
// session. If the counterparty's request is already pending, both requests
// together are mutual agreement and the session cancels immediately.
func (s *Service) RequestCancel(ctx context.Context, id string, actor Role) (*Session, error) {
	var cancelled bool
	sess, err := s.mutate(ctx, "request-cancel", id, func(sess *Session) error {
		cancelled = false
		if sess.Status != StatusScheduled {
			return &StateError{Op: "request-cancel", SessionID: id, Status: sess.Status, Reason: ErrNotScheduled}
		}
		next, done, rerr := requestCancel(sess.Cancel, actor)
		if rerr != nil {
			return &StateError{Op: "request-cancel", SessionID: id, Status: sess.Status, Reason: rerr}
		}
		sess.Cancel = next
		if done {
			cancelled = true
			return Transition(sess, StatusCancelled)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cancelled {
		s.publish(notify.EventSessionCancelled, sess)
	}
	return sess, nil
}

// RespondToCancel answers the counterparty's pending cancellation request.
// Accept cancels the session; reject clears the request and keeps the
// session scheduled.
func (s *Service) RespondToCancel(ctx context.Context, id string, actor Role, d Decision) (*Session, error) {
	var cancelled bool
	sess, err := s.mutate(ctx, "respond-to-cancel", id, func(sess *Session) error {
		cancelled = false
		if sess.Status != StatusScheduled {
			return &StateError{Op: "respond-to-cancel", SessionID: id, Status: sess.Status, Reason: ErrNotScheduled}
		}
		next, done, rerr := respondToCancel(sess.Cancel, actor, d)
		if rerr != nil {
			return &StateError{Op: "respond-to-cancel", SessionID: id, Status: sess.Status, Reason: rerr}
		}
		sess.Cancel = next
		if done {
			cancelled = true
			return Transition(sess, StatusCancelled)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cancelled {
		s.publish(notify.EventSessionCancelled, sess)
	}
	return sess, nil
}

// mutate runs fn against a clone of the current record and writes it back
// with compare-and-set. On a version conflict it re-reads and re-runs fn
// once; a second conflict surfaces as a RaceError. fn sees a fresh clone on
// every run, so a rejected operation never leaks partial mutations.
func (s *Service) mutate(ctx context.Context, op, id string, fn func(*Session) error) (*Session, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for attempt := 0; ; attempt++ {
		next := cur.Clone()
		if err := fn(next); err != nil {
			return nil, err
		}
		next.UpdatedAt = time.Now().UTC()

		err = s.repo.Update(ctx, next)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if attempt > 0 {
			return nil, &RaceError{Op: op, SessionID: id, Err: err}
		}

		cur, err = s.repo.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: re-read after conflict: %w", op, err)
		}
	}
}

// publish dispatches an event without failing the operation that caused it.
func (s *Service) publish(eventType string, sess *Session) {
	payload := map[string]any{
		"session_id": sess.ID,
		"tutor_id":   sess.TutorID,
		"student_id": sess.StudentID,
		"status":     sess.Status,
	}
	if err := s.notifier.Publish(eventType, payload); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to publish %s: %v\n", eventType, err)
	}
}
