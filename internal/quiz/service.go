package quiz

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tutorbay/tutorbay/internal/llm"
	"github.com/tutorbay/tutorbay/internal/notify"
	"github.com/tutorbay/tutorbay/internal/session"
)

// SubjectDirectory resolves subject display names for prompt context.
type SubjectDirectory interface {
	SubjectName(ctx context.Context, subjectID string) (string, error)
}

// Service generates, serves, and grades quizzes.
type Service struct {
	provider llm.Provider
	sessions *session.Service
	quizzes  Repo
	attempts AttemptRepo
	dir      SubjectDirectory
	notifier notify.Notifier
	cfg      Config
}

// NewService creates a quiz service.
func NewService(provider llm.Provider, sessions *session.Service, quizzes Repo, attempts AttemptRepo, dir SubjectDirectory, notifier notify.Notifier, cfg Config) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{
		provider: provider,
		sessions: sessions,
		quizzes:  quizzes,
		attempts: attempts,
		dir:      dir,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Generate produces the quiz for a session from its lesson summary.
// Regeneration before any attempt exists overwrites the prior quiz;
// regeneration after an attempt exists fails with ErrImmutableQuiz, leaving
// quiz and attempts unchanged.
func (s *Service) Generate(ctx context.Context, sessionID string) (*Quiz, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	if sess.Status != session.StatusCompleted || sess.AISummary == nil {
		return nil, &session.StateError{Op: "generate-quiz", SessionID: sessionID, Status: sess.Status, Reason: ErrSummaryMissing}
	}

	prior, err := s.quizzes.GetBySession(ctx, sessionID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	if prior != nil {
		n, err := s.attempts.CountForQuiz(ctx, prior.ID)
		if err != nil {
			return nil, fmt.Errorf("generate quiz: %w", err)
		}
		if n > 0 {
			return nil, fmt.Errorf("generate quiz for session %s: %w", sessionID, ErrImmutableQuiz)
		}
	}

	subject, err := s.dir.SubjectName(ctx, sess.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: resolve subject %s: %w", sess.SubjectID, err)
	}

	q, err := generate(ctx, s.provider, s.cfg, sessionID, subject, sess.AISummary)
	if err != nil {
		return nil, err
	}

	if err := s.quizzes.Replace(ctx, q); err != nil {
		return nil, fmt.Errorf("persist quiz: %w", err)
	}

	s.publish(notify.EventQuizReady, map[string]any{
		"session_id": sessionID,
		"quiz_id":    q.ID,
		"questions":  len(q.Questions),
	})
	return q, nil
}

// Get returns the session's quiz and the student's retrievable attempt, or
// nil when no attempt exists yet.
func (s *Service) Get(ctx context.Context, sessionID string) (*Quiz, *Attempt, error) {
	q, err := s.quizzes.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("get quiz: %w", err)
	}

	attempt, err := s.attempts.LatestForQuiz(ctx, q.ID, sess.StudentID)
	if err != nil {
		return nil, nil, fmt.Errorf("get attempt: %w", err)
	}
	return q, attempt, nil
}

// Submit grades the student's answers against the session's quiz and
// persists the attempt whole or not at all. A retake is simply another
// submission; it becomes the retrievable attempt without deleting history.
func (s *Service) Submit(ctx context.Context, sessionID, studentID string, answers map[int]string) (*Attempt, error) {
	q, err := s.quizzes.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	attempt, err := Grade(q, studentID, answers)
	if err != nil {
		return nil, err
	}

	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}

	s.publish(notify.EventAttemptGraded, map[string]any{
		"session_id": sessionID,
		"quiz_id":    q.ID,
		"student_id": studentID,
		"score":      attempt.Score,
	})
	return attempt, nil
}

func (s *Service) publish(eventType string, payload any) {
	if err := s.notifier.Publish(eventType, payload); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to publish %s: %v\n", eventType, err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrQuizNotFound)
}
