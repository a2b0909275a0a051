package summary

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tutorbay/tutorbay/internal/llm"
	"github.com/tutorbay/tutorbay/internal/session"
)

type fakeSessionRepo struct {
	sessions map[string]*session.Session
}

func (r *fakeSessionRepo) Create(_ context.Context, s *session.Session) error {
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*session.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *fakeSessionRepo) List(_ context.Context, _ int) ([]*session.Session, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *session.Session) error {
	r.sessions[s.ID] = s.Clone()
	return nil
}

type fakeDirectory struct{}

func (fakeDirectory) SubjectName(_ context.Context, _ string) (string, error) {
	return "Algebra I", nil
}

func (fakeDirectory) StudentName(_ context.Context, _ string) (string, error) {
	return "Jordan", nil
}

func validSummaryJSON() json.RawMessage {
	return json.RawMessage(`{
		"what_was_learned": "Solving linear equations in one variable.",
		"mistakes": "Dropped the sign when moving terms across the equals sign.",
		"strengths": "Checks solutions by substitution without prompting.",
		"practice_tasks": "Ten equations mixing positive and negative coefficients."
	}`)
}

func newFixture(t *testing.T, sess *session.Session, responses ...llm.MockResponse) (*Service, *fakeSessionRepo, *llm.MockProvider) {
	t.Helper()
	repo := &fakeSessionRepo{sessions: map[string]*session.Session{}}
	if sess != nil {
		repo.sessions[sess.ID] = sess
	}
	provider := llm.NewMockProvider(responses...)
	svc := NewService(provider, session.NewService(repo, nil), fakeDirectory{}, DefaultConfig())
	return svc, repo, provider
}

func completedSession() *session.Session {
	return &session.Session{
		ID:         "session-1",
		TutorID:    "tutor-1",
		StudentID:  "student-1",
		SubjectID:  "algebra",
		Status:     session.StatusCompleted,
		TutorNotes: "Worked through two-step equations, struggled with negative coefficients.",
		Duration:   time.Hour,
		Version:    1,
	}
}

func TestGenerateAttachesSummary(t *testing.T) {
	svc, repo, provider := newFixture(t, completedSession(), llm.MockResponse{Content: validSummaryJSON()})

	sum, err := svc.Generate(context.Background(), "session-1")
	if err != nil {
		t.Fatal(err)
	}
	if sum.WhatWasLearned == "" || sum.Mistakes == "" || sum.Strengths == "" || sum.PracticeTasks == "" {
		t.Fatalf("summary has empty fields: %+v", sum)
	}

	stored := repo.sessions["session-1"]
	if stored.AISummary == nil {
		t.Fatal("summary not persisted on the session")
	}
	if *stored.AISummary != *sum {
		t.Errorf("persisted summary %+v differs from returned %+v", stored.AISummary, sum)
	}

	// The prompt carries the tutor notes.
	if got := provider.Calls[0].User; !strings.Contains(got, "negative coefficients") {
		t.Errorf("prompt does not carry tutor notes:\n%s", got)
	}
}

func TestGenerateRequiresCompleted(t *testing.T) {
	sess := completedSession()
	sess.Status = session.StatusInProgress
	svc, _, provider := newFixture(t, sess)

	_, err := svc.Generate(context.Background(), "session-1")
	if !errors.Is(err, session.ErrNotCompleted) {
		t.Fatalf("err = %v, want ErrNotCompleted", err)
	}
	if provider.CallCount() != 0 {
		t.Error("generator called despite failed precondition")
	}
}

func TestGenerateRequiresTutorNotes(t *testing.T) {
	sess := completedSession()
	sess.TutorNotes = "   "
	svc, _, provider := newFixture(t, sess)

	_, err := svc.Generate(context.Background(), "session-1")
	if !errors.Is(err, session.ErrMissingNotes) {
		t.Fatalf("err = %v, want ErrMissingNotes", err)
	}
	if provider.CallCount() != 0 {
		t.Error("generator called despite failed precondition")
	}
}

func TestGenerateOnlyOnce(t *testing.T) {
	sess := completedSession()
	sess.AISummary = &session.Summary{
		WhatWasLearned: "a", Mistakes: "b", Strengths: "c", PracticeTasks: "d",
	}
	svc, _, provider := newFixture(t, sess)

	_, err := svc.Generate(context.Background(), "session-1")
	if !errors.Is(err, session.ErrSummaryExists) {
		t.Fatalf("err = %v, want ErrSummaryExists", err)
	}
	if provider.CallCount() != 0 {
		t.Error("generator called despite existing summary")
	}
}

func TestGenerateRejectsPartialPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			"missing field",
			`{"what_was_learned": "x", "mistakes": "y", "strengths": "z"}`,
		},
		{
			"whitespace-only field",
			`{"what_was_learned": "x", "mistakes": "  ", "strengths": "z", "practice_tasks": "w"}`,
		},
		{
			"not json",
			`the student did great`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newFixture(t, completedSession(),
				llm.MockResponse{Content: json.RawMessage(tt.payload)})

			_, err := svc.Generate(context.Background(), "session-1")
			var genErr *GenerationFailed
			if !errors.As(err, &genErr) {
				t.Fatalf("expected GenerationFailed, got %v", err)
			}
			if repo.sessions["session-1"].AISummary != nil {
				t.Error("partial summary persisted")
			}
		})
	}
}

func TestGenerateTruncatedResponse(t *testing.T) {
	svc, repo, _ := newFixture(t, completedSession(),
		llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{Content: json.RawMessage(`{"what_was_lear`)}},
	)

	_, err := svc.Generate(context.Background(), "session-1")
	var genErr *GenerationFailed
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationFailed, got %v", err)
	}
	var truncated *llm.ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("truncation not surfaced as ErrMaxTokensExceeded: %v", err)
	}
	if repo.sessions["session-1"].AISummary != nil {
		t.Fatal("truncated summary persisted")
	}
}

func TestGenerateProviderFailureIsRetryable(t *testing.T) {
	svc, repo, provider := newFixture(t, completedSession(),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	_, err := svc.Generate(context.Background(), "session-1")
	var genErr *GenerationFailed
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationFailed, got %v", err)
	}
	if provider.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no internal retry)", provider.CallCount())
	}
	if repo.sessions["session-1"].AISummary != nil {
		t.Fatal("failed generation must leave the session unchanged")
	}

	// The session is untouched, so the caller may simply try again.
	provider.AddResponse(llm.MockResponse{Content: validSummaryJSON()})
	if _, err := svc.Generate(context.Background(), "session-1"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if repo.sessions["session-1"].AISummary == nil {
		t.Fatal("summary not persisted on retry")
	}
}

func TestGenerateUnknownSession(t *testing.T) {
	svc, _, _ := newFixture(t, nil)

	_, err := svc.Generate(context.Background(), "missing")
	if !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
