package quiz

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tutorbay/tutorbay/internal/llm"
	"github.com/tutorbay/tutorbay/internal/session"
)

// fakeSessionRepo is the minimal session.Repo needed to host a primed
// session behind a real session.Service.
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

type fakeQuizRepo struct {
	bySession map[string]*Quiz
	replaces  int
}

func (r *fakeQuizRepo) GetBySession(_ context.Context, sessionID string) (*Quiz, error) {
	q, ok := r.bySession[sessionID]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

func (r *fakeQuizRepo) Replace(_ context.Context, q *Quiz) error {
	r.bySession[q.SessionID] = q
	r.replaces++
	return nil
}

type fakeAttemptRepo struct {
	attempts []*Attempt
}

func (r *fakeAttemptRepo) Create(_ context.Context, a *Attempt) error {
	r.attempts = append(r.attempts, a)
	return nil
}

func (r *fakeAttemptRepo) LatestForQuiz(_ context.Context, quizID, studentID string) (*Attempt, error) {
	var latest *Attempt
	for _, a := range r.attempts {
		if a.QuizID != quizID || a.StudentID != studentID {
			continue
		}
		if latest == nil || a.CompletedAt.After(latest.CompletedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (r *fakeAttemptRepo) CountForQuiz(_ context.Context, quizID string) (int, error) {
	n := 0
	for _, a := range r.attempts {
		if a.QuizID == quizID {
			n++
		}
	}
	return n, nil
}

type fakeDirectory struct{}

func (fakeDirectory) SubjectName(_ context.Context, subjectID string) (string, error) {
	return "Algebra I", nil
}

func validQuizJSON(t *testing.T) json.RawMessage {
	t.Helper()
	out := quizOutput{
		FocusAreas: []string{"linear equations"},
		Difficulty: "medium",
	}
	out.Questions = append(out.Questions, struct {
		Text          string   `json:"text"`
		Type          string   `json:"type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
		Topic         string   `json:"topic"`
	}{
		Text:          "What is the slope of y = 3x?",
		Type:          "multiple_choice",
		Options:       []string{"0", "3", "x"},
		CorrectAnswer: "3",
		Explanation:   "The coefficient of x is the slope.",
		Topic:         "linear equations",
	}, struct {
		Text          string   `json:"text"`
		Type          string   `json:"type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
		Topic         string   `json:"topic"`
	}{
		Text:          "Every line crosses the y-axis.",
		Type:          "true_false",
		CorrectAnswer: "false",
		Explanation:   "Vertical lines other than x = 0 do not.",
		Topic:         "graphing",
	})
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	return raw
}

type quizFixture struct {
	svc       *Service
	provider  *llm.MockProvider
	quizzes   *fakeQuizRepo
	attempts  *fakeAttemptRepo
	sessionID string
}

func newQuizFixture(t *testing.T, withSummary bool) *quizFixture {
	t.Helper()

	sess := &session.Session{
		ID:        "session-1",
		TutorID:   "tutor-1",
		StudentID: "student-1",
		SubjectID: "algebra",
		Status:    session.StatusCompleted,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}
	if withSummary {
		sess.AISummary = &session.Summary{
			WhatWasLearned: "slope and intercept of linear equations",
			Mistakes:       "confused slope with intercept",
			Strengths:      "solid arithmetic",
			PracticeTasks:  "graph five lines from equations",
		}
	}

	sessRepo := &fakeSessionRepo{sessions: map[string]*session.Session{sess.ID: sess}}
	provider := llm.NewMockProvider()
	quizzes := &fakeQuizRepo{bySession: make(map[string]*Quiz)}
	attempts := &fakeAttemptRepo{}

	svc := NewService(
		provider,
		session.NewService(sessRepo, nil),
		quizzes,
		attempts,
		fakeDirectory{},
		nil,
		DefaultConfig(),
	)
	return &quizFixture{
		svc:       svc,
		provider:  provider,
		quizzes:   quizzes,
		attempts:  attempts,
		sessionID: sess.ID,
	}
}

func TestGenerateProducesValidatedQuiz(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	q, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.Len(t, q.Questions, 2)
	require.Equal(t, f.sessionID, q.SessionID)
	require.Equal(t, "medium", q.Difficulty)
	require.Equal(t, 1, f.provider.CallCount())

	// The generation prompt is grounded on the lesson summary.
	require.Contains(t, f.provider.Calls[0].User, "slope and intercept")
}

func TestGenerateRequiresSummary(t *testing.T) {
	f := newQuizFixture(t, false)

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	require.ErrorIs(t, err, ErrSummaryMissing)
	require.Zero(t, f.provider.CallCount(), "generator must not be called without a summary")
}

func TestGenerateRejectsInvalidPayload(t *testing.T) {
	f := newQuizFixture(t, true)
	// correct_answer is not among the options.
	f.provider.AddResponse(llm.MockResponse{Content: json.RawMessage(`{
		"questions": [{
			"text": "Pick one",
			"type": "multiple_choice",
			"options": ["a", "b"],
			"correct_answer": "c",
			"explanation": "nope",
			"topic": "t"
		}],
		"focus_areas": [],
		"difficulty": "easy"
	}`)})

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	var genErr *GenerationFailed
	require.ErrorAs(t, err, &genErr)
	require.Empty(t, f.quizzes.bySession, "no partial quiz may be persisted")
}

func TestGenerateProviderFailure(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Err: &llm.ErrRateLimit{}})

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	var genErr *GenerationFailed
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, 1, f.provider.CallCount(), "a failed generation is not retried internally")
	require.Empty(t, f.quizzes.bySession)
}

func TestRegenerateBeforeAttemptOverwrites(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	first, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)

	second, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 2, f.quizzes.replaces)

	stored, _, err := f.svc.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.Equal(t, second.ID, stored.ID)
}

func TestRegenerateAfterAttemptIsRejected(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	q, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), f.sessionID, "student-1", map[int]string{0: "3", 1: "false"})
	require.NoError(t, err)

	_, err = f.svc.Generate(context.Background(), f.sessionID)
	require.ErrorIs(t, err, ErrImmutableQuiz)
	require.Equal(t, q.ID, f.quizzes.bySession[f.sessionID].ID, "quiz must be unchanged")
	require.Len(t, f.attempts.attempts, 1, "attempts must be unchanged")
}

func TestSubmitGradesAndPersists(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)

	attempt, err := f.svc.Submit(context.Background(), f.sessionID, "student-1", map[int]string{0: "3", 1: "true"})
	require.NoError(t, err)
	require.Equal(t, 50, attempt.Score)
	require.Equal(t, 1, attempt.CorrectCount)
	require.Len(t, f.attempts.attempts, 1)
}

func TestSubmitIncompleteIsNotPersisted(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), f.sessionID, "student-1", map[int]string{0: "3"})
	require.ErrorIs(t, err, ErrIncompleteSubmission)
	require.Empty(t, f.attempts.attempts)
}

func TestSubmitWithoutQuiz(t *testing.T) {
	f := newQuizFixture(t, true)

	_, err := f.svc.Submit(context.Background(), f.sessionID, "student-1", map[int]string{0: "x"})
	require.ErrorIs(t, err, ErrQuizNotFound)
}

func TestRetakeBecomesRetrievableAttempt(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)

	first, err := f.svc.Submit(context.Background(), f.sessionID, "student-1", map[int]string{0: "0", 1: "true"})
	require.NoError(t, err)
	require.Equal(t, 0, first.Score)

	// CompletedAt ordering needs distinct timestamps.
	time.Sleep(2 * time.Millisecond)

	second, err := f.svc.Submit(context.Background(), f.sessionID, "student-1", map[int]string{0: "3", 1: "false"})
	require.NoError(t, err)
	require.Equal(t, 100, second.Score)

	_, latest, err := f.svc.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, second.ID, latest.ID)
	require.Len(t, f.attempts.attempts, 2, "retakes append, history is kept")
}

func TestGetWithoutAttempt(t *testing.T) {
	f := newQuizFixture(t, true)
	f.provider.AddResponse(llm.MockResponse{Content: validQuizJSON(t)})

	_, err := f.svc.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)

	q, attempt, err := f.svc.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.NotNil(t, q)
	require.Nil(t, attempt)
}

func TestGenerateRequiresCompletedSession(t *testing.T) {
	f := newQuizFixture(t, true)

	// Force the stored session out of completed.
	sessRepo := &fakeSessionRepo{sessions: map[string]*session.Session{
		"session-2": {ID: "session-2", StudentID: "student-1", SubjectID: "algebra", Status: session.StatusScheduled, Version: 1},
	}}
	svc := NewService(f.provider, session.NewService(sessRepo, nil), f.quizzes, f.attempts, fakeDirectory{}, nil, DefaultConfig())

	_, err := svc.Generate(context.Background(), "session-2")
	require.ErrorIs(t, err, ErrSummaryMissing)
	var stateErr *session.StateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, session.StatusScheduled, stateErr.Status)
}
