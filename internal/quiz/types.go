package quiz

import (
	"context"
	"time"
)

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
)

// Question is one validated quiz question.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string

	// Type selects the answer format and the grading comparison.
	Type QuestionType

	// Options is populated only for multiple_choice and always contains
	// CorrectAnswer verbatim.
	Options []string

	// CorrectAnswer is the canonical correct answer. For true_false it is
	// the literal "true" or "false".
	CorrectAnswer string

	// Explanation is shown to the student after grading.
	Explanation string

	// Topic labels the summary area the question tests.
	Topic string
}

// Quiz is the AI-authored question set for one session. At most one live
// quiz exists per session; it becomes immutable once any attempt exists.
type Quiz struct {
	ID         string
	SessionID  string
	Questions  []Question
	FocusAreas []string
	Difficulty string
	CreatedAt  time.Time
}

// AnswerResult is the per-question grading outcome.
type AnswerResult struct {
	Question      string
	StudentAnswer string
	CorrectAnswer string
	IsCorrect     bool
	Explanation   string
	Topic         string
}

// Attempt is one immutable, fully graded submission. A retake appends a new
// attempt; the most recent one per (quiz, student) is the retrievable one.
type Attempt struct {
	ID              string
	QuizID          string
	SessionID       string
	StudentID       string
	Answers         []string
	Score           int
	CorrectCount    int
	TotalQuestions  int
	DetailedResults []AnswerResult
	CompletedAt     time.Time
}

// Repo is the persistence contract for quizzes. Replace swaps the session's
// quiz atomically (insert on first generation, delete-then-insert on
// regeneration).
type Repo interface {
	GetBySession(ctx context.Context, sessionID string) (*Quiz, error)
	Replace(ctx context.Context, q *Quiz) error
}

// AttemptRepo is the persistence contract for attempts. Create commits the
// whole attempt atomically. LatestForQuiz returns (nil, nil) when the
// student has no attempt yet.
type AttemptRepo interface {
	Create(ctx context.Context, a *Attempt) error
	LatestForQuiz(ctx context.Context, quizID, studentID string) (*Attempt, error)
	CountForQuiz(ctx context.Context, quizID string) (int, error)
}
