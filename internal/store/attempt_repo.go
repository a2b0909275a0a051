package store

import (
	"context"
	"fmt"

	"github.com/tutorbay/tutorbay/ent"
	entattempt "github.com/tutorbay/tutorbay/ent/quizattempt"
	entschema "github.com/tutorbay/tutorbay/ent/schema"
	"github.com/tutorbay/tutorbay/internal/quiz"
)

// AttemptRepo implements quiz.AttemptRepo on ent. Attempts are append-only;
// there is no update path.
type AttemptRepo struct {
	client *ent.Client
}

var _ quiz.AttemptRepo = (*AttemptRepo)(nil)

func (r *AttemptRepo) Create(ctx context.Context, a *quiz.Attempt) error {
	results := make([]entschema.AnswerResultRecord, len(a.DetailedResults))
	for i, res := range a.DetailedResults {
		results[i] = entschema.AnswerResultRecord{
			Question:      res.Question,
			StudentAnswer: res.StudentAnswer,
			CorrectAnswer: res.CorrectAnswer,
			IsCorrect:     res.IsCorrect,
			Explanation:   res.Explanation,
			Topic:         res.Topic,
		}
	}

	_, err := r.client.QuizAttempt.Create().
		SetID(a.ID).
		SetQuizID(a.QuizID).
		SetSessionID(a.SessionID).
		SetStudentID(a.StudentID).
		SetAnswers(a.Answers).
		SetScore(a.Score).
		SetCorrectCount(a.CorrectCount).
		SetTotalQuestions(a.TotalQuestions).
		SetDetailedResults(results).
		SetCompletedAt(a.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *AttemptRepo) LatestForQuiz(ctx context.Context, quizID, studentID string) (*quiz.Attempt, error) {
	row, err := r.client.QuizAttempt.Query().
		Where(
			entattempt.QuizID(quizID),
			entattempt.StudentID(studentID),
		).
		Order(ent.Desc(entattempt.FieldCompletedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest attempt for quiz %s: %w", quizID, err)
	}
	return attemptFromRow(row), nil
}

func (r *AttemptRepo) CountForQuiz(ctx context.Context, quizID string) (int, error) {
	n, err := r.client.QuizAttempt.Query().
		Where(entattempt.QuizID(quizID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts for quiz %s: %w", quizID, err)
	}
	return n, nil
}

func attemptFromRow(row *ent.QuizAttempt) *quiz.Attempt {
	results := make([]quiz.AnswerResult, len(row.DetailedResults))
	for i, res := range row.DetailedResults {
		results[i] = quiz.AnswerResult{
			Question:      res.Question,
			StudentAnswer: res.StudentAnswer,
			CorrectAnswer: res.CorrectAnswer,
			IsCorrect:     res.IsCorrect,
			Explanation:   res.Explanation,
			Topic:         res.Topic,
		}
	}
	return &quiz.Attempt{
		ID:              row.ID,
		QuizID:          row.QuizID,
		SessionID:       row.SessionID,
		StudentID:       row.StudentID,
		Answers:         row.Answers,
		Score:           row.Score,
		CorrectCount:    row.CorrectCount,
		TotalQuestions:  row.TotalQuestions,
		DetailedResults: results,
		CompletedAt:     row.CompletedAt,
	}
}
