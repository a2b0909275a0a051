package store

import (
	"context"
	"fmt"

	"github.com/tutorbay/tutorbay/ent"
	entquiz "github.com/tutorbay/tutorbay/ent/quiz"
	entschema "github.com/tutorbay/tutorbay/ent/schema"
	"github.com/tutorbay/tutorbay/internal/quiz"
)

// QuizRepo implements quiz.Repo on ent.
type QuizRepo struct {
	client *ent.Client
}

var _ quiz.Repo = (*QuizRepo)(nil)

func (r *QuizRepo) GetBySession(ctx context.Context, sessionID string) (*quiz.Quiz, error) {
	row, err := r.client.Quiz.Query().
		Where(entquiz.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, quiz.ErrQuizNotFound)
		}
		return nil, fmt.Errorf("get quiz for session %s: %w", sessionID, err)
	}
	return quizFromRow(row), nil
}

// Replace swaps the session's quiz in one transaction: delete whatever quiz
// the session had, then insert the new one. First generation deletes zero
// rows; regeneration deletes exactly one.
func (r *QuizRepo) Replace(ctx context.Context, q *quiz.Quiz) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Quiz.Delete().
		Where(entquiz.SessionID(q.SessionID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete prior quiz: %w", err)
	}

	if _, err := tx.Quiz.Create().
		SetID(q.ID).
		SetSessionID(q.SessionID).
		SetQuestions(questionsToRecords(q.Questions)).
		SetFocusAreas(q.FocusAreas).
		SetDifficulty(q.Difficulty).
		SetCreatedAt(q.CreatedAt).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save quiz: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quiz replace: %w", err)
	}
	return nil
}

func quizFromRow(row *ent.Quiz) *quiz.Quiz {
	questions := make([]quiz.Question, len(row.Questions))
	for i, q := range row.Questions {
		questions[i] = quiz.Question{
			Text:          q.Text,
			Type:          quiz.QuestionType(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Topic:         q.Topic,
		}
	}
	return &quiz.Quiz{
		ID:         row.ID,
		SessionID:  row.SessionID,
		Questions:  questions,
		FocusAreas: row.FocusAreas,
		Difficulty: row.Difficulty,
		CreatedAt:  row.CreatedAt,
	}
}

func questionsToRecords(questions []quiz.Question) []entschema.QuestionRecord {
	records := make([]entschema.QuestionRecord, len(questions))
	for i, q := range questions {
		records[i] = entschema.QuestionRecord{
			Text:          q.Text,
			Type:          string(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Topic:         q.Topic,
		}
	}
	return records
}
