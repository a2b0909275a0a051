package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is one fully graded submission. Rows are append-only: a retake
// inserts a new row and the most recent row per (quiz, student) is the
// retrievable attempt.
type QuizAttempt struct {
	ent.Schema
}

// AnswerResultRecord is the serialized per-question grading outcome.
type AnswerResultRecord struct {
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique(),
		field.String("quiz_id").
			NotEmpty().
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.JSON("answers", []string{}).
			Immutable().
			Comment("Student answers in question order (contiguity validated before insert)"),
		field.Int("score").
			Immutable().
			Comment("0-100, round-half-up"),
		field.Int("correct_count").
			Immutable(),
		field.Int("total_questions").
			Immutable(),
		field.JSON("detailed_results", []AnswerResultRecord{}).
			Immutable().
			Comment("Per-question outcome, mirrors the quiz question order"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id", "student_id"),
		index.Fields("session_id"),
	}
}
