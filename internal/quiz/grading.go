package quiz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Grade scores a student's answers against the quiz and returns the
// complete attempt, ready to be persisted as a whole. It is deterministic
// and single-pass; it mutates nothing.
//
// The answers map must carry keys exactly 0..n-1 where n is the number of
// questions; anything else is an incomplete submission and no attempt is
// produced.
func Grade(q *Quiz, studentID string, answers map[int]string) (*Attempt, error) {
	n := len(q.Questions)
	if len(answers) != n {
		return nil, &ContractError{
			Op:     "grade",
			Detail: fmt.Sprintf("got %d answers for %d questions", len(answers), n),
			Reason: ErrIncompleteSubmission,
		}
	}
	for i := range n {
		if _, ok := answers[i]; !ok {
			return nil, &ContractError{
				Op:     "grade",
				Detail: fmt.Sprintf("missing answer for question %d", i),
				Reason: ErrIncompleteSubmission,
			}
		}
	}

	ordered := make([]string, n)
	results := make([]AnswerResult, n)
	correct := 0

	for i, question := range q.Questions {
		given := answers[i]
		ordered[i] = given
		ok := isCorrect(question, given)
		if ok {
			correct++
		}
		results[i] = AnswerResult{
			Question:      question.Text,
			StudentAnswer: given,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     ok,
			Explanation:   question.Explanation,
			Topic:         question.Topic,
		}
	}

	return &Attempt{
		ID:              uuid.NewString(),
		QuizID:          q.ID,
		SessionID:       q.SessionID,
		StudentID:       studentID,
		Answers:         ordered,
		Score:           scoreOf(correct, n),
		CorrectCount:    correct,
		TotalQuestions:  n,
		DetailedResults: results,
		CompletedAt:     time.Now().UTC(),
	}, nil
}

// isCorrect compares one answer after trimming whitespace on both sides.
// Multiple choice is case-sensitive; true/false is case-insensitive.
func isCorrect(q Question, given string) bool {
	given = strings.TrimSpace(given)
	want := strings.TrimSpace(q.CorrectAnswer)

	if q.Type == TypeTrueFalse {
		return strings.EqualFold(given, want)
	}
	return given == want
}

// scoreOf converts a correct count into a 0-100 score, round-half-up.
func scoreOf(correct, total int) int {
	return int(math.Floor(float64(correct)/float64(total)*100 + 0.5))
}
