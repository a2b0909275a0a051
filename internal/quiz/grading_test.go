package quiz

import (
	"errors"
	"testing"
)

func threeQuestionQuiz() *Quiz {
	return &Quiz{
		ID:        "quiz-1",
		SessionID: "session-1",
		Questions: []Question{
			{
				Text:          "What is the slope of y = 2x + 1?",
				Type:          TypeMultipleChoice,
				Options:       []string{"1", "2", "3"},
				CorrectAnswer: "2",
				Explanation:   "The coefficient of x is the slope.",
				Topic:         "linear equations",
			},
			{
				Text:          "A line with slope 0 is horizontal.",
				Type:          TypeTrueFalse,
				CorrectAnswer: "true",
				Explanation:   "Zero slope means no vertical change.",
				Topic:         "linear equations",
			},
			{
				Text:          "Which point lies on y = x?",
				Type:          TypeMultipleChoice,
				Options:       []string{"(1, 2)", "(3, 3)", "(0, 4)"},
				CorrectAnswer: "(3, 3)",
				Explanation:   "Both coordinates are equal on y = x.",
				Topic:         "graphing",
			},
		},
	}
}

func TestGradeScoreRounding(t *testing.T) {
	q := threeQuestionQuiz()

	// Two of three correct rounds half-up to 67, never 66.
	attempt, err := Grade(q, "student-1", map[int]string{
		0: "2",
		1: "true",
		2: "(0, 4)",
	})
	if err != nil {
		t.Fatal(err)
	}
	if attempt.Score != 67 {
		t.Errorf("score = %d, want 67", attempt.Score)
	}
	if attempt.CorrectCount != 2 {
		t.Errorf("correct count = %d, want 2", attempt.CorrectCount)
	}
	if attempt.TotalQuestions != 3 {
		t.Errorf("total = %d, want 3", attempt.TotalQuestions)
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	q := threeQuestionQuiz()
	answers := map[int]string{0: "2", 1: "false", 2: "(3, 3)"}

	first, err := Grade(q, "student-1", answers)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Grade(q, "student-1", answers)
	if err != nil {
		t.Fatal(err)
	}
	if first.Score != second.Score || first.CorrectCount != second.CorrectCount {
		t.Errorf("grading diverged: %d/%d vs %d/%d",
			first.Score, first.CorrectCount, second.Score, second.CorrectCount)
	}
}

func TestGradeAnswerComparison(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		given    string
		want     bool
	}{
		{
			"multiple choice exact match",
			Question{Type: TypeMultipleChoice, CorrectAnswer: "Paris"},
			"Paris", true,
		},
		{
			"multiple choice is case-sensitive",
			Question{Type: TypeMultipleChoice, CorrectAnswer: "Paris"},
			"paris", false,
		},
		{
			"multiple choice trims whitespace",
			Question{Type: TypeMultipleChoice, CorrectAnswer: "Paris"},
			"  Paris  ", true,
		},
		{
			"true/false is case-insensitive",
			Question{Type: TypeTrueFalse, CorrectAnswer: "true"},
			"TRUE", true,
		},
		{
			"true/false trims whitespace",
			Question{Type: TypeTrueFalse, CorrectAnswer: "false"},
			" False ", true,
		},
		{
			"true/false wrong answer",
			Question{Type: TypeTrueFalse, CorrectAnswer: "true"},
			"false", false,
		},
		{
			"stored answer with padding still matches",
			Question{Type: TypeMultipleChoice, CorrectAnswer: " 42 "},
			"42", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCorrect(tt.question, tt.given); got != tt.want {
				t.Errorf("isCorrect(%q) = %v, want %v", tt.given, got, tt.want)
			}
		})
	}
}

func TestGradeIncompleteSubmission(t *testing.T) {
	q := threeQuestionQuiz()

	tests := []struct {
		name    string
		answers map[int]string
	}{
		{"too few answers", map[int]string{0: "2", 1: "true"}},
		{"too many answers", map[int]string{0: "2", 1: "true", 2: "(3, 3)", 3: "extra"}},
		{"non-contiguous indexes", map[int]string{0: "2", 1: "true", 5: "(3, 3)"}},
		{"empty submission", map[int]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt, err := Grade(q, "student-1", tt.answers)
			if attempt != nil {
				t.Error("attempt produced for incomplete submission")
			}
			if !errors.Is(err, ErrIncompleteSubmission) {
				t.Fatalf("err = %v, want ErrIncompleteSubmission", err)
			}
			var contractErr *ContractError
			if !errors.As(err, &contractErr) {
				t.Fatalf("expected ContractError, got %T", err)
			}
		})
	}
}

func TestGradeDetailedResults(t *testing.T) {
	q := threeQuestionQuiz()

	attempt, err := Grade(q, "student-1", map[int]string{
		0: "3",
		1: "true",
		2: "(3, 3)",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(attempt.DetailedResults) != len(q.Questions) {
		t.Fatalf("results = %d, want %d", len(attempt.DetailedResults), len(q.Questions))
	}
	if len(attempt.Answers) != len(q.Questions) {
		t.Fatalf("answers = %d, want %d", len(attempt.Answers), len(q.Questions))
	}

	for i, r := range attempt.DetailedResults {
		if r.Question != q.Questions[i].Text {
			t.Errorf("result %d: question order broken", i)
		}
		if r.Explanation != q.Questions[i].Explanation {
			t.Errorf("result %d: explanation missing", i)
		}
	}

	if attempt.DetailedResults[0].IsCorrect {
		t.Error("result 0: wrong answer marked correct")
	}
	if !attempt.DetailedResults[1].IsCorrect || !attempt.DetailedResults[2].IsCorrect {
		t.Error("correct answers not marked")
	}
	if attempt.Answers[0] != "3" {
		t.Errorf("answers[0] = %q, want %q", attempt.Answers[0], "3")
	}
}

func TestGradePerfectAndZeroScores(t *testing.T) {
	q := threeQuestionQuiz()

	perfect, err := Grade(q, "student-1", map[int]string{0: "2", 1: "true", 2: "(3, 3)"})
	if err != nil {
		t.Fatal(err)
	}
	if perfect.Score != 100 {
		t.Errorf("perfect score = %d, want 100", perfect.Score)
	}

	zero, err := Grade(q, "student-1", map[int]string{0: "1", 1: "false", 2: "(1, 2)"})
	if err != nil {
		t.Fatal(err)
	}
	if zero.Score != 0 {
		t.Errorf("zero score = %d, want 0", zero.Score)
	}
}
