package quiz

import (
	"strings"
	"testing"
)

func validMC() Question {
	return Question{
		Text:          "What is 2 + 2?",
		Type:          TypeMultipleChoice,
		Options:       []string{"3", "4", "5"},
		CorrectAnswer: "4",
		Explanation:   "Basic addition.",
		Topic:         "arithmetic",
	}
}

func validTF() Question {
	return Question{
		Text:          "Zero is even.",
		Type:          TypeTrueFalse,
		CorrectAnswer: "true",
		Explanation:   "Zero is divisible by two.",
		Topic:         "number theory",
	}
}

func TestValidateQuestions(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		wantErr   string // substring; empty means valid
	}{
		{"valid mixed list", []Question{validMC(), validTF()}, ""},
		{"empty list", nil, "empty question list"},
		{
			"empty text",
			[]Question{func() Question { q := validMC(); q.Text = "  "; return q }()},
			"empty text",
		},
		{
			"empty explanation",
			[]Question{func() Question { q := validTF(); q.Explanation = ""; return q }()},
			"empty explanation",
		},
		{
			"multiple choice without options",
			[]Question{func() Question { q := validMC(); q.Options = nil; return q }()},
			"without options",
		},
		{
			"correct answer absent from options",
			[]Question{func() Question { q := validMC(); q.CorrectAnswer = "6"; return q }()},
			"not among the options",
		},
		{
			"correct answer differs only by case",
			[]Question{func() Question {
				q := validMC()
				q.Options = []string{"Paris", "London"}
				q.CorrectAnswer = "paris"
				return q
			}()},
			"not among the options",
		},
		{
			"true_false with arbitrary answer",
			[]Question{func() Question { q := validTF(); q.CorrectAnswer = "yes"; return q }()},
			"not \"true\" or \"false\"",
		},
		{
			"true_false accepts mixed case",
			[]Question{func() Question { q := validTF(); q.CorrectAnswer = "False"; return q }()},
			"",
		},
		{
			"unknown question type",
			[]Question{func() Question { q := validMC(); q.Type = "essay"; return q }()},
			"unknown type",
		},
		{
			"second question invalid rejects whole list",
			[]Question{validMC(), {Text: "x", Type: TypeTrueFalse, CorrectAnswer: "maybe", Explanation: "y"}},
			"question 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestions(tt.questions)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
