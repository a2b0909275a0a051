package quiz

import (
	"fmt"
	"strings"
)

// validateQuestions enforces the semantic rules on a generated question
// list. Any violation rejects the entire payload; no partial quiz is ever
// persisted.
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("empty question list")
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: empty text", i)
		}
		if strings.TrimSpace(q.Explanation) == "" {
			return fmt.Errorf("question %d: empty explanation", i)
		}

		switch q.Type {
		case TypeMultipleChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %d: multiple_choice without options", i)
			}
			if !containsVerbatim(q.Options, q.CorrectAnswer) {
				return fmt.Errorf("question %d: correct_answer %q is not among the options", i, q.CorrectAnswer)
			}
		case TypeTrueFalse:
			if !strings.EqualFold(q.CorrectAnswer, "true") && !strings.EqualFold(q.CorrectAnswer, "false") {
				return fmt.Errorf("question %d: true_false correct_answer %q is not \"true\" or \"false\"", i, q.CorrectAnswer)
			}
		default:
			return fmt.Errorf("question %d: unknown type %q", i, q.Type)
		}
	}

	return nil
}

// containsVerbatim checks exact, case-sensitive membership.
func containsVerbatim(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
