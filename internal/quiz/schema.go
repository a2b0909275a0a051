package quiz

import "github.com/tutorbay/tutorbay/internal/llm"

// Schema defines the JSON structure expected from the quiz generator.
// Structural conformance is checked by the provider; the semantic rules
// (options contain the answer, true/false literals) are enforced by
// validateQuestions afterwards.
var Schema = &llm.Schema{
	Name:        "retention-quiz",
	Description: "A short retention quiz derived from a lesson summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "true_false"},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "3-4 options for multiple_choice, omitted for true_false",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "One of the options verbatim, or \"true\"/\"false\"",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct (1-2 sentences)",
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "The summary area this question tests",
						},
					},
					"required":             []any{"text", "type", "correct_answer", "explanation", "topic"},
					"additionalProperties": false,
				},
			},
			"focus_areas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
		},
		"required":             []any{"questions", "focus_areas", "difficulty"},
		"additionalProperties": false,
	},
}
