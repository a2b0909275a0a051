package summary

import "github.com/tutorbay/tutorbay/internal/llm"

// Schema defines the JSON structure expected from the summary generator.
// All four fields are required and must be non-empty; the service rejects
// the whole payload if any of them is missing or blank.
var Schema = &llm.Schema{
	Name:        "lesson-summary",
	Description: "Structured recap of a completed tutoring session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"what_was_learned": map[string]any{
				"type":        "string",
				"description": "Concepts and skills covered in the session (2-4 sentences)",
			},
			"mistakes": map[string]any{
				"type":        "string",
				"description": "Recurring mistakes or misconceptions observed (1-3 sentences)",
			},
			"strengths": map[string]any{
				"type":        "string",
				"description": "What the student did well (1-3 sentences)",
			},
			"practice_tasks": map[string]any{
				"type":        "string",
				"description": "Concrete at-home practice tasks, one per line",
			},
		},
		"required":             []any{"what_was_learned", "mistakes", "strengths", "practice_tasks"},
		"additionalProperties": false,
	},
}
