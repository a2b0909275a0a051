// Package llm wraps the external text-generation capability behind one
// narrow Provider interface so the vendor is swappable without touching
// lifecycle or grading logic. Providers never retry internally: transient
// failures surface immediately and retry policy belongs to the caller.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the text-generation capability. Consumers send a Request and
// receive structured JSON back.
type Provider interface {
	// Generate sends a prompt to the model and returns its output. When the
	// request carries a Schema, the provider requests structured output and
	// validates the response against the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// User is the user prompt. Generation here is single-turn: one user
	// message in, one structured response out.
	User string

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero means deterministic.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "lesson-summary".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated JSON (schema-validated when the request
	// carried a Schema).
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel maps a friendly model name to a provider model ID, passing
// unknown names through so direct model IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
