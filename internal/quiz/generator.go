package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorbay/tutorbay/internal/llm"
	"github.com/tutorbay/tutorbay/internal/session"
)

// Config holds quiz generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout is the caller-enforced deadline for the generation call.
	// Expiry fails closed: no partial quiz is ever persisted.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for quiz generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1536,
		Temperature: 0.5,
		Timeout:     60 * time.Second,
	}
}

// quizOutput is the raw generator response before validation.
type quizOutput struct {
	Questions []struct {
		Text          string   `json:"text"`
		Type          string   `json:"type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
		Topic         string   `json:"topic"`
	} `json:"questions"`
	FocusAreas []string `json:"focus_areas"`
	Difficulty string   `json:"difficulty"`
}

// generate calls the model and returns a fully validated quiz, or a
// GenerationFailed with nothing persisted.
func generate(ctx context.Context, provider llm.Provider, cfg Config, sessionID, subject string, sum *session.Summary) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System:      systemPrompt,
		User:        buildUserMessage(subject, sum),
		Schema:      Schema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationFailed{SessionID: sessionID, Err: err}
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &GenerationFailed{SessionID: sessionID, Err: fmt.Errorf("parse response: %w", err)}
	}

	questions := make([]Question, len(out.Questions))
	for i, q := range out.Questions {
		questions[i] = Question{
			Text:          q.Text,
			Type:          QuestionType(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Topic:         q.Topic,
		}
	}

	if err := validateQuestions(questions); err != nil {
		return nil, &GenerationFailed{SessionID: sessionID, Err: err}
	}

	return &Quiz{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Questions:  questions,
		FocusAreas: out.FocusAreas,
		Difficulty: out.Difficulty,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
