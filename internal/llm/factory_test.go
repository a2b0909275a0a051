package llm

import (
	"context"
	"testing"
	"time"
)

func TestNewProviderMock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: "abacus"}, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderWrapsWithLogging(t *testing.T) {
	rec := &memRecorder{}
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, rec)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Fatalf("provider not wrapped with logging, got %T", p)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	t.Setenv("TUTORBAY_LLM_PROVIDER", "mock")
	t.Setenv("TUTORBAY_LLM_TIMEOUT", "90s")

	p, cfg, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
	// The resolved config comes back so callers can propagate the timeout.
	if cfg.Timeout != 90*time.Second {
		t.Errorf("timeout = %s, want 90s", cfg.Timeout)
	}
}

func TestNewProviderFromEnvNoKeys(t *testing.T) {
	t.Setenv("TUTORBAY_LLM_PROVIDER", "anthropic")
	t.Setenv("TUTORBAY_ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Fatal("expected error with no credentials anywhere")
	}
}
