package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TUTORBAY_LLM_PROVIDER", "openai")
	t.Setenv("TUTORBAY_OPENAI_API_KEY", "sk-test")
	t.Setenv("TUTORBAY_OPENAI_MODEL", "gpt-4o")
	t.Setenv("TUTORBAY_LLM_TIMEOUT", "90s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("timeout = %s, want 90s", cfg.Timeout)
	}
	// Unset sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q, want default", cfg.Anthropic.Model)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("TUTORBAY_LLM_PROVIDER", "")
	t.Setenv("TUTORBAY_LLM_TIMEOUT", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("timeout = %s, want 45s", cfg.Timeout)
	}
}

func TestConfigFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("TUTORBAY_LLM_TIMEOUT", "soon")

	if cfg := ConfigFromEnv(); cfg.Timeout != 45*time.Second {
		t.Errorf("timeout = %s, want default 45s", cfg.Timeout)
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovered a config with no keys set")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("provider = %q ok=%v, want gemini", cfg.Provider, ok)
	}

	// Anthropic wins when several keys are present.
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("provider = %q ok=%v, want anthropic", cfg.Provider, ok)
	}
	if cfg.Anthropic.APIKey != "a-key" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"claude-haiku": "claude-haiku-4-5"}

	if got := resolveModel("claude-haiku", models); got != "claude-haiku-4-5" {
		t.Errorf("resolveModel(claude-haiku) = %q", got)
	}
	// Unknown names pass through so direct model IDs keep working.
	if got := resolveModel("claude-haiku-4-5", models); got != "claude-haiku-4-5" {
		t.Errorf("resolveModel(passthrough) = %q", got)
	}
}
