package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with call
// recording when a Recorder is given. There is deliberately no retry
// wrapper here: generator failures surface to the caller immediately.
func NewProvider(ctx context.Context, cfg Config, recorder Recorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if recorder != nil {
		base = WithLogging(base, recorder)
	}
	return base, nil
}

// NewProviderFromEnv builds a provider from TUTORBAY_* variables, falling
// back to discovery of standard vendor key variables. It returns the
// resolved Config alongside the provider so callers can propagate settings
// like Timeout into their generator configs.
func NewProviderFromEnv(ctx context.Context, recorder Recorder) (Provider, Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, Config{}, err
		}
		cfg = discovered
	}
	p, err := NewProvider(ctx, cfg, recorder)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
