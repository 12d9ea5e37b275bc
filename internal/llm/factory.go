package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/fitcheck/internal/store"
)

// NewProvider builds the configured adapter and wraps it as
// caller → timeout → retry → logging → adapter. The logging layer is
// skipped when events is nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := base
	if events != nil {
		p = WithLogging(p, cfg.Provider, events, logger)
	}
	p = WithRetry(p, cfg.Retry)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

// NewProviderFromEnv resolves the provider from the environment (see
// ResolveConfig), applies overrides and builds it. It returns
// ErrNotConfigured when no credentials are present.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *slog.Logger, overrides ...Option) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	return NewProvider(ctx, cfg, events, logger)
}

// Option adjusts a resolved Config.
type Option func(*Config)

// WithTimeoutOption overrides Config.Timeout when d is positive.
func WithTimeoutOption(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithMaxAttempts overrides Config.Retry.MaxAttempts when n is positive.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Retry.MaxAttempts = n
		}
	}
}
