package tutor

import (
	"context"
	"fmt"

	"github.com/jeevibe/jeevibe/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and logging middleware. repo may be nil to skip event logging.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
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
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown tutor provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	if repo != nil {
		base = WithLogging(base, repo)
	}
	return WithRetry(base, cfg.Retry), nil
}
