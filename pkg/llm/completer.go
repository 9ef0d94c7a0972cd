package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsense/pkg/config"
)

//go:generate moq -out mocks/completer.go -pkg mocks -skip-ensure -fmt goimports . Completer

// Completer sends a prompt to the external text-completion service and returns the raw answer.
// The answer is untrusted free text expected to contain JSON.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// supported providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// NewCompleter makes a completer for the configured provider.
// Returns nil completer without error if no API key is set, which puts the categorizer in fallback mode.
func NewCompleter(cfg config.LLMConfig) (Completer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		lgr.Printf("[WARN] llm api key not set, categorization will use keyword fallback only")
		return nil, nil
	}

	switch cfg.Provider {
	case "", ProviderOpenAI:
		return NewOpenAICompleter(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicCompleter(cfg), nil
	case ProviderGemini:
		c, err := NewGeminiCompleter(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("make gemini completer: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

func systemPrompt(cfg config.LLMConfig) string {
	if cfg.SystemPrompt != "" {
		return cfg.SystemPrompt
	}
	return defaultSystemPrompt
}
