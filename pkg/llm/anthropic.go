package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/umputun/feedsense/pkg/config"
)

// AnthropicCompleter talks to the Anthropic messages API
type AnthropicCompleter struct {
	client    anthropic.Client
	config    config.LLMConfig
	systemMsg string
}

// NewAnthropicCompleter creates a completer for the Anthropic API
func NewAnthropicCompleter(cfg config.LLMConfig) *AnthropicCompleter {
	opts := []anthropicopt.RequestOption{anthropicopt.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, anthropicopt.WithBaseURL(cfg.Endpoint))
	}
	return &AnthropicCompleter{
		client:    anthropic.NewClient(opts...),
		config:    cfg,
		systemMsg: systemPrompt(cfg),
	}
}

// Complete sends the prompt and returns the first text block of the answer
func (c *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.Model),
		MaxTokens:   int64(c.config.MaxTokens),
		Temperature: anthropic.Float(c.config.Temperature),
		System:      []anthropic.TextBlockParam{{Text: c.systemMsg}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in anthropic response")
}
