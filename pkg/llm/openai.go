package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/feedsense/pkg/config"
)

// OpenAICompleter talks to any OpenAI-compatible chat completion endpoint
type OpenAICompleter struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewOpenAICompleter creates a completer for OpenAI-compatible APIs
func NewOpenAICompleter(cfg config.LLMConfig) *OpenAICompleter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &OpenAICompleter{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemPrompt(cfg),
	}
}

// Complete sends the prompt as a user message
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}
