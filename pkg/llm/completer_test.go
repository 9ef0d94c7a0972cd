package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsense/pkg/config"
	"github.com/umputun/feedsense/pkg/domain"
)

func TestNewCompleter(t *testing.T) {
	c, err := NewCompleter(config.LLMConfig{Provider: "openai"})
	require.NoError(t, err)
	assert.Nil(t, c, "no api key means no completer")

	c, err = NewCompleter(config.LLMConfig{Provider: "openai", APIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAICompleter{}, c)

	c, err = NewCompleter(config.LLMConfig{Provider: "anthropic", APIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicCompleter{}, c)

	_, err = NewCompleter(config.LLMConfig{Provider: "watson", APIKey: "key"})
	require.EqualError(t, err, `unsupported llm provider "watson"`)
}

func TestOpenAICompleter_Categorize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
			assert.Equal(t, "custom system prompt", req.Messages[0].Content)
			assert.Contains(t, req.Messages[1].Content, "the checkout page crashes")
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{
				Content: "Sure!\n```json\n{\"category\": \"bug_report\", \"confidence\": 0.91, \"reasoning\": \"crash on checkout\"}\n```",
			}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	completer := NewOpenAICompleter(config.LLMConfig{
		Endpoint:     server.URL + "/v1",
		APIKey:       "test-key",
		Model:        "gpt-4o-mini",
		Temperature:  0.3,
		MaxTokens:    500,
		SystemPrompt: "custom system prompt",
	})
	cat := NewCategorizer(CategorizerParams{Completer: completer, Limiter: NewRateLimiter(15), Timeout: 5 * time.Second,
		Model: "gpt-4o-mini"})

	res, err := cat.Classify(context.Background(), "the checkout page crashes")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceAI, res.Source)
	assert.Equal(t, domain.CategoryBugReport, res.Result.Category)
	assert.InDelta(t, 0.91, res.Result.Confidence, 0.0001)
	assert.Equal(t, "crash on checkout", res.Result.Reasoning)
	assert.Equal(t, 1, cat.Usage().RequestsInLastMinute)
}

func TestOpenAICompleter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer server.Close()

	completer := NewOpenAICompleter(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "gpt-4o-mini"})
	_, err := completer.Complete(context.Background(), "hello")
	require.Error(t, err)

	cat := NewCategorizer(CategorizerParams{Completer: completer, Limiter: NewRateLimiter(15)})
	res, err := cat.Classify(context.Background(), "the package arrived late")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, res.Source)
	assert.Equal(t, domain.ReasonRequestFailed, res.FallbackReason)
	assert.Equal(t, domain.CategoryShippingComplaint, res.Result.Category)
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer server.Close()

	completer := NewOpenAICompleter(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "gpt-4o-mini"})
	_, err := completer.Complete(context.Background(), "hello")
	require.EqualError(t, err, "no response from llm")
}
