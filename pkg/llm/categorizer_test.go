package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsense/pkg/domain"
	"github.com/umputun/feedsense/pkg/llm/mocks"
)

func TestCategorizer_Classify(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		respErr       error
		wantSource    domain.Source
		wantReason    domain.FallbackReason
		wantCat       domain.Category
		wantConf      float64
		wantReasoning string
	}{
		{
			name:          "valid answer",
			response:      `{"category": "bug_report", "confidence": 0.9, "reasoning": "app crashes"}`,
			wantSource:    domain.SourceAI,
			wantCat:       domain.CategoryBugReport,
			wantConf:      0.9,
			wantReasoning: "app crashes",
		},
		{
			name:          "answer wrapped in text",
			response:      "Sure! Here it is:\n```json\n{\"category\": \"compliment\", \"confidence\": 0.876}\n```",
			wantSource:    domain.SourceAI,
			wantCat:       domain.CategoryCompliment,
			wantConf:      0.88,
			wantReasoning: "AI-based categorization",
		},
		{
			name:          "invalid category",
			response:      `{"category": "spam", "confidence": 0.9, "reasoning": "x"}`,
			wantSource:    domain.SourceFallback,
			wantReason:    domain.ReasonInvalidResponse,
			wantCat:       domain.CategoryBugReport,
			wantConf:      0.6,
			wantReasoning: "Keyword-based classification (fallback method). Found 3 matching keywords.",
		},
		{
			name:       "confidence out of range",
			response:   `{"category": "bug_report", "confidence": 1.5}`,
			wantSource: domain.SourceFallback,
			wantReason: domain.ReasonInvalidResponse,
			wantCat:    domain.CategoryBugReport,
			wantConf:   0.6,
		},
		{
			name:       "confidence as string",
			response:   `{"category": "bug_report", "confidence": "high"}`,
			wantSource: domain.SourceFallback,
			wantReason: domain.ReasonInvalidResponse,
			wantCat:    domain.CategoryBugReport,
			wantConf:   0.6,
		},
		{
			name:       "no json",
			response:   "I think this is a bug report",
			wantSource: domain.SourceFallback,
			wantReason: domain.ReasonInvalidResponse,
			wantCat:    domain.CategoryBugReport,
			wantConf:   0.6,
		},
		{
			name:       "request error",
			respErr:    errors.New("connection refused"),
			wantSource: domain.SourceFallback,
			wantReason: domain.ReasonRequestFailed,
			wantCat:    domain.CategoryBugReport,
			wantConf:   0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mocks.CompleterMock{
				CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
					return tt.response, tt.respErr
				},
			}
			c := NewCategorizer(CategorizerParams{Completer: completer, Model: "test-model"})

			res, err := c.Classify(context.Background(), "the app has a bug, it shows an error and then crash")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, res.Source)
			assert.Equal(t, tt.wantReason, res.FallbackReason)
			assert.Equal(t, tt.wantCat, res.Result.Category)
			assert.InDelta(t, tt.wantConf, res.Result.Confidence, 0.0001)
			if tt.wantReasoning != "" {
				assert.Equal(t, tt.wantReasoning, res.Result.Reasoning)
			}
			assert.Len(t, completer.CompleteCalls(), 1)
		})
	}
}

func TestCategorizer_ClassifyPrompt(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return `{"category": "general_inquiry", "confidence": 0.5, "reasoning": "question"}`, nil
		},
	}
	c := NewCategorizer(CategorizerParams{Completer: completer})

	_, err := c.Classify(context.Background(), `what are your "opening" hours?`)
	require.NoError(t, err)

	require.Len(t, completer.CompleteCalls(), 1)
	prompt := completer.CompleteCalls()[0].Prompt
	for _, cat := range domain.Categories {
		assert.Contains(t, prompt, string(cat))
	}
	assert.Contains(t, prompt, `Feedback text: "what are your \"opening\" hours?"`)
}

func TestCategorizer_ClassifyEmptyText(t *testing.T) {
	completer := &mocks.CompleterMock{}
	c := NewCategorizer(CategorizerParams{Completer: completer})

	_, err := c.Classify(context.Background(), "   \n\t")
	require.ErrorIs(t, err, ErrEmptyText)
	assert.Empty(t, completer.CompleteCalls())
}

func TestCategorizer_NotConfigured(t *testing.T) {
	c := NewCategorizer(CategorizerParams{})
	assert.False(t, c.Available())

	res, err := c.Classify(context.Background(), "please add dark mode, it would improve the app")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, res.Source)
	assert.Equal(t, domain.ReasonNotConfigured, res.FallbackReason)
	assert.Equal(t, domain.CategoryFeatureRequest, res.Result.Category)

	_, err = c.ClassifyChunk(context.Background(), []string{"a", "b"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestCategorizer_RateLimited(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return `{"category": "compliment", "confidence": 0.95, "reasoning": "praise"}`, nil
		},
	}
	c := NewCategorizer(CategorizerParams{Completer: completer, Limiter: NewRateLimiter(2)})

	for i := 0; i < 2; i++ {
		res, err := c.Classify(context.Background(), "great product, love it")
		require.NoError(t, err)
		assert.True(t, res.IsAI())
	}

	res, err := c.Classify(context.Background(), "great product, love it")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, res.Source)
	assert.Equal(t, domain.ReasonRateLimited, res.FallbackReason)
	assert.Equal(t, domain.CategoryCompliment, res.Result.Category)
	assert.Len(t, completer.CompleteCalls(), 2, "no request is made once the limit is reached")

	_, err = c.ClassifyChunk(context.Background(), []string{"great"})
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Len(t, completer.CompleteCalls(), 2)

	usage := c.Usage()
	assert.Equal(t, 2, usage.RequestsInLastMinute)
	assert.Equal(t, 0, usage.RemainingRequests)
}

func TestCategorizer_FailedRequestCountsAgainstLimit(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("503 service unavailable")
		},
	}
	c := NewCategorizer(CategorizerParams{Completer: completer, Limiter: NewRateLimiter(5)})

	_, err := c.Classify(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Usage().RequestsInLastMinute)
}

func TestCategorizer_Timeout(t *testing.T) {
	completer := &mocks.CompleterMock{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	c := NewCategorizer(CategorizerParams{Completer: completer, Timeout: 20 * time.Millisecond})

	st := time.Now()
	res, err := c.Classify(context.Background(), "the package arrived late and damaged")
	require.NoError(t, err)
	assert.Less(t, time.Since(st), time.Second)
	assert.Equal(t, domain.ReasonRequestFailed, res.FallbackReason)
	assert.Equal(t, domain.CategoryShippingComplaint, res.Result.Category)
}

func TestCategorizer_ClassifyChunk(t *testing.T) {
	texts := []string{"crash on login", "love it", "where is my refund"}

	t.Run("all valid, shuffled indexes", func(t *testing.T) {
		completer := &mocks.CompleterMock{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return `Results:
[
  {"index": 3, "category": "refund_request", "confidence": 0.8, "reasoning": "wants money back"},
  {"index": 1, "category": "bug_report", "confidence": 0.95, "reasoning": "crash"},
  {"index": 2, "category": "compliment", "confidence": 0.9, "reasoning": "praise"}
]`, nil
			},
		}
		c := NewCategorizer(CategorizerParams{Completer: completer})

		res, err := c.ClassifyChunk(context.Background(), texts)
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, domain.CategoryBugReport, res[0].Result.Category)
		assert.Equal(t, domain.CategoryCompliment, res[1].Result.Category)
		assert.Equal(t, domain.CategoryRefundRequest, res[2].Result.Category)
		for _, r := range res {
			assert.True(t, r.IsAI())
		}

		require.Len(t, completer.CompleteCalls(), 1)
		prompt := completer.CompleteCalls()[0].Prompt
		assert.Contains(t, prompt, `1. "crash on login"`)
		assert.Contains(t, prompt, `3. "where is my refund"`)
		assert.Contains(t, prompt, "exactly 3 objects")
	})

	t.Run("invalid item gets fallback", func(t *testing.T) {
		completer := &mocks.CompleterMock{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return `[
  {"index": 1, "category": "bug_report", "confidence": 0.95, "reasoning": "crash"},
  {"index": 2, "category": "praise", "confidence": 0.9, "reasoning": "praise"},
  {"index": 3, "category": "refund_request", "confidence": -1, "reasoning": "refund"}
]`, nil
			},
		}
		c := NewCategorizer(CategorizerParams{Completer: completer})

		res, err := c.ClassifyChunk(context.Background(), texts)
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.True(t, res[0].IsAI())
		assert.Equal(t, domain.ReasonInvalidResponse, res[1].FallbackReason)
		assert.Equal(t, domain.CategoryCompliment, res[1].Result.Category)
		assert.Equal(t, domain.ReasonInvalidResponse, res[2].FallbackReason)
		assert.Equal(t, domain.CategoryRefundRequest, res[2].Result.Category)
	})

	t.Run("wrong length", func(t *testing.T) {
		completer := &mocks.CompleterMock{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return `[{"index": 1, "category": "bug_report", "confidence": 0.95, "reasoning": "crash"}]`, nil
			},
		}
		c := NewCategorizer(CategorizerParams{Completer: completer})

		_, err := c.ClassifyChunk(context.Background(), texts)
		require.Error(t, err)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, perr.Reason, "expected 3 results, got 1")
		assert.Len(t, completer.CompleteCalls(), 2, "unparseable answer retried once")
		assert.Equal(t, 2, c.Usage().RequestsInLastMinute)
	})

	t.Run("retry after bad answer", func(t *testing.T) {
		answers := []string{
			`[{"index": 0, "category": "bug_report", "confidence": 0.95}, {"index": 1, "category": "compliment", "confidence": 0.9},
  {"index": 2, "category": "refund_request", "confidence": 0.8}]`,
			`[{"index": 1, "category": "bug_report", "confidence": 0.95}, {"index": 2, "category": "compliment", "confidence": 0.9},
  {"index": 3, "category": "refund_request", "confidence": 0.8}]`,
		}
		completer := &mocks.CompleterMock{}
		completer.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return answers[len(completer.CompleteCalls())-1], nil
		}
		c := NewCategorizer(CategorizerParams{Completer: completer})

		res, err := c.ClassifyChunk(context.Background(), texts)
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, domain.CategoryBugReport, res[0].Result.Category)
		assert.Equal(t, domain.CategoryCompliment, res[1].Result.Category)
		assert.Equal(t, domain.CategoryRefundRequest, res[2].Result.Category)
		assert.Len(t, completer.CompleteCalls(), 2)
	})

	t.Run("no retry without rate limit budget", func(t *testing.T) {
		completer := &mocks.CompleterMock{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "not json at all", nil
			},
		}
		c := NewCategorizer(CategorizerParams{Completer: completer, Limiter: NewRateLimiter(1)})

		_, err := c.ClassifyChunk(context.Background(), texts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 1 attempt(s)")
		assert.Len(t, completer.CompleteCalls(), 1)
	})

	t.Run("request error", func(t *testing.T) {
		completer := &mocks.CompleterMock{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		c := NewCategorizer(CategorizerParams{Completer: completer})

		_, err := c.ClassifyChunk(context.Background(), texts)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "batch request:"))
	})

	t.Run("empty input", func(t *testing.T) {
		completer := &mocks.CompleterMock{}
		c := NewCategorizer(CategorizerParams{Completer: completer})

		res, err := c.ClassifyChunk(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.Empty(t, completer.CompleteCalls())
	})
}
