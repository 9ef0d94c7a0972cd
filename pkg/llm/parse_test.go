package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsense/pkg/domain"
)

func TestParseSingle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.CategoryResult
		wantErr string
	}{
		{
			name:    "plain object",
			content: `{"category": "customer_service", "confidence": 0.7, "reasoning": "rude staff"}`,
			want:    domain.CategoryResult{Category: domain.CategoryCustomerService, Confidence: 0.7, Reasoning: "rude staff"},
		},
		{
			name:    "rounded confidence",
			content: `{"category": "product_quality", "confidence": 0.123456, "reasoning": "flimsy"}`,
			want:    domain.CategoryResult{Category: domain.CategoryProductQuality, Confidence: 0.12, Reasoning: "flimsy"},
		},
		{
			name:    "boundary confidence",
			content: `{"category": "compliment", "confidence": 1, "reasoning": "ok"}`,
			want:    domain.CategoryResult{Category: domain.CategoryCompliment, Confidence: 1, Reasoning: "ok"},
		},
		{
			name:    "category with spaces",
			content: `{"category": " compliment ", "confidence": 0, "reasoning": "ok"}`,
			want:    domain.CategoryResult{Category: domain.CategoryCompliment, Confidence: 0, Reasoning: "ok"},
		},
		{name: "missing confidence", content: `{"category": "compliment"}`, wantErr: "confidence is not a number"},
		{name: "negative confidence", content: `{"category": "compliment", "confidence": -0.1}`, wantErr: "confidence out of range"},
		{name: "unknown category", content: `{"category": "other", "confidence": 0.5}`, wantErr: `invalid category "other"`},
		{name: "broken json", content: `{"category": "compliment", "confidence": }`, wantErr: "failed to parse json object"},
		{name: "no object", content: `compliment`, wantErr: "no json object found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSingle(tt.content)
			if tt.wantErr != "" {
				require.Error(t, err)
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Contains(t, perr.Reason, tt.wantErr)
				assert.Equal(t, tt.content, perr.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBatch(t *testing.T) {
	t.Run("placed by index", func(t *testing.T) {
		entries, err := parseBatch(`[
			{"index": 2, "category": "compliment", "confidence": 0.9, "reasoning": "b"},
			{"index": 1, "category": "bug_report", "confidence": 0.8, "reasoning": "a"}
		]`, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, domain.CategoryBugReport, entries[0].result.Category)
		assert.Equal(t, domain.CategoryCompliment, entries[1].result.Category)
	})

	t.Run("no indexes placed by position", func(t *testing.T) {
		entries, err := parseBatch(`[
			{"category": "compliment", "confidence": 0.9, "reasoning": "a"},
			{"category": "bug_report", "confidence": 0.8, "reasoning": "b"}
		]`, 2)
		require.NoError(t, err)
		assert.Equal(t, "a", entries[0].result.Reasoning)
		assert.Equal(t, "b", entries[1].result.Reasoning)
	})

	rejected := []struct {
		name    string
		content string
	}{
		{name: "zero-based indexes", content: `[
			{"index": 0, "category": "bug_report", "confidence": 0.8},
			{"index": 1, "category": "compliment", "confidence": 0.9},
			{"index": 2, "category": "refund_request", "confidence": 0.7}
		]`},
		{name: "partial shift", content: `[
			{"index": 1, "category": "bug_report", "confidence": 0.8},
			{"index": 3, "category": "compliment", "confidence": 0.9},
			{"index": 4, "category": "refund_request", "confidence": 0.7}
		]`},
		{name: "duplicate index", content: `[
			{"index": 1, "category": "bug_report", "confidence": 0.8},
			{"index": 3, "category": "compliment", "confidence": 0.9},
			{"index": 3, "category": "refund_request", "confidence": 0.7}
		]`},
		{name: "some indexes missing", content: `[
			{"category": "bug_report", "confidence": 0.8},
			{"index": 2, "category": "compliment", "confidence": 0.9},
			{"index": 3, "category": "refund_request", "confidence": 0.7}
		]`},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := parseBatch(tc.content, 3)
			require.Error(t, err)
			assert.Nil(t, entries)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "result indexes are not a permutation of 1..3", perr.Reason)
		})
	}

	t.Run("invalid item reported per slot", func(t *testing.T) {
		entries, err := parseBatch(`[
			{"index": 1, "category": "nope", "confidence": 0.9},
			{"index": 2, "category": "bug_report", "confidence": 0.8}
		]`, 2)
		require.NoError(t, err)
		require.Error(t, entries[0].err)
		require.NoError(t, entries[1].err)
		assert.Equal(t, "AI-based categorization", entries[1].result.Reasoning)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := parseBatch(`[{"index": 1, "category": "bug_report", "confidence": 0.8}]`, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 2 results, got 1")
	})

	t.Run("no array", func(t *testing.T) {
		_, err := parseBatch(`{"category": "bug_report"}`, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no json array found")
	})
}

func TestBuildBatchPrompt(t *testing.T) {
	prompt := buildBatchPrompt([]string{"first", "line\nbreak"})
	assert.Contains(t, prompt, `1. "first"`)
	assert.Contains(t, prompt, `2. "line\nbreak"`)
	assert.Contains(t, prompt, "exactly 2 objects")
	assert.Contains(t, prompt, "- shipping_complaint: ")
}
