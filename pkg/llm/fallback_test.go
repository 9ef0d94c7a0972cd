package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/feedsense/pkg/domain"
)

func TestClassifyFallback(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		category   domain.Category
		confidence float64
		matches    string
	}{
		{name: "no keywords", text: "hello there", category: domain.CategoryGeneralInquiry, confidence: 0, matches: "Found 0 matching"},
		{name: "empty", text: "", category: domain.CategoryGeneralInquiry, confidence: 0, matches: "Found 0 matching"},
		{name: "bug report", text: "The app has a BUG and it will crash on start", category: domain.CategoryBugReport, confidence: 0.4, matches: "Found 2 matching"},
		{name: "shipping", text: "package arrived late and damaged", category: domain.CategoryShippingComplaint, confidence: 0.8, matches: "Found 4 matching"},
		{name: "multi-word keyword", text: "I want my money back", category: domain.CategoryRefundRequest, confidence: 0.2, matches: "Found 1 matching"},
		{name: "substring match", text: "the builder was flimsy", category: domain.CategoryProductQuality, confidence: 0.4, matches: "Found 2 matching"},
		{name: "tie keeps enumeration order", text: "bug in delivery", category: domain.CategoryBugReport, confidence: 0.2, matches: "Found 1 matching"},
		{name: "tie feature before bug", text: "feature has a bug", category: domain.CategoryFeatureRequest, confidence: 0.2, matches: "Found 1 matching"},
		{name: "compliment", text: "Thank you, great and amazing support!", category: domain.CategoryCompliment, confidence: 0.6, matches: "Found 3 matching"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ClassifyFallback(tt.text)
			assert.Equal(t, tt.category, res.Category)
			assert.InDelta(t, tt.confidence, res.Confidence, 0.0001)
			assert.Contains(t, res.Reasoning, "Keyword-based classification (fallback method)")
			assert.Contains(t, res.Reasoning, tt.matches)
		})
	}
}

func TestClassifyFallback_ConfidenceCap(t *testing.T) {
	var all []string
	for _, ck := range categoryKeywords {
		all = append(all, ck.keywords...)
	}
	texts := []string{
		strings.Join(all, " "),
		"bug error broken crash issue problem not working fails glitch",
		"refund return money back cancel charge billing payment",
	}
	for _, text := range texts {
		res := ClassifyFallback(text)
		assert.LessOrEqual(t, res.Confidence, 0.8, text)
		assert.GreaterOrEqual(t, res.Confidence, 0.0, text)
	}
}

func TestClassifyFallback_Deterministic(t *testing.T) {
	text := "The refund request was lost, support was rude"
	first := ClassifyFallback(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyFallback(text))
	}
}
