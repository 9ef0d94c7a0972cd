package llm

import (
	"fmt"
	"math"
	"strings"

	"github.com/umputun/feedsense/pkg/domain"
)

const (
	fallbackConfidencePerMatch = 0.2
	fallbackMaxConfidence      = 0.8
)

// categoryKeywords in enumeration order, general_inquiry has none and is the default
var categoryKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryFeatureRequest, []string{"feature", "add", "request", "suggestion", "improve", "enhancement", "would like", "need"}},
	{domain.CategoryBugReport, []string{"bug", "error", "broken", "crash", "issue", "problem", "not working", "fails", "glitch"}},
	{domain.CategoryShippingComplaint, []string{"delivery", "shipping", "arrived", "package", "late", "delayed", "damaged", "lost"}},
	{domain.CategoryProductQuality, []string{"quality", "material", "build", "durability", "defective", "cheap", "flimsy"}},
	{domain.CategoryCustomerService, []string{"service", "support", "staff", "representative", "help", "rude", "unhelpful", "friendly"}},
	{domain.CategoryGeneralInquiry, nil},
	{domain.CategoryRefundRequest, []string{"refund", "return", "money back", "cancel", "charge", "billing", "payment"}},
	{domain.CategoryCompliment, []string{"great", "excellent", "amazing", "love", "perfect", "awesome", "fantastic", "thank you"}},
}

// ClassifyFallback guesses the category by counting keyword substrings in the lowercased text.
// Confidence never exceeds 0.8.
func ClassifyFallback(text string) domain.CategoryResult {
	lower := strings.ToLower(text)

	best, bestCount := domain.CategoryGeneralInquiry, 0
	for _, ck := range categoryKeywords {
		count := 0
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = ck.category, count
		}
	}

	return domain.CategoryResult{
		Category:   best,
		Confidence: math.Min(float64(bestCount)*fallbackConfidencePerMatch, fallbackMaxConfidence),
		Reasoning:  fmt.Sprintf("Keyword-based classification (fallback method). Found %d matching keywords.", bestCount),
	}
}

// fallback wraps the keyword result as a tagged classification
func fallback(text string, reason domain.FallbackReason) domain.Classification {
	return domain.Classification{Source: domain.SourceFallback, Result: ClassifyFallback(text), FallbackReason: reason}
}
