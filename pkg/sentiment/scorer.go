// Package sentiment implements local keyword-based sentiment scoring and topic extraction.
// It does no I/O and always succeeds.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/umputun/feedsense/pkg/domain"
)

const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
	neutralScore      = 0.5
	neutralConfidence = 0.1
	confidencePerWord = 0.2
	generalTopic      = "general"
)

var positiveWords = wordSet(
	"amazing", "awesome", "excellent", "fantastic", "great", "good", "love", "perfect",
	"wonderful", "best", "outstanding", "brilliant", "satisfied", "happy", "pleased",
	"impressed", "recommend", "helpful", "fast", "quick", "easy", "smooth", "efficient",
)

var negativeWords = wordSet(
	"terrible", "awful", "bad", "worst", "hate", "horrible", "disgusting", "disappointing",
	"frustrated", "angry", "annoyed", "slow", "difficult", "hard", "confusing", "broken",
	"useless", "poor", "expensive", "overpriced", "delayed", "late", "rude", "unhelpful",
)

type topic struct {
	name     string
	keywords []string
}

// topics in reporting order
var topics = []topic{
	{name: "product", keywords: []string{"product", "item", "quality", "design", "feature"}},
	{name: "service", keywords: []string{"service", "support", "help", "staff", "team"}},
	{name: "delivery", keywords: []string{"delivery", "shipping", "arrived", "package", "fast", "slow"}},
	{name: "price", keywords: []string{"price", "cost", "expensive", "cheap", "value", "money"}},
	{name: "website", keywords: []string{"website", "app", "online", "interface", "login"}},
	{name: "payment", keywords: []string{"payment", "checkout", "card", "billing", "transaction"}},
}

// Scorer computes keyword sentiment and topics, with VADER intensity as a side signal
type Scorer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewScorer makes a sentiment scorer
func NewScorer() *Scorer {
	return &Scorer{vader: govader.NewSentimentIntensityAnalyzer()}
}

var defaultScorer = NewScorer()

// Score scores text with the default scorer
func Score(text string) domain.SentimentResult {
	return defaultScorer.Score(text)
}

// Score returns sentiment of the text. Empty text is scored as neutral.
func (s *Scorer) Score(text string) domain.SentimentResult {
	tokens := strings.Fields(strings.ToLower(text))

	var pos, neg int
	for _, t := range tokens {
		if _, ok := positiveWords[t]; ok {
			pos++
		}
		if _, ok := negativeWords[t]; ok {
			neg++
		}
	}

	res := domain.SentimentResult{
		Score:         neutralScore,
		Label:         domain.SentimentNeutral,
		Confidence:    neutralConfidence,
		Topics:        extractTopics(tokens),
		PositiveWords: pos,
		NegativeWords: neg,
	}

	if total := pos + neg; total > 0 {
		res.Score = float64(pos) / float64(total)
		res.Confidence = math.Min(1, float64(total)*confidencePerWord)
		res.Label = labelFor(res.Score)
	}

	if s.vader != nil && strings.TrimSpace(text) != "" {
		res.Intensity = s.vader.PolarityScores(text).Compound
	}
	return res
}

func labelFor(score float64) domain.SentimentLabel {
	switch {
	case score >= positiveThreshold:
		return domain.SentimentPositive
	case score <= negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// extractTopics matches topic keywords against exact tokens
func extractTopics(tokens []string) []string {
	seen := wordSet(tokens...)
	var res []string
	for _, tp := range topics {
		for _, kw := range tp.keywords {
			if _, ok := seen[kw]; ok {
				res = append(res, tp.name)
				break
			}
		}
	}
	if len(res) == 0 {
		return []string{generalTopic}
	}
	return res
}

func wordSet(words ...string) map[string]struct{} {
	res := make(map[string]struct{}, len(words))
	for _, w := range words {
		res[w] = struct{}{}
	}
	return res
}
