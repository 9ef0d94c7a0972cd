package domain

import "time"

// SentimentResult is the output of the local keyword sentiment scorer
type SentimentResult struct {
	Score         float64        `json:"score"`
	Label         SentimentLabel `json:"label"`
	Confidence    float64        `json:"confidence"`
	Topics        []string       `json:"topics"`
	PositiveWords int            `json:"positiveWords"`
	NegativeWords int            `json:"negativeWords"`
	Intensity     float64        `json:"intensity"` // VADER compound score, -1..1
}

// CategoryResult is a category decision with confidence and a short explanation.
// Both the AI categorizer and the keyword fallback produce it.
type CategoryResult struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// Source tells where a Classification came from
type Source string

// classification sources
const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// FallbackReason explains why the keyword fallback was used instead of the AI categorizer
type FallbackReason string

// fallback reasons
const (
	ReasonNone            FallbackReason = ""
	ReasonNotConfigured   FallbackReason = "not_configured"
	ReasonRateLimited     FallbackReason = "rate_limited"
	ReasonRequestFailed   FallbackReason = "request_failed"
	ReasonInvalidResponse FallbackReason = "invalid_response"
	ReasonEmptyText       FallbackReason = "empty_text"
	ReasonKeywordMode     FallbackReason = "keyword_mode"
)

// Classification is a category result tagged with its provenance
type Classification struct {
	Source         Source         `json:"source"`
	Result         CategoryResult `json:"result"`
	FallbackReason FallbackReason `json:"fallbackReason,omitempty"`
}

// IsAI reports whether the result came from the external categorizer
func (c Classification) IsAI() bool {
	return c.Source == SourceAI
}

// HistoryEntry is one immutable classification event of a feedback item
type HistoryEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Category   Category  `json:"category"`
	Confidence float64   `json:"confidence"`
	Method     Method    `json:"method"`
	Reasoning  string    `json:"reasoning"`
}

// SentimentMeta describes how sentiment was computed
type SentimentMeta struct {
	Method        Method  `json:"method"`
	PositiveWords int     `json:"positiveWords"`
	NegativeWords int     `json:"negativeWords"`
	Confidence    float64 `json:"confidence"`
	Intensity     float64 `json:"intensity"`
}

// CategoryMeta describes how the category was computed
type CategoryMeta struct {
	Method         Method         `json:"method"`
	Model          string         `json:"model,omitempty"`
	Reasoning      string         `json:"reasoning"`
	Confidence     float64        `json:"confidence"`
	FallbackReason FallbackReason `json:"fallbackReason,omitempty"`
}

// ClassificationMeta is stored alongside the feedback for observability
type ClassificationMeta struct {
	SentimentAnalysis SentimentMeta `json:"sentimentAnalysis"`
	AIClassification  CategoryMeta  `json:"aiClassification"`
	Timestamp         time.Time     `json:"timestamp"`
	Error             string        `json:"error,omitempty"`
}

// AnalysisRecord is the merged sentiment and category analysis of a single text.
// ClassificationHistory is set only by re-analysis.
type AnalysisRecord struct {
	SentimentScore        float64            `json:"sentimentScore"`
	SentimentLabel        SentimentLabel     `json:"sentimentLabel"`
	SentimentConfidence   float64            `json:"sentimentConfidence"`
	Topics                []string           `json:"topics"`
	AICategory            Category           `json:"aiCategory"`
	AICategoryConfidence  float64            `json:"aiCategoryConfidence"`
	AIReasoning           string             `json:"aiReasoning"`
	AnalysisTimestamp     time.Time          `json:"analysisTimestamp"`
	AnalysisVersion       string             `json:"analysisVersion"`
	ClassificationMeta    ClassificationMeta `json:"classificationMeta"`
	HistoryEntry          HistoryEntry       `json:"historyEntry"`
	ClassificationHistory []HistoryEntry     `json:"classificationHistory,omitempty"`
}

// BatchProgress is reported after each processed batch
type BatchProgress struct {
	BatchesCompleted int `json:"batchesCompleted"`
	TotalBatches     int `json:"totalBatches"`
	Processed        int `json:"processed"`
	Total            int `json:"total"`
	Percentage       int `json:"percentage"`
}
