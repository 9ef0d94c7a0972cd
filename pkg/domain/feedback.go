package domain

import "time"

// Feedback is a stored customer feedback item
type Feedback struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"userId"`
	Content               string              `json:"content"`
	Source                string              `json:"source"`
	Category              Category            `json:"category"`
	SentimentScore        float64             `json:"sentimentScore"`
	SentimentLabel        SentimentLabel      `json:"sentimentLabel"`
	Topics                []string            `json:"topics"`
	FeedbackDate          time.Time           `json:"feedbackDate"`
	AICategoryConfidence  *float64            `json:"aiCategoryConfidence"`
	AIClassificationMeta  *ClassificationMeta `json:"aiClassificationMeta"`
	ClassificationHistory []HistoryEntry      `json:"classificationHistory"`
	ManualOverride        bool                `json:"manualOverride"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// ApplyAnalysis copies analysis results into the feedback.
// History is taken from the record when set, otherwise the new entry is appended.
func (f *Feedback) ApplyAnalysis(rec AnalysisRecord) {
	f.Category = rec.AICategory
	f.SentimentScore = rec.SentimentScore
	f.SentimentLabel = rec.SentimentLabel
	f.Topics = rec.Topics
	confidence := rec.AICategoryConfidence
	f.AICategoryConfidence = &confidence
	meta := rec.ClassificationMeta
	f.AIClassificationMeta = &meta
	if rec.ClassificationHistory != nil {
		f.ClassificationHistory = rec.ClassificationHistory
	} else {
		f.ClassificationHistory = append(append([]HistoryEntry{}, f.ClassificationHistory...), rec.HistoryEntry)
	}
	f.ManualOverride = false
}

// FeedbackFilter selects feedback of a single user
type FeedbackFilter struct {
	UserID     string
	Categories []Category
	Sources    []string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
}

// FeedbackUpdate is a user edit of a stored feedback, nil fields are left unchanged
type FeedbackUpdate struct {
	Content        *string         `json:"content"`
	Source         *string         `json:"source"`
	Category       *Category       `json:"category"`
	SentimentScore *float64        `json:"sentimentScore"`
	SentimentLabel *SentimentLabel `json:"sentimentLabel"`
	Topics         []string        `json:"topics"`
	FeedbackDate   *time.Time      `json:"feedbackDate"`
}

// User is an authenticated caller
type User struct {
	ID    string
	Email string
	Name  string
}

// Profile is the stored user profile owning feedback
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
