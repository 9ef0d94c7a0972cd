package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
		assert.NotEmpty(t, c.Description(), c)
	}
	assert.Len(t, Categories, 8)
	assert.False(t, Category("spam").Valid())
	assert.False(t, Category("").Valid())
}

func TestFeedback_ApplyAnalysis(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e1 := HistoryEntry{Timestamp: ts, Category: CategoryBugReport, Confidence: 0.9, Method: MethodAI, Reasoning: "crash"}

	t.Run("append new entry", func(t *testing.T) {
		f := Feedback{ClassificationHistory: []HistoryEntry{e1}, ManualOverride: true}
		rec := AnalysisRecord{
			SentimentScore:       0.2,
			SentimentLabel:       SentimentNegative,
			Topics:               []string{"product"},
			AICategory:           CategoryProductQuality,
			AICategoryConfidence: 0.7,
			HistoryEntry:         HistoryEntry{Timestamp: ts.Add(time.Hour), Category: CategoryProductQuality, Method: MethodAI},
		}
		f.ApplyAnalysis(rec)
		assert.Equal(t, CategoryProductQuality, f.Category)
		require.NotNil(t, f.AICategoryConfidence)
		assert.InDelta(t, 0.7, *f.AICategoryConfidence, 0.0001)
		require.Len(t, f.ClassificationHistory, 2)
		assert.Equal(t, e1, f.ClassificationHistory[0])
		assert.False(t, f.ManualOverride)
	})

	t.Run("take history from record", func(t *testing.T) {
		f := Feedback{ClassificationHistory: []HistoryEntry{e1}}
		e2 := HistoryEntry{Timestamp: ts.Add(time.Hour), Category: CategoryCompliment, Method: MethodFallback}
		f.ApplyAnalysis(AnalysisRecord{AICategory: CategoryCompliment, HistoryEntry: e2, ClassificationHistory: []HistoryEntry{e1, e2}})
		assert.Equal(t, []HistoryEntry{e1, e2}, f.ClassificationHistory)
	})
}
