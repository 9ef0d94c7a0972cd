// Package analysis merges local sentiment scoring with feedback categorization into a single record.
// Analyzer never fails: unexpected errors and panics degrade the record to a safe default.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedsense/pkg/domain"
	"github.com/umputun/feedsense/pkg/llm"
	"github.com/umputun/feedsense/pkg/sentiment"
)

//go:generate moq -out mocks/categorizer.go -pkg mocks -skip-ensure -fmt goimports . Categorizer

// Version of the analysis record format
const Version = "2.1.0"

// degraded record values
const (
	degradedConfidence = 0.3
	degradedReasoning  = "AI service unavailable"
)

// Mode selects how the category is computed
type Mode string

// analysis modes
const (
	ModeAI      Mode = "ai"      // external categorizer with keyword fallback
	ModeKeyword Mode = "keyword" // keyword classifier only, no external calls
)

// ErrUnknownMode is returned by ParseMode for anything but ai, keyword or empty
var ErrUnknownMode = errors.New("unknown analysis mode")

// ParseMode validates a requested mode, empty means ModeAI
func ParseMode(m Mode) (Mode, error) {
	switch m {
	case "":
		return ModeAI, nil
	case ModeAI, ModeKeyword:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMode, m)
	}
}

// Categorizer classifies a single text, designed failures are returned as fallback classifications
type Categorizer interface {
	Classify(ctx context.Context, text string) (domain.Classification, error)
	Model() string
}

// Analyzer runs sentiment scoring and categorization concurrently and merges the results
type Analyzer struct {
	categorizer Categorizer
	scorer      *sentiment.Scorer
	now         func() time.Time
}

// NewAnalyzer makes an analyzer. Nil scorer uses sentiment.NewScorer.
func NewAnalyzer(categorizer Categorizer, scorer *sentiment.Scorer) *Analyzer {
	if scorer == nil {
		scorer = sentiment.NewScorer()
	}
	return &Analyzer{categorizer: categorizer, scorer: scorer, now: time.Now}
}

// AnalyzeAndCategorize analyzes text using the external categorizer
func (a *Analyzer) AnalyzeAndCategorize(ctx context.Context, text string) domain.AnalysisRecord {
	return a.AnalyzeWithMode(ctx, text, ModeAI)
}

// AnalyzeWithMode analyzes text with the given categorization mode
func (a *Analyzer) AnalyzeWithMode(ctx context.Context, text string, mode Mode) domain.AnalysisRecord {
	var sent domain.SentimentResult
	var cls domain.Classification

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverPanic("sentiment", &err)
		sent = a.scorer.Score(text)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverPanic("categorization", &err)
		cls, err = a.classify(gctx, text, mode)
		return err
	})

	if err := g.Wait(); err != nil {
		lgr.Printf("[WARN] analysis failed, using degraded record: %v", err)
		return a.degraded(text, err)
	}
	return a.record(sent, cls, mode)
}

// Reanalyze analyzes text again and returns the record with existing history plus the new entry.
// The caller's slice is not modified.
func (a *Analyzer) Reanalyze(ctx context.Context, text string, history []domain.HistoryEntry) domain.AnalysisRecord {
	rec := a.AnalyzeAndCategorize(ctx, text)
	updated := make([]domain.HistoryEntry, 0, len(history)+1)
	updated = append(updated, history...)
	rec.ClassificationHistory = append(updated, rec.HistoryEntry)
	return rec
}

// Combine builds the record for a text classified elsewhere, e.g. by the batch classifier.
// Sentiment is scored locally.
func (a *Analyzer) Combine(text string, cls domain.Classification) domain.AnalysisRecord {
	return a.record(a.safeScore(text), cls, ModeAI)
}

func (a *Analyzer) classify(ctx context.Context, text string, mode Mode) (domain.Classification, error) {
	if mode == ModeKeyword {
		return domain.Classification{Source: domain.SourceFallback, Result: llm.ClassifyFallback(text),
			FallbackReason: domain.ReasonKeywordMode}, nil
	}
	if a.categorizer == nil {
		return domain.Classification{}, fmt.Errorf("no categorizer")
	}
	return a.categorizer.Classify(ctx, text)
}

func (a *Analyzer) record(sent domain.SentimentResult, cls domain.Classification, mode Mode) domain.AnalysisRecord {
	ts := a.now().UTC()

	method := domain.MethodFallback
	switch {
	case cls.IsAI():
		method = domain.MethodAI
	case mode == ModeKeyword:
		method = domain.MethodKeyword
	}

	catMeta := domain.CategoryMeta{
		Method:         method,
		Reasoning:      cls.Result.Reasoning,
		Confidence:     cls.Result.Confidence,
		FallbackReason: cls.FallbackReason,
	}
	if cls.IsAI() && a.categorizer != nil {
		catMeta.Model = a.categorizer.Model()
	}

	return domain.AnalysisRecord{
		SentimentScore:       sent.Score,
		SentimentLabel:       sent.Label,
		SentimentConfidence:  sent.Confidence,
		Topics:               sent.Topics,
		AICategory:           cls.Result.Category,
		AICategoryConfidence: cls.Result.Confidence,
		AIReasoning:          cls.Result.Reasoning,
		AnalysisTimestamp:    ts,
		AnalysisVersion:      Version,
		ClassificationMeta: domain.ClassificationMeta{
			SentimentAnalysis: sentimentMeta(sent),
			AIClassification:  catMeta,
			Timestamp:         ts,
		},
		HistoryEntry: domain.HistoryEntry{
			Timestamp:  ts,
			Category:   cls.Result.Category,
			Confidence: cls.Result.Confidence,
			Method:     method,
			Reasoning:  cls.Result.Reasoning,
		},
	}
}

// degraded makes the safe record used when analysis failed unexpectedly, sentiment is still computed locally
func (a *Analyzer) degraded(text string, cause error) domain.AnalysisRecord {
	ts := a.now().UTC()
	sent := a.safeScore(text)

	return domain.AnalysisRecord{
		SentimentScore:       sent.Score,
		SentimentLabel:       sent.Label,
		SentimentConfidence:  sent.Confidence,
		Topics:               sent.Topics,
		AICategory:           domain.CategoryGeneralInquiry,
		AICategoryConfidence: degradedConfidence,
		AIReasoning:          degradedReasoning,
		AnalysisTimestamp:    ts,
		AnalysisVersion:      Version,
		ClassificationMeta: domain.ClassificationMeta{
			SentimentAnalysis: sentimentMeta(sent),
			AIClassification: domain.CategoryMeta{
				Method:     domain.MethodFallback,
				Reasoning:  degradedReasoning,
				Confidence: degradedConfidence,
			},
			Timestamp: ts,
			Error:     cause.Error(),
		},
		HistoryEntry: domain.HistoryEntry{
			Timestamp:  ts,
			Category:   domain.CategoryGeneralInquiry,
			Confidence: degradedConfidence,
			Method:     domain.MethodFallback,
			Reasoning:  degradedReasoning,
		},
	}
}

// safeScore scores sentiment, returning the neutral default if the scorer panics
func (a *Analyzer) safeScore(text string) (res domain.SentimentResult) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] sentiment scorer panic: %v", r)
			res = domain.SentimentResult{Score: 0.5, Label: domain.SentimentNeutral, Confidence: 0.1, Topics: []string{"general"}}
		}
	}()
	return a.scorer.Score(text)
}

func sentimentMeta(sent domain.SentimentResult) domain.SentimentMeta {
	return domain.SentimentMeta{
		Method:        domain.MethodKeyword,
		PositiveWords: sent.PositiveWords,
		NegativeWords: sent.NegativeWords,
		Confidence:    sent.Confidence,
		Intensity:     sent.Intensity,
	}
}

// recoverPanic turns a panic into an error
func recoverPanic(stage string, err *error) {
	if r := recover(); r != nil {
		lgr.Printf("[ERROR] %s panic: %v\n%s", stage, r, debug.Stack())
		*err = fmt.Errorf("%s panic: %v", stage, r)
	}
}
