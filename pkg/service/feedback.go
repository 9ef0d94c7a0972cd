// Package service orchestrates feedback submission, import and re-analysis on top of
// the analyzer, the batch classifier and the storage.
package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedsense/pkg/analysis"
	"github.com/umputun/feedsense/pkg/domain"
	"github.com/umputun/feedsense/pkg/llm"
)

//go:generate moq -out mocks/feedback_store.go -pkg mocks -skip-ensure -fmt goimports . FeedbackStore
//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/batch_classifier.go -pkg mocks -skip-ensure -fmt goimports . BatchClassifier

// ErrNothingToImport is returned when every imported row is blank
var ErrNothingToImport = fmt.Errorf("nothing to import: %w", llm.ErrNoValidTexts)

// default sources of feedback
const (
	SourceManual = "manual"
	SourceImport = "csv_import"
)

// FeedbackStore persists feedback, all reads and writes are scoped to the owner
type FeedbackStore interface {
	Create(ctx context.Context, f *domain.Feedback) error
	CreateMany(ctx context.Context, items []*domain.Feedback) error
	List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	Update(ctx context.Context, userID, id string, upd domain.FeedbackUpdate) (*domain.Feedback, error)
	UpdateAnalysis(ctx context.Context, f *domain.Feedback) error
	Delete(ctx context.Context, userID, id string) error
}

// ProfileStore keeps user profiles
type ProfileStore interface {
	EnsureProfile(ctx context.Context, user domain.User) (*domain.Profile, error)
}

// Analyzer produces analysis records for feedback texts
type Analyzer interface {
	AnalyzeWithMode(ctx context.Context, text string, mode analysis.Mode) domain.AnalysisRecord
	Reanalyze(ctx context.Context, text string, history []domain.HistoryEntry) domain.AnalysisRecord
	Combine(text string, cls domain.Classification) domain.AnalysisRecord
}

// BatchClassifier categorizes many texts at once
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, texts []string, maxBatchSize int, onProgress llm.ProgressFunc) ([]domain.Classification, error)
}

// FeedbackService handles feedback of authenticated users
type FeedbackService struct {
	feedback     FeedbackStore
	profiles     ProfileStore
	analyzer     Analyzer
	batch        BatchClassifier
	batchSize    int
	maxBatchSize int
	delay        time.Duration
	policy       *bluemonday.Policy
	sleep        func(ctx context.Context, d time.Duration)
}

// Params holds FeedbackService dependencies and batch settings
type Params struct {
	Feedback     FeedbackStore
	Profiles     ProfileStore
	Analyzer     Analyzer
	Batch        BatchClassifier
	BatchSize    int           // default batch size
	MaxBatchSize int           // upper bound for requested batch size
	Delay        time.Duration // pause between re-analysis batches
}

// Input is a single feedback submitted or imported by a user
type Input struct {
	Content      string        `json:"content"`
	Source       string        `json:"source"`
	FeedbackDate *time.Time    `json:"feedbackDate"`
	Mode         analysis.Mode `json:"mode"` // used by Submit, imports are always batch categorized
}

// ImportResult reports stored rows of an import
type ImportResult struct {
	Count      int               `json:"count"`
	AIAnalyzed int               `json:"aiAnalyzed"`
	Skipped    int               `json:"skipped"`
	Feedbacks  []domain.Feedback `json:"feedbacks"`
}

// ReanalyzeError is a failure of a single feedback re-analysis
type ReanalyzeError struct {
	FeedbackID string `json:"feedbackId"`
	Error      string `json:"error"`
}

// ReanalyzeReport summarizes a re-analysis run
type ReanalyzeReport struct {
	Total     int              `json:"total"`
	Processed int              `json:"processed"`
	Failed    int              `json:"failed"`
	Errors    []ReanalyzeError `json:"errors"`
}

// NewFeedbackService makes a feedback service
func NewFeedbackService(p Params) *FeedbackService {
	if p.BatchSize <= 0 {
		p.BatchSize = 10
	}
	if p.MaxBatchSize < p.BatchSize {
		p.MaxBatchSize = p.BatchSize
	}
	return &FeedbackService{
		feedback:     p.Feedback,
		profiles:     p.Profiles,
		analyzer:     p.Analyzer,
		batch:        p.Batch,
		batchSize:    p.BatchSize,
		maxBatchSize: p.MaxBatchSize,
		delay:        p.Delay,
		policy:       bluemonday.StrictPolicy(),
		sleep:        sleepCtx,
	}
}

// EnsureProfile creates the profile of the user on first use
func (s *FeedbackService) EnsureProfile(ctx context.Context, user domain.User) (*domain.Profile, error) {
	p, err := s.profiles.EnsureProfile(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	return p, nil
}

// Analyze returns the analysis record of a text without storing it
func (s *FeedbackService) Analyze(ctx context.Context, text string, mode analysis.Mode) (domain.AnalysisRecord, error) {
	mode, err := analysis.ParseMode(mode)
	if err != nil {
		return domain.AnalysisRecord{}, err
	}
	text = s.sanitize(text)
	if text == "" {
		return domain.AnalysisRecord{}, llm.ErrEmptyText
	}
	return s.analyzer.AnalyzeWithMode(ctx, text, mode), nil
}

// ClassifyTexts categorizes texts in batches without storing them, results are in input order
func (s *FeedbackService) ClassifyTexts(ctx context.Context, texts []string, batchSize int) ([]domain.Classification, error) {
	clean := make([]string, len(texts))
	for i, t := range texts {
		clean[i] = s.sanitize(t)
	}
	res, err := s.batch.ClassifyBatch(ctx, clean, s.clampBatchSize(batchSize), nil)
	if err != nil {
		return nil, fmt.Errorf("classify %d texts: %w", len(texts), err)
	}
	return res, nil
}

// Submit analyzes and stores a single feedback of the user
func (s *FeedbackService) Submit(ctx context.Context, user domain.User, in Input) (*domain.Feedback, error) {
	mode, err := analysis.ParseMode(in.Mode)
	if err != nil {
		return nil, err
	}
	content := s.sanitize(in.Content)
	if content == "" {
		return nil, llm.ErrEmptyText
	}
	if _, err := s.EnsureProfile(ctx, user); err != nil {
		return nil, err
	}

	rec := s.analyzer.AnalyzeWithMode(ctx, content, mode)

	f := newFeedback(user.ID, content, in, SourceManual)
	f.ApplyAnalysis(rec)
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	lgr.Printf("[DEBUG] feedback %s stored, category %s, sentiment %s", f.ID, f.Category, f.SentimentLabel)
	return f, nil
}

// Import analyzes and stores many feedback rows in one transaction. Blank rows are skipped,
// categories come from the batch classifier and sentiment is scored per row.
func (s *FeedbackService) Import(ctx context.Context, user domain.User, inputs []Input, batchSize int,
	onProgress llm.ProgressFunc) (ImportResult, error) {
	rows := make([]Input, 0, len(inputs))
	texts := make([]string, 0, len(inputs))
	for _, in := range inputs {
		content := s.sanitize(in.Content)
		if content == "" {
			continue
		}
		in.Content = content
		rows = append(rows, in)
		texts = append(texts, content)
	}
	if len(rows) == 0 {
		return ImportResult{}, ErrNothingToImport
	}

	if _, err := s.EnsureProfile(ctx, user); err != nil {
		return ImportResult{}, err
	}

	classes, err := s.batch.ClassifyBatch(ctx, texts, s.clampBatchSize(batchSize), onProgress)
	if err != nil {
		if errors.Is(err, llm.ErrNoValidTexts) {
			return ImportResult{}, ErrNothingToImport
		}
		return ImportResult{}, fmt.Errorf("classify import: %w", err)
	}

	res := ImportResult{Skipped: len(inputs) - len(rows)}
	items := make([]*domain.Feedback, len(rows))
	for i, in := range rows {
		f := newFeedback(user.ID, in.Content, in, SourceImport)
		f.ApplyAnalysis(s.analyzer.Combine(in.Content, classes[i]))
		items[i] = f
		if classes[i].IsAI() {
			res.AIAnalyzed++
		}
	}

	if err := s.feedback.CreateMany(ctx, items); err != nil {
		return ImportResult{}, fmt.Errorf("store import: %w", err)
	}

	res.Count = len(items)
	res.Feedbacks = make([]domain.Feedback, len(items))
	for i, f := range items {
		res.Feedbacks[i] = *f
	}
	lgr.Printf("[INFO] imported %d feedback for user %s, %d by AI, %d skipped", res.Count, user.ID, res.AIAnalyzed, res.Skipped)
	return res, nil
}

// Reanalyze runs analysis again for the user's feedback matching filter and appends to its history.
// Items are processed concurrently within a batch, batches run sequentially with a delay between them.
// A failed item is reported and never stops the run. The report is returned with ctx error on cancellation.
func (s *FeedbackService) Reanalyze(ctx context.Context, user domain.User, filter domain.FeedbackFilter,
	batchSize int) (ReanalyzeReport, error) {
	filter.UserID = user.ID
	items, err := s.feedback.List(ctx, filter)
	if err != nil {
		return ReanalyzeReport{}, fmt.Errorf("list feedback: %w", err)
	}

	report := ReanalyzeReport{Total: len(items), Errors: []ReanalyzeError{}}
	if len(items) == 0 {
		return report, nil
	}

	size := s.clampBatchSize(batchSize)
	lgr.Printf("[INFO] re-analyzing %d feedback of user %s, batch size %d", len(items), user.ID, size)

	var mu sync.Mutex
	for start := 0; start < len(items); start += size {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		end := min(start+size, len(items))

		var g errgroup.Group
		g.SetLimit(size)
		for i := start; i < end; i++ {
			f := items[i]
			g.Go(func() error {
				err := s.reanalyzeOne(ctx, &f)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					lgr.Printf("[WARN] failed to re-analyze feedback %s: %v", f.ID, err)
					report.Failed++
					report.Errors = append(report.Errors, ReanalyzeError{FeedbackID: f.ID, Error: err.Error()})
					return nil
				}
				report.Processed++
				return nil
			})
		}
		_ = g.Wait()

		if end < len(items) {
			s.sleep(ctx, s.delay)
		}
	}

	lgr.Printf("[INFO] re-analysis done, %d processed, %d failed", report.Processed, report.Failed)
	return report, nil
}

// List returns the user's feedback, newest first
func (s *FeedbackService) List(ctx context.Context, user domain.User, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	filter.UserID = user.ID
	res, err := s.feedback.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return res, nil
}

// Update applies a user edit to the user's feedback
func (s *FeedbackService) Update(ctx context.Context, user domain.User, id string, upd domain.FeedbackUpdate) (*domain.Feedback, error) {
	if upd.Content != nil {
		content := s.sanitize(*upd.Content)
		if content == "" {
			return nil, llm.ErrEmptyText
		}
		upd.Content = &content
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", *upd.Category)
	}
	return s.feedback.Update(ctx, user.ID, id, upd)
}

// Delete removes the user's feedback
func (s *FeedbackService) Delete(ctx context.Context, user domain.User, id string) error {
	return s.feedback.Delete(ctx, user.ID, id)
}

func (s *FeedbackService) reanalyzeOne(ctx context.Context, f *domain.Feedback) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("re-analysis panic: %v", r)
		}
	}()
	f.ApplyAnalysis(s.analyzer.Reanalyze(ctx, f.Content, f.ClassificationHistory))
	return s.feedback.UpdateAnalysis(ctx, f)
}

func (s *FeedbackService) clampBatchSize(requested int) int {
	if requested <= 0 {
		return s.batchSize
	}
	return min(requested, s.maxBatchSize)
}

// sanitize strips html markup and surrounding whitespace, entities escaped by the policy are restored
func (s *FeedbackService) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

func newFeedback(userID, content string, in Input, defaultSource string) *domain.Feedback {
	f := &domain.Feedback{UserID: userID, Content: content, Source: strings.TrimSpace(in.Source)}
	if f.Source == "" {
		f.Source = defaultSource
	}
	if in.FeedbackDate != nil {
		f.FeedbackDate = *in.FeedbackDate
	}
	return f
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
