package llm

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsense/pkg/domain"
)

// ErrNoValidTexts is returned when a batch has no non-blank texts
var ErrNoValidTexts = errors.New("no valid feedback texts to classify")

// ChunkClassifier classifies either a whole chunk or a single text
type ChunkClassifier interface {
	ClassifyChunk(ctx context.Context, texts []string) ([]domain.Classification, error)
	Classify(ctx context.Context, text string) (domain.Classification, error)
}

// ProgressFunc receives progress after every processed chunk
type ProgressFunc func(domain.BatchProgress)

// BatchClassifier splits many texts into size-bounded chunks and classifies them sequentially.
// A failed chunk is degraded to per-item classification, so only ErrNoValidTexts is ever returned.
type BatchClassifier struct {
	classifier ChunkClassifier
	delay      time.Duration
	charBudget int
	sleep      func(ctx context.Context, d time.Duration)
}

// BatchParams defines batch classifier settings
type BatchParams struct {
	Classifier ChunkClassifier
	Delay      time.Duration // pause between chunks
	CharBudget int           // target total characters per chunk, 0 disables shrinking
}

// NewBatchClassifier makes a batch classifier
func NewBatchClassifier(p BatchParams) *BatchClassifier {
	return &BatchClassifier{classifier: p.Classifier, delay: p.Delay, charBudget: p.CharBudget, sleep: sleepCtx}
}

// ClassifyBatch classifies texts and returns one result per input text, in input order.
// Blank texts are not sent out, they get a fallback result with ReasonEmptyText.
func (b *BatchClassifier) ClassifyBatch(ctx context.Context, texts []string, maxBatchSize int, onProgress ProgressFunc) ([]domain.Classification, error) {
	var valid []int // positions of non-blank texts
	for i, t := range texts {
		if strings.TrimSpace(t) != "" {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidTexts
	}

	validTexts := make([]string, len(valid))
	for i, pos := range valid {
		validTexts[i] = texts[pos]
	}

	results := make([]domain.Classification, len(texts))
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			results[i] = fallback(t, domain.ReasonEmptyText)
		}
	}

	size := OptimalBatchSize(validTexts, maxBatchSize, b.charBudget)
	totalBatches := (len(validTexts) + size - 1) / size
	lgr.Printf("[DEBUG] classifying %d texts in %d batches of up to %d", len(validTexts), totalBatches, size)

	for batch, start := 0, 0; start < len(validTexts); batch, start = batch+1, start+size {
		end := min(start+size, len(validTexts))
		chunk := validTexts[start:end]

		chunkRes := b.classifyChunk(ctx, chunk, batch+1)
		for i, r := range chunkRes {
			results[valid[start+i]] = r
		}

		if onProgress != nil {
			onProgress(domain.BatchProgress{
				BatchesCompleted: batch + 1,
				TotalBatches:     totalBatches,
				Processed:        end,
				Total:            len(validTexts),
				Percentage:       end * 100 / len(validTexts),
			})
		}

		if end < len(validTexts) && b.delay > 0 {
			b.sleep(ctx, b.delay)
		}
	}
	return results, nil
}

// classifyChunk tries the chunk request and degrades to per-item classification on failure
func (b *BatchClassifier) classifyChunk(ctx context.Context, chunk []string, batchNum int) []domain.Classification {
	res, err := b.classifier.ClassifyChunk(ctx, chunk)
	if err == nil && len(res) == len(chunk) {
		return res
	}
	if err == nil {
		lgr.Printf("[WARN] batch %d returned %d results for %d texts, processing individually", batchNum, len(res), len(chunk))
	} else {
		lgr.Printf("[WARN] batch %d failed, processing individually: %v", batchNum, err)
	}

	res = make([]domain.Classification, len(chunk))
	for i, text := range chunk {
		r, err := b.classifier.Classify(ctx, text)
		if err != nil {
			lgr.Printf("[WARN] failed to classify item %d of batch %d: %v", i+1, batchNum, err)
			r = fallback(text, domain.ReasonRequestFailed)
		}
		res[i] = r
	}
	return res
}

// OptimalBatchSize returns the chunk size for texts, bounded by maxBatchSize.
// When a full chunk of average-length texts exceeds charBudget, the size shrinks to
// charBudget/avgLen, so longer texts always mean smaller chunks. Never less than 1.
func OptimalBatchSize(texts []string, maxBatchSize, charBudget int) int {
	size := max(1, min(maxBatchSize, len(texts)))
	if charBudget <= 0 || len(texts) == 0 {
		return size
	}

	total := 0
	for _, t := range texts {
		total += utf8.RuneCountInString(t)
	}
	avg := max(1, total/len(texts))
	if avg*size > charBudget {
		size = max(1, charBudget/avg)
	}
	return size
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
