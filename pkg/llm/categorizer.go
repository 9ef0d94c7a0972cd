// Package llm categorizes customer feedback with an external LLM.
// Every failure of the external service degrades to the keyword fallback classifier,
// so single-item classification never fails except on blank input.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsense/pkg/domain"
)

// chunkAttempts is the number of requests made for one chunk when the answer can't be parsed
const chunkAttempts = 2

// ErrEmptyText is returned for blank feedback text
var ErrEmptyText = errors.New("empty feedback text")

// errors returned by ClassifyChunk for batch-level failures
var (
	ErrNotConfigured = errors.New("categorizer not configured")
	ErrRateLimited   = errors.New("rate limit exceeded")
)

// Categorizer classifies feedback with the external completer and falls back to keywords
type Categorizer struct {
	completer Completer
	limiter   *RateLimiter
	timeout   time.Duration
	model     string
}

// CategorizerParams holds categorizer dependencies. Nil Completer means fallback-only mode.
type CategorizerParams struct {
	Completer Completer
	Limiter   *RateLimiter
	Timeout   time.Duration
	Model     string
}

// NewCategorizer makes a categorizer
func NewCategorizer(p CategorizerParams) *Categorizer {
	if p.Limiter == nil {
		p.Limiter = NewRateLimiter(60)
	}
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
	return &Categorizer{completer: p.Completer, limiter: p.Limiter, timeout: p.Timeout, model: p.Model}
}

// Available reports whether an external completer is configured
func (c *Categorizer) Available() bool {
	return c.completer != nil
}

// Model returns configured model name
func (c *Categorizer) Model() string {
	return c.model
}

// Usage returns rate limiter stats
func (c *Categorizer) Usage() Usage {
	return c.limiter.Usage()
}

// Classify categorizes a single feedback text. The only error is ErrEmptyText,
// any problem with the external service results in a fallback classification.
func (c *Categorizer) Classify(ctx context.Context, text string) (domain.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Classification{}, ErrEmptyText
	}

	if c.completer == nil {
		return fallback(text, domain.ReasonNotConfigured), nil
	}
	if !c.limiter.Take() {
		lgr.Printf("[WARN] rate limit exceeded, using fallback categorization")
		return fallback(text, domain.ReasonRateLimited), nil
	}

	resp, err := c.complete(ctx, buildPrompt(text))
	if err != nil {
		lgr.Printf("[WARN] categorization request failed, using fallback: %v", err)
		return fallback(text, domain.ReasonRequestFailed), nil
	}

	res, err := parseSingle(resp)
	if err != nil {
		lgr.Printf("[WARN] categorization response rejected, using fallback: %v", err)
		return fallback(text, domain.ReasonInvalidResponse), nil
	}
	return domain.Classification{Source: domain.SourceAI, Result: res}, nil
}

// ClassifyChunk categorizes several texts with a single request. Texts must be non-blank.
// Items with invalid categories or confidence get a fallback result, while a failure of the whole
// request (not configured, rate limited, network, unparseable or wrong-length answer) is returned as error.
// An unparseable answer is requested once more before giving up.
func (c *Categorizer) ClassifyChunk(ctx context.Context, texts []string) ([]domain.Classification, error) {
	if len(texts) == 0 {
		return []domain.Classification{}, nil
	}
	if c.completer == nil {
		return nil, ErrNotConfigured
	}
	if !c.limiter.Take() {
		return nil, ErrRateLimited
	}

	prompt := buildBatchPrompt(texts)
	var entries []batchEntry
	for attempt := 1; ; attempt++ {
		resp, err := c.complete(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("batch request: %w", err)
		}

		if entries, err = parseBatch(resp, len(texts)); err == nil {
			break
		}
		// an unparseable answer is retried while attempts and rate limit allow
		if attempt >= chunkAttempts || !c.limiter.Take() {
			return nil, fmt.Errorf("batch response after %d attempt(s): %w", attempt, err)
		}
		lgr.Printf("[DEBUG] batch response rejected, retrying: %v", err)
	}

	res := make([]domain.Classification, len(texts))
	for i, e := range entries {
		if e.err != nil {
			lgr.Printf("[DEBUG] batch item %d rejected, using fallback: %v", i+1, e.err)
			res[i] = fallback(texts[i], domain.ReasonInvalidResponse)
			continue
		}
		res[i] = domain.Classification{Source: domain.SourceAI, Result: e.result}
	}
	return res, nil
}

// complete calls the completer with per-call timeout
func (c *Categorizer) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.completer.Complete(ctx, prompt)
}
