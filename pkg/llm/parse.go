package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/umputun/feedsense/pkg/domain"
)

const defaultReasoning = "AI-based categorization"

// ParseError is returned when the categorizer response can't be used
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return "invalid categorizer response: " + e.Reason
}

// rawResult is the response item as returned by the model, before validation
type rawResult struct {
	Index      int    `json:"index"`
	Category   string `json:"category"`
	Confidence any    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// validate checks category and confidence, rounds confidence to 2 decimals
func (r rawResult) validate() (domain.CategoryResult, error) {
	category := domain.Category(strings.TrimSpace(r.Category))
	if !category.Valid() {
		return domain.CategoryResult{}, &ParseError{Reason: fmt.Sprintf("invalid category %q", r.Category)}
	}
	confidence, ok := r.Confidence.(float64)
	if !ok {
		return domain.CategoryResult{}, &ParseError{Reason: fmt.Sprintf("confidence is not a number: %v", r.Confidence)}
	}
	if confidence < 0 || confidence > 1 || math.IsNaN(confidence) {
		return domain.CategoryResult{}, &ParseError{Reason: fmt.Sprintf("confidence out of range: %v", confidence)}
	}
	reasoning := strings.TrimSpace(r.Reasoning)
	if reasoning == "" {
		reasoning = defaultReasoning
	}
	return domain.CategoryResult{
		Category:   category,
		Confidence: math.Round(confidence*100) / 100,
		Reasoning:  reasoning,
	}, nil
}

// parseSingle extracts and validates the JSON object from a single-item response
func parseSingle(content string) (domain.CategoryResult, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return domain.CategoryResult{}, &ParseError{Reason: "no json object found", Raw: content}
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return domain.CategoryResult{}, &ParseError{Reason: fmt.Sprintf("failed to parse json object: %v", err), Raw: content}
	}

	res, err := raw.validate()
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Raw = content
		}
		return domain.CategoryResult{}, err
	}
	return res, nil
}

// batchEntry is a parsed batch slot, err is set when the item itself was invalid
type batchEntry struct {
	result domain.CategoryResult
	err    error
}

// parseBatch extracts the JSON array from a batch response. The array must have exactly n items.
// Entries are placed by their 1-based index when the indexes are exactly a permutation of 1..n,
// and by position when no entry has an index. Any other index set is rejected as a whole.
// Invalid entries don't fail the batch, they are reported per slot.
func parseBatch(content string, n int) ([]batchEntry, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, &ParseError{Reason: "no json array found", Raw: content}
	}

	var raws []rawResult
	if err := json.Unmarshal([]byte(content[start:end+1]), &raws); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("failed to parse json array: %v", err), Raw: content}
	}
	if len(raws) != n {
		return nil, &ParseError{Reason: fmt.Sprintf("expected %d results, got %d", n, len(raws)), Raw: content}
	}

	entries := make([]batchEntry, n)
	if !hasIndexes(raws) {
		for i, raw := range raws {
			entries[i] = toEntry(raw)
		}
		return entries, nil
	}

	filled := make([]bool, n)
	for _, raw := range raws {
		slot := raw.Index - 1
		if slot < 0 || slot >= n || filled[slot] {
			return nil, &ParseError{Reason: fmt.Sprintf("result indexes are not a permutation of 1..%d", n), Raw: content}
		}
		entries[slot] = toEntry(raw)
		filled[slot] = true
	}
	return entries, nil
}

func hasIndexes(raws []rawResult) bool {
	for _, raw := range raws {
		if raw.Index != 0 {
			return true
		}
	}
	return false
}

func toEntry(raw rawResult) batchEntry {
	res, err := raw.validate()
	return batchEntry{result: res, err: err}
}
