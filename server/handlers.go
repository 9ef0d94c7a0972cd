package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsense/pkg/analysis"
	"github.com/umputun/feedsense/pkg/domain"
	"github.com/umputun/feedsense/pkg/llm"
	"github.com/umputun/feedsense/pkg/repository"
	"github.com/umputun/feedsense/pkg/service"
)

// classifyRequest is either a single text analysis or a batch categorization
type classifyRequest struct {
	Text      string        `json:"text"`
	Texts     []string      `json:"texts"`
	Mode      analysis.Mode `json:"mode"`
	BatchSize int           `json:"batchSize"`
}

type bulkRequest struct {
	Feedbacks []service.Input `json:"feedbacks"`
	BatchSize int             `json:"batchSize"`
}

type reanalyzeRequest struct {
	Categories []domain.Category `json:"categories"`
	Sources    []string          `json:"sources"`
	DateFrom   string            `json:"dateFrom"`
	DateTo     string            `json:"dateTo"`
	BatchSize  int               `json:"batchSize"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// aiStatusHandler reports categorizer availability and rate limit usage
func (s *Server) aiStatusHandler(w http.ResponseWriter, r *http.Request) {
	usage := s.ai.Usage()
	mode := "fallback"
	if s.ai.Available() {
		mode = "ai"
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"available":            s.ai.Available(),
		"mode":                 mode,
		"model":                s.ai.Model(),
		"requestsInLastMinute": usage.RequestsInLastMinute,
		"remainingRequests":    usage.RemainingRequests,
		"limit":                usage.Limit,
	})
}

// profileHandler creates the caller's profile if missing
func (s *Server) profileHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	profile, err := s.feedback.EnsureProfile(r.Context(), user)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err, "Failed to create user profile")
		return
	}
	renderJSON(w, r, http.StatusOK, profile)
}

// classifyHandler analyzes a single text or categorizes a list of texts, nothing is stored
func (s *Server) classifyHandler(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if len(req.Texts) > 0 {
		if len(req.Texts) > s.maxBulkItems {
			renderError(w, r, http.StatusBadRequest, fmt.Errorf("%d texts", len(req.Texts)),
				fmt.Sprintf("Too many texts, max %d", s.maxBulkItems))
			return
		}
		results, err := s.feedback.ClassifyTexts(r.Context(), req.Texts, req.BatchSize)
		if err != nil {
			if errors.Is(err, llm.ErrNoValidTexts) {
				renderError(w, r, http.StatusBadRequest, err, "No valid feedback texts to classify")
				return
			}
			renderError(w, r, http.StatusInternalServerError, err, "Failed to classify texts")
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"results": results})
		return
	}

	rec, err := s.feedback.Analyze(r.Context(), req.Text, req.Mode)
	if err != nil {
		if errors.Is(err, analysis.ErrUnknownMode) {
			renderError(w, r, http.StatusBadRequest, err, "Invalid mode, expected ai or keyword")
			return
		}
		renderError(w, r, http.StatusBadRequest, err, "Text is required")
		return
	}
	renderJSON(w, r, http.StatusOK, rec)
}

// listFeedbackHandler returns the caller's feedback, newest first
func (s *Server) listFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	filter, err := filterFromQuery(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	items, err := s.feedback.List(r.Context(), user, filter)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err, "Failed to fetch feedback")
		return
	}
	if items == nil {
		items = []domain.Feedback{}
	}
	renderJSON(w, r, http.StatusOK, items)
}

// createFeedbackHandler analyzes and stores a single feedback
func (s *Server) createFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	var in service.Input
	if err := decodeJSON(r, &in); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	f, err := s.feedback.Submit(r.Context(), user, in)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrEmptyText):
			renderError(w, r, http.StatusBadRequest, err, "Content is required")
		case errors.Is(err, analysis.ErrUnknownMode):
			renderError(w, r, http.StatusBadRequest, err, "Invalid mode, expected ai or keyword")
		default:
			renderError(w, r, http.StatusInternalServerError, err, "Failed to create feedback")
		}
		return
	}
	renderJSON(w, r, http.StatusCreated, f)
}

// bulkFeedbackHandler imports many feedback rows at once
func (s *Server) bulkFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	var req bulkRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	if len(req.Feedbacks) == 0 {
		renderError(w, r, http.StatusBadRequest, errors.New("empty feedbacks"), "Invalid feedback data")
		return
	}
	if len(req.Feedbacks) > s.maxBulkItems {
		renderError(w, r, http.StatusBadRequest, fmt.Errorf("%d rows", len(req.Feedbacks)),
			fmt.Sprintf("Too many feedback rows, max %d", s.maxBulkItems))
		return
	}

	progress := func(p domain.BatchProgress) {
		lgr.Printf("[DEBUG] import of user %s: batch %d/%d, %d%%", user.ID, p.BatchesCompleted, p.TotalBatches, p.Percentage)
	}
	res, err := s.feedback.Import(r.Context(), user, req.Feedbacks, req.BatchSize, progress)
	if err != nil {
		if errors.Is(err, service.ErrNothingToImport) {
			renderError(w, r, http.StatusBadRequest, err, "No valid feedback texts to import")
			return
		}
		renderError(w, r, http.StatusInternalServerError, err, "Failed to bulk create feedback")
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// reanalyzeHandler runs analysis again for the caller's feedback matching the filter.
// Empty body re-analyzes everything.
func (s *Server) reanalyzeHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	var req reanalyzeRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	filter := domain.FeedbackFilter{Categories: req.Categories, Sources: req.Sources}
	var err error
	if filter.DateFrom, err = parseDate(req.DateFrom); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid dateFrom")
		return
	}
	if filter.DateTo, err = parseDate(req.DateTo); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid dateTo")
		return
	}

	report, err := s.feedback.Reanalyze(r.Context(), user, filter, req.BatchSize)
	if err != nil && report.Total == 0 {
		renderError(w, r, http.StatusInternalServerError, err, "Failed to re-analyze feedback")
		return
	}
	if err != nil {
		// interrupted run, keep what was done
		lgr.Printf("[WARN] re-analysis of user %s interrupted after %d processed, %d failed of %d: %v",
			user.ID, report.Processed, report.Failed, report.Total, err)
		renderJSON(w, r, http.StatusInternalServerError, map[string]any{
			"success":   false,
			"error":     "Re-analysis interrupted",
			"total":     report.Total,
			"processed": report.Processed,
			"failed":    report.Failed,
			"errors":    report.Errors,
		})
		return
	}

	if report.Total == 0 {
		renderJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"count":   0,
			"message": "No feedback found matching the specified criteria",
		})
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"total":     report.Total,
		"processed": report.Processed,
		"failed":    report.Failed,
		"errors":    report.Errors,
		"message":   fmt.Sprintf("Successfully re-analyzed %d/%d feedback entries", report.Processed, report.Total),
	})
}

// updateFeedbackHandler applies a user edit, setting the category marks it as manual override
func (s *Server) updateFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	var upd domain.FeedbackUpdate
	if err := decodeJSON(r, &upd); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	f, err := s.feedback.Update(r.Context(), user, r.PathValue("id"), upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			renderError(w, r, http.StatusNotFound, err, "Feedback not found or unauthorized")
		case errors.Is(err, llm.ErrEmptyText):
			renderError(w, r, http.StatusBadRequest, err, "Content is required")
		default:
			renderError(w, r, http.StatusInternalServerError, err, "Failed to update feedback")
		}
		return
	}
	renderJSON(w, r, http.StatusOK, f)
}

// deleteFeedbackHandler removes the caller's feedback
func (s *Server) deleteFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	if err := s.feedback.Delete(r.Context(), user, r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, http.StatusNotFound, err, "Feedback not found or unauthorized")
			return
		}
		renderError(w, r, http.StatusInternalServerError, err, "Failed to delete feedback")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true})
}

func decodeJSON(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

// filterFromQuery reads category, source, from, to and limit query parameters.
// category and source may repeat or hold comma-separated values.
func filterFromQuery(r *http.Request) (domain.FeedbackFilter, error) {
	q := r.URL.Query()
	var filter domain.FeedbackFilter
	for _, c := range splitValues(q["category"]) {
		cat := domain.Category(c)
		if !cat.Valid() {
			return filter, fmt.Errorf("unknown category %q", c)
		}
		filter.Categories = append(filter.Categories, cat)
	}
	filter.Sources = splitValues(q["source"])

	var err error
	if filter.DateFrom, err = parseDate(q.Get("from")); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDate(q.Get("to")); err != nil {
		return filter, err
	}
	if v := q.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil || filter.Limit < 0 {
			return filter, fmt.Errorf("invalid limit %q", v)
		}
	}
	return filter, nil
}

func splitValues(values []string) []string {
	var res []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				res = append(res, part)
			}
		}
	}
	return res
}

// parseDate accepts RFC3339 timestamp or a plain date, empty string is no date
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", s)
}
