package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsense/pkg/domain"
)

var exportHeader = []string{"ID", "Feedback Content", "Category", "Source", "Sentiment", "Sentiment Score",
	"Feedback Date", "Created Date", "Topics"}

// exportFeedbackHandler writes the caller's feedback as CSV, accepts the same filter as the list
func (s *Server) exportFeedbackHandler(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=feedback_export.csv")

	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(exportHeader); err != nil {
		lgr.Printf("[WARN] failed to write csv header: %v", err)
		return
	}
	for _, f := range items {
		if err := writer.Write(exportRow(f)); err != nil {
			lgr.Printf("[WARN] failed to write csv row %s: %v", f.ID, err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		lgr.Printf("[WARN] failed to flush csv export: %v", err)
	}
}

func exportRow(f domain.Feedback) []string {
	row := []string{f.ID, f.Content, string(f.Category), f.Source, string(f.SentimentLabel),
		fmt.Sprintf("%.1f%%", f.SentimentScore*100), "", "", strings.Join(f.Topics, ", ")}
	if !f.FeedbackDate.IsZero() {
		row[6] = f.FeedbackDate.Format("2006-01-02")
	}
	if !f.CreatedAt.IsZero() {
		row[7] = f.CreatedAt.Format("2006-01-02 15:04:05")
	}
	return row
}
