package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsense/pkg/domain"
)

// FeedbackRepository handles feedback storage, all access is scoped by owner
type FeedbackRepository struct {
	db *sqlx.DB
}

// feedbackSQL represents a feedback row for SQL operations
type feedbackSQL struct {
	ID                    string     `db:"id"`
	UserID                string     `db:"user_id"`
	Content               string     `db:"content"`
	Source                string     `db:"source"`
	Category              string     `db:"category"`
	SentimentScore        float64    `db:"sentiment_score"`
	SentimentLabel        string     `db:"sentiment_label"`
	Topics                topicsSQL  `db:"topics"`
	FeedbackDate          time.Time  `db:"feedback_date"`
	AICategoryConfidence  *float64   `db:"ai_category_confidence"`
	AIClassificationMeta  metaSQL    `db:"ai_classification_meta"`
	ClassificationHistory historySQL `db:"classification_history"`
	ManualOverride        bool       `db:"manual_override"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

const feedbackColumns = `id, user_id, content, source, category, sentiment_score, sentiment_label, topics,
	feedback_date, ai_category_confidence, ai_classification_meta, classification_history, manual_override,
	created_at, updated_at`

const insertFeedback = `INSERT INTO feedback (` + feedbackColumns + `) VALUES (
	:id, :user_id, :content, :source, :category, :sentiment_score, :sentiment_label, :topics,
	:feedback_date, :ai_category_confidence, :ai_classification_meta, :classification_history, :manual_override,
	:created_at, :updated_at)`

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts feedback, assigning id and timestamps
func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	prepareNew(f, time.Now().UTC())
	row := toSQL(f)
	err := retry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, insertFeedback, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// CreateMany inserts all feedback in a single transaction, nothing is stored on failure
func (r *FeedbackRepository) CreateMany(ctx context.Context, items []*domain.Feedback) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]feedbackSQL, len(items))
	for i, f := range items {
		prepareNew(f, now)
		rows[i] = toSQL(f)
	}

	err := retry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		stmt, err := tx.PrepareNamedContext(ctx, insertFeedback)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := range rows {
			if _, err := stmt.ExecContext(ctx, rows[i]); err != nil {
				return fmt.Errorf("insert row %d: %w", i+1, err)
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("create %d feedback items: %w", len(items), err)
	}
	return nil
}

// Get returns feedback by id if it belongs to the user
func (r *FeedbackRepository) Get(ctx context.Context, userID, id string) (*domain.Feedback, error) {
	var row feedbackSQL
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = ? AND user_id = ?`
	if err := r.db.GetContext(ctx, &row, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feedback %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// List returns user's feedback matching the filter, newest first
func (r *FeedbackRepository) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	conds := []string{"user_id = ?"}
	args := []any{filter.UserID}

	if len(filter.Categories) > 0 {
		cats := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			cats[i] = string(c)
		}
		conds = append(conds, "category IN (?)")
		args = append(args, cats)
	}
	if len(filter.Sources) > 0 {
		conds = append(conds, "source IN (?)")
		args = append(args, filter.Sources)
	}
	if filter.DateFrom != nil {
		conds = append(conds, "feedback_date >= ?")
		args = append(args, filter.DateFrom.UTC())
	}
	if filter.DateTo != nil {
		conds = append(conds, "feedback_date <= ?")
		args = append(args, filter.DateTo.UTC())
	}

	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("expand list query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []feedbackSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	res := make([]domain.Feedback, len(rows))
	for i := range rows {
		res[i] = *rows[i].toDomain()
	}
	return res, nil
}

// Update applies a user edit. Changing the category by hand marks the feedback as manually overridden.
func (r *FeedbackRepository) Update(ctx context.Context, userID, id string, upd domain.FeedbackUpdate) (*domain.Feedback, error) {
	var sets []string
	var args []any
	if upd.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *upd.Content)
	}
	if upd.Source != nil {
		sets = append(sets, "source = ?")
		args = append(args, *upd.Source)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?", "manual_override = 1")
		args = append(args, string(*upd.Category))
	}
	if upd.SentimentScore != nil {
		sets = append(sets, "sentiment_score = ?")
		args = append(args, *upd.SentimentScore)
	}
	if upd.SentimentLabel != nil {
		sets = append(sets, "sentiment_label = ?")
		args = append(args, string(*upd.SentimentLabel))
	}
	if upd.Topics != nil {
		sets = append(sets, "topics = ?")
		args = append(args, topicsSQL(upd.Topics))
	}
	if upd.FeedbackDate != nil {
		sets = append(sets, "feedback_date = ?")
		args = append(args, upd.FeedbackDate.UTC())
	}
	if len(sets) == 0 {
		return r.Get(ctx, userID, id)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id, userID)
	query := `UPDATE feedback SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND user_id = ?`

	if err := r.execOwned(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update feedback %s: %w", id, err)
	}
	return r.Get(ctx, userID, id)
}

// UpdateAnalysis stores analysis results of the feedback, including its full classification history,
// and clears manual override
func (r *FeedbackRepository) UpdateAnalysis(ctx context.Context, f *domain.Feedback) error {
	f.UpdatedAt = time.Now().UTC()
	f.ManualOverride = false
	row := toSQL(f)
	query := `UPDATE feedback SET category = ?, sentiment_score = ?, sentiment_label = ?, topics = ?,
		ai_category_confidence = ?, ai_classification_meta = ?, classification_history = ?,
		manual_override = 0, updated_at = ?
		WHERE id = ? AND user_id = ?`

	err := r.execOwned(ctx, query, row.Category, row.SentimentScore, row.SentimentLabel, row.Topics,
		row.AICategoryConfidence, row.AIClassificationMeta, row.ClassificationHistory, row.UpdatedAt, row.ID, row.UserID)
	if err != nil {
		return fmt.Errorf("update analysis of %s: %w", f.ID, err)
	}
	return nil
}

// Delete removes feedback if it belongs to the user
func (r *FeedbackRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.execOwned(ctx, `DELETE FROM feedback WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return fmt.Errorf("delete feedback %s: %w", id, err)
	}
	return nil
}

// execOwned executes a single-row statement and returns ErrNotFound if nothing was affected
func (r *FeedbackRepository) execOwned(ctx context.Context, query string, args ...any) error {
	return retry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// prepareNew fills id, defaults and timestamps of a new feedback
func prepareNew(f *domain.Feedback, now time.Time) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Source == "" {
		f.Source = "manual"
	}
	if f.Category == "" {
		f.Category = domain.CategoryGeneralInquiry
	}
	if f.SentimentLabel == "" {
		f.SentimentLabel = domain.SentimentNeutral
	}
	if f.Topics == nil {
		f.Topics = []string{}
	}
	if f.ClassificationHistory == nil {
		f.ClassificationHistory = []domain.HistoryEntry{}
	}
	if f.FeedbackDate.IsZero() {
		f.FeedbackDate = now
	}
	f.CreatedAt, f.UpdatedAt = now, now
}

func toSQL(f *domain.Feedback) feedbackSQL {
	return feedbackSQL{
		ID:                    f.ID,
		UserID:                f.UserID,
		Content:               f.Content,
		Source:                f.Source,
		Category:              string(f.Category),
		SentimentScore:        f.SentimentScore,
		SentimentLabel:        string(f.SentimentLabel),
		Topics:                topicsSQL(f.Topics),
		FeedbackDate:          f.FeedbackDate.UTC(),
		AICategoryConfidence:  f.AICategoryConfidence,
		AIClassificationMeta:  metaSQL{meta: f.AIClassificationMeta},
		ClassificationHistory: historySQL(f.ClassificationHistory),
		ManualOverride:        f.ManualOverride,
		CreatedAt:             f.CreatedAt.UTC(),
		UpdatedAt:             f.UpdatedAt.UTC(),
	}
}

func (s *feedbackSQL) toDomain() *domain.Feedback {
	return &domain.Feedback{
		ID:                    s.ID,
		UserID:                s.UserID,
		Content:               s.Content,
		Source:                s.Source,
		Category:              domain.Category(s.Category),
		SentimentScore:        s.SentimentScore,
		SentimentLabel:        domain.SentimentLabel(s.SentimentLabel),
		Topics:                []string(s.Topics),
		FeedbackDate:          s.FeedbackDate.UTC(),
		AICategoryConfidence:  s.AICategoryConfidence,
		AIClassificationMeta:  s.AIClassificationMeta.meta,
		ClassificationHistory: []domain.HistoryEntry(s.ClassificationHistory),
		ManualOverride:        s.ManualOverride,
		CreatedAt:             s.CreatedAt.UTC(),
		UpdatedAt:             s.UpdatedAt.UTC(),
	}
}

// topicsSQL is a JSON array of topic strings for SQL operations
type topicsSQL []string

// Value implements driver.Valuer for database storage
func (t topicsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	return string(b), err
}

// Scan implements sql.Scanner for database retrieval
func (t *topicsSQL) Scan(value any) error {
	*t = topicsSQL{}
	return scanJSON(value, t)
}

// historySQL is a JSON array of classification history entries
type historySQL []domain.HistoryEntry

// Value implements driver.Valuer for database storage
func (h historySQL) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	b, err := json.Marshal(h)
	return string(b), err
}

// Scan implements sql.Scanner for database retrieval
func (h *historySQL) Scan(value any) error {
	*h = historySQL{}
	return scanJSON(value, h)
}

// metaSQL is a nullable JSON classification meta
type metaSQL struct {
	meta *domain.ClassificationMeta
}

// Value implements driver.Valuer for database storage
func (m metaSQL) Value() (driver.Value, error) {
	if m.meta == nil {
		return nil, nil
	}
	b, err := json.Marshal(m.meta)
	return string(b), err
}

// Scan implements sql.Scanner for database retrieval
func (m *metaSQL) Scan(value any) error {
	m.meta = nil
	if value == nil {
		return nil
	}
	var meta domain.ClassificationMeta
	if err := scanJSON(value, &meta); err != nil {
		return err
	}
	m.meta = &meta
	return nil
}

// scanJSON decodes a TEXT or BLOB column, NULL leaves dest unchanged
func scanJSON(value, dest any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unexpected json column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
