package repository

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsense/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func setupUser(t *testing.T, repos *Repositories, id string) domain.User {
	t.Helper()
	user := domain.User{ID: id, Email: id + "@example.com"}
	_, err := repos.Profile.EnsureProfile(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Ping(context.Background()))
	ctx := context.Background()
	user := setupUser(t, repos, "user-1")

	conf := 0.9
	ts := time.Date(2025, 5, 1, 12, 0, 1, 0, time.UTC)
	fb := &domain.Feedback{
		UserID:         user.ID,
		Content:        "the app crashes on login",
		Source:         "email",
		Category:       domain.CategoryBugReport,
		SentimentScore: 0.2,
		SentimentLabel: domain.SentimentNegative,
		Topics:         []string{"website"},
		FeedbackDate:   time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	fb.AICategoryConfidence = &conf
	fb.AIClassificationMeta = &domain.ClassificationMeta{Timestamp: ts,
		AIClassification: domain.CategoryMeta{Method: domain.MethodAI, Model: "gpt-4o-mini", Confidence: 0.9}}
	fb.ClassificationHistory = []domain.HistoryEntry{{Timestamp: ts, Category: domain.CategoryBugReport, Confidence: 0.9,
		Method: domain.MethodAI, Reasoning: "crash"}}

	require.NoError(t, repos.Feedback.Create(ctx, fb))
	assert.Len(t, fb.ID, 36, "uuid assigned")
	assert.False(t, fb.CreatedAt.IsZero())

	got, err := repos.Feedback.Get(ctx, user.ID, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, fb.Content, got.Content)
	assert.Equal(t, "email", got.Source)
	assert.Equal(t, domain.CategoryBugReport, got.Category)
	assert.Equal(t, domain.SentimentNegative, got.SentimentLabel)
	assert.Equal(t, []string{"website"}, got.Topics)
	assert.True(t, fb.FeedbackDate.Equal(got.FeedbackDate))
	require.NotNil(t, got.AICategoryConfidence)
	assert.InDelta(t, 0.9, *got.AICategoryConfidence, 0.0001)
	require.NotNil(t, got.AIClassificationMeta)
	assert.Equal(t, "gpt-4o-mini", got.AIClassificationMeta.AIClassification.Model)
	require.Len(t, got.ClassificationHistory, 1)
	assert.Equal(t, "crash", got.ClassificationHistory[0].Reasoning)
	assert.False(t, got.ManualOverride)

	t.Run("other user can't see it", func(t *testing.T) {
		_, err := repos.Feedback.Get(ctx, "user-2", fb.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		content := "the app crashes on login and logout"
		cat := domain.CategoryGeneralInquiry
		upd, err := repos.Feedback.Update(ctx, user.ID, fb.ID, domain.FeedbackUpdate{Content: &content, Category: &cat})
		require.NoError(t, err)
		assert.Equal(t, content, upd.Content)
		assert.Equal(t, domain.CategoryGeneralInquiry, upd.Category)
		assert.True(t, upd.ManualOverride)
		assert.Equal(t, "email", upd.Source, "unchanged field kept")

		_, err = repos.Feedback.Update(ctx, "user-2", fb.ID, domain.FeedbackUpdate{Content: &content})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update analysis resets manual override and keeps history", func(t *testing.T) {
		cur, err := repos.Feedback.Get(ctx, user.ID, fb.ID)
		require.NoError(t, err)
		require.True(t, cur.ManualOverride)

		cur.ApplyAnalysis(domain.AnalysisRecord{
			SentimentScore: 0, SentimentLabel: domain.SentimentNegative, Topics: []string{"website"},
			AICategory: domain.CategoryBugReport, AICategoryConfidence: 0.95,
			HistoryEntry: domain.HistoryEntry{Category: domain.CategoryBugReport, Confidence: 0.95, Method: domain.MethodAI},
		})
		require.NoError(t, repos.Feedback.UpdateAnalysis(ctx, cur))

		res, err := repos.Feedback.Get(ctx, user.ID, fb.ID)
		require.NoError(t, err)
		assert.False(t, res.ManualOverride)
		assert.Equal(t, domain.CategoryBugReport, res.Category)
		require.Len(t, res.ClassificationHistory, 2)
		assert.Equal(t, "crash", res.ClassificationHistory[0].Reasoning)
		assert.InDelta(t, 0.95, res.ClassificationHistory[1].Confidence, 0.0001)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, repos.Feedback.Delete(ctx, "user-2", fb.ID), ErrNotFound)
		require.NoError(t, repos.Feedback.Delete(ctx, user.ID, fb.ID))
		_, err := repos.Feedback.Get(ctx, user.ID, fb.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, repos.Feedback.Delete(ctx, user.ID, fb.ID), ErrNotFound)
	})
}

func TestProfileRepository_EnsureProfile(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	p, err := repos.Profile.EnsureProfile(ctx, domain.User{ID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "u1@example.com", p.Name, "name defaults to email")

	// second call keeps the existing profile
	p2, err := repos.Profile.EnsureProfile(ctx, domain.User{ID: "u1", Email: "other@example.com", Name: "Other"})
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", p2.Email)
	assert.True(t, p.CreatedAt.Equal(p2.CreatedAt))

	p3, err := repos.Profile.EnsureProfile(ctx, domain.User{ID: "u2", Email: "u2@example.com", Name: "Jo"})
	require.NoError(t, err)
	assert.Equal(t, "Jo", p3.Name)

	_, err = repos.Profile.EnsureProfile(ctx, domain.User{})
	require.Error(t, err)

	_, err = repos.Profile.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFeedbackRepository_CreateRequiresProfile(t *testing.T) {
	repos := setupTestRepos(t)
	err := repos.Feedback.Create(context.Background(), &domain.Feedback{UserID: "nobody", Content: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}

func TestFeedbackRepository_CreateDefaults(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	user := setupUser(t, repos, "u1")

	fb := &domain.Feedback{UserID: user.ID, Content: "hello"}
	require.NoError(t, repos.Feedback.Create(ctx, fb))

	got, err := repos.Feedback.Get(ctx, user.ID, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, "manual", got.Source)
	assert.Equal(t, domain.CategoryGeneralInquiry, got.Category)
	assert.Equal(t, domain.SentimentNeutral, got.SentimentLabel)
	assert.Empty(t, got.Topics)
	assert.NotNil(t, got.Topics)
	assert.Empty(t, got.ClassificationHistory)
	assert.Nil(t, got.AICategoryConfidence)
	assert.Nil(t, got.AIClassificationMeta)
	assert.False(t, got.FeedbackDate.IsZero())
}

func TestFeedbackRepository_CreateMany(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	user := setupUser(t, repos, "u1")

	items := []*domain.Feedback{
		{UserID: user.ID, Content: "one"},
		{UserID: user.ID, Content: "two"},
		{UserID: user.ID, Content: "three"},
	}
	require.NoError(t, repos.Feedback.CreateMany(ctx, items))
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
	}

	list, err := repos.Feedback.List(ctx, domain.FeedbackFilter{UserID: user.ID})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	t.Run("all or nothing", func(t *testing.T) {
		bad := []*domain.Feedback{
			{UserID: user.ID, Content: "four"},
			{UserID: "no-such-user", Content: "five"},
		}
		require.Error(t, repos.Feedback.CreateMany(ctx, bad))

		list, err := repos.Feedback.List(ctx, domain.FeedbackFilter{UserID: user.ID})
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("empty", func(t *testing.T) {
		require.NoError(t, repos.Feedback.CreateMany(ctx, nil))
	})
}

func TestFeedbackRepository_List(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	user := setupUser(t, repos, "u1")
	other := setupUser(t, repos, "u2")

	day := func(d int) time.Time { return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC) }
	seed := []*domain.Feedback{
		{UserID: user.ID, Content: "a", Source: "email", Category: domain.CategoryBugReport, FeedbackDate: day(1)},
		{UserID: user.ID, Content: "b", Source: "chat", Category: domain.CategoryCompliment, FeedbackDate: day(5)},
		{UserID: user.ID, Content: "c", Source: "email", Category: domain.CategoryCompliment, FeedbackDate: day(10)},
		{UserID: user.ID, Content: "d", Source: "survey", Category: domain.CategoryRefundRequest, FeedbackDate: day(15)},
		{UserID: other.ID, Content: "x", Source: "email", Category: domain.CategoryBugReport, FeedbackDate: day(5)},
	}
	for _, f := range seed {
		require.NoError(t, repos.Feedback.Create(ctx, f))
		time.Sleep(2 * time.Millisecond) // distinct created_at for ordering
	}

	contents := func(list []domain.Feedback) []string {
		res := make([]string, len(list))
		for i, f := range list {
			res[i] = f.Content
		}
		return res
	}
	from, to := day(4), day(12)

	tests := []struct {
		name   string
		filter domain.FeedbackFilter
		want   []string
	}{
		{name: "all of user, newest first", filter: domain.FeedbackFilter{UserID: user.ID}, want: []string{"d", "c", "b", "a"}},
		{name: "by category", filter: domain.FeedbackFilter{UserID: user.ID,
			Categories: []domain.Category{domain.CategoryCompliment, domain.CategoryRefundRequest}}, want: []string{"d", "c", "b"}},
		{name: "by source", filter: domain.FeedbackFilter{UserID: user.ID, Sources: []string{"email"}}, want: []string{"c", "a"}},
		{name: "by date range", filter: domain.FeedbackFilter{UserID: user.ID, DateFrom: &from, DateTo: &to}, want: []string{"c", "b"}},
		{name: "combined", filter: domain.FeedbackFilter{UserID: user.ID, Sources: []string{"email"},
			Categories: []domain.Category{domain.CategoryCompliment}, DateFrom: &from}, want: []string{"c"}},
		{name: "limit", filter: domain.FeedbackFilter{UserID: user.ID, Limit: 2}, want: []string{"d", "c"}},
		{name: "other user", filter: domain.FeedbackFilter{UserID: other.ID}, want: []string{"x"}},
		{name: "unknown user", filter: domain.FeedbackFilter{UserID: "nobody"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repos.Feedback.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, contents(list))
		})
	}
}

func TestFeedbackRepository_ConcurrentWrites(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc&_txlock=immediate&_pragma=busy_timeout(5000)"
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 4})
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()
	user := setupUser(t, repos, "u1")

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repos.Feedback.Create(ctx, &domain.Feedback{UserID: user.ID, Content: "concurrent"})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	list, err := repos.Feedback.List(ctx, domain.FeedbackFilter{UserID: user.ID})
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked (5) (SQLITE_BUSY)")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), func() error {
			calls++
			return ErrNotFound
		})
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, calls)
	})
}

func TestNewRepositories_InvalidDSN(t *testing.T) {
	cfg := Config{
		DSN: "file:/nonexistent-dir/sub/test.db?mode=ro",
	}

	_, err := NewRepositories(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRepositories_Close(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)

	// close should not error
	assert.NoError(t, repos.Close())

	// second close should not error
	assert.NoError(t, repos.Close())
}
