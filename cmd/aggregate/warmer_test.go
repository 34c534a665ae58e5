package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/cmd/api/cooldown"
	"tech-pulse/cmd/api/services"
	"tech-pulse/cmd/internal/quota"
	"tech-pulse/models"
	"tech-pulse/repositories"
)

type categorySource struct {
	mu     sync.Mutex
	seen   []models.Category
	failOn models.Category
}

func (s *categorySource) Name() string { return "gnews" }

func (s *categorySource) Search(_ context.Context, q models.NewsSearch) ([]models.NewsItem, error) {
	s.mu.Lock()
	s.seen = append(s.seen, q.Category)
	s.mu.Unlock()
	if q.Category == s.failOn {
		return nil, errors.New("upstream down")
	}
	return []models.NewsItem{
		{Title: string(q.Category) + " one", URL: "https://example.com/" + string(q.Category) + "/1", PublishedAt: "2025-03-01T08:00:00Z"},
		{Title: string(q.Category) + " two", URL: "https://example.com/" + string(q.Category) + "/2", PublishedAt: "2025-03-01T07:00:00Z"},
	}, nil
}

func newTestWarmer(src services.NewsSource, summarizeTop int, limiter *quota.Limiter) (*Warmer, repositories.Store) {
	store := repositories.NewMemoryStore()
	news := services.NewNewsService(store, src, cooldown.NewTracker(32), services.NewsServiceOptions{})
	return NewWarmer(news, services.NewSummaryService(store, nil, nil), limiter, 20, summarizeTop), store
}

func TestRunOnceWarmsEveryCategory(t *testing.T) {
	src := &categorySource{failOn: models.CategoryCloud}
	w, _ := newTestWarmer(src, 0, nil)

	res := w.RunOnce(context.Background())

	assert.Equal(t, len(models.Categories), res.Categories)
	assert.Equal(t, 1, res.Failures)
	assert.Equal(t, 2*(len(models.Categories)-1), res.Articles)
	assert.Zero(t, res.Summaries)
	assert.ElementsMatch(t, models.Categories, src.seen)
}

func TestRunOnceSummarizesTopArticles(t *testing.T) {
	w, store := newTestWarmer(&categorySource{}, 1, nil)

	res := w.RunOnce(context.Background())
	assert.Equal(t, len(models.Categories), res.Summaries)

	articles, err := store.ListArticles(context.Background(), repositories.ArticleFilter{Category: "ai"})
	require.NoError(t, err)
	require.NotEmpty(t, articles)
	summary, err := store.GetSummary(context.Background(), articles[0].ID)
	require.NoError(t, err)
	assert.Contains(t, summary.Summary, "• ai one")
}

func TestRunOnceStopsSummariesWhenQuotaIsSpent(t *testing.T) {
	w, _ := newTestWarmer(&categorySource{}, 2, quota.New(0, 3))

	res := w.RunOnce(context.Background())
	assert.Equal(t, 3, res.Summaries)
	assert.Zero(t, res.Failures)
	// 요약이 멈춰도 기사 수집은 계속된다
	assert.Equal(t, 2*len(models.Categories), res.Articles)
}

func TestRunStopsOnCancel(t *testing.T) {
	w, _ := newTestWarmer(&categorySource{}, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
