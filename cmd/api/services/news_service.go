package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tech-pulse/cmd/api/cooldown"
	"tech-pulse/cmd/api/metrics"
	"tech-pulse/cmd/internal/httpclient"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/models"
	"tech-pulse/repositories"
)

const (
	DefaultFreshness = 5 * time.Minute
	DefaultCooldown  = 10 * time.Second

	msgCooldown       = "Rate limit protection active. Please try again in a moment."
	msgUpstreamQuota  = "GNews API rate limit reached. The free tier allows limited requests per day. Try other categories or wait for the limit to reset."
	msgUpstreamFailed = "Failed to fetch news articles"
)

// NewsSource 는 외부 뉴스 검색 provider 이다. (gnewsclient.Client, feeder.Feeder)
type NewsSource interface {
	Search(ctx context.Context, s models.NewsSearch) ([]models.NewsItem, error)
	Name() string
}

// NewsService 는 뉴스 조회 시 캐시 사용 / 외부 호출 여부를 결정한다.
//
//   - freshness 안에 캐시가 있으면 캐시를 돌려준다.
//   - cooldown 안이면 외부 호출 없이 캐시(없으면 429)를 돌려준다.
//   - 그 외에는 호출 시각을 기록하고 provider 를 호출해 결과를 저장한다.
//   - provider 실패 시 캐시가 있으면 캐시를, 없으면 429/500 을 돌려준다.
type NewsService struct {
	store     repositories.Store
	source    NewsSource
	tracker   *cooldown.Tracker
	freshness time.Duration
	cooldown  time.Duration
	now       func() time.Time

	// mu 는 캐시 판단과 호출 시각 기록을 하나로 묶는다. 외부 호출 동안에는 잡지 않는다.
	mu sync.Mutex
}

type NewsServiceOptions struct {
	Freshness time.Duration
	Cooldown  time.Duration
	Now       func() time.Time
}

func NewNewsService(store repositories.Store, source NewsSource, tracker *cooldown.Tracker, opts NewsServiceOptions) *NewsService {
	if opts.Freshness <= 0 {
		opts.Freshness = DefaultFreshness
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if tracker == nil {
		tracker = cooldown.NewTracker(cooldown.DefaultCapacity)
	}
	return &NewsService{
		store:     store,
		source:    source,
		tracker:   tracker,
		freshness: opts.Freshness,
		cooldown:  opts.Cooldown,
		now:       opts.Now,
	}
}

type NewsQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

func (q NewsQuery) filter() repositories.ArticleFilter {
	return repositories.ArticleFilter{
		Category: q.Category,
		Search:   q.Search,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
}

// NewsError 는 캐시로 대체할 수 없는 실패다. StatusCode 는 429 또는 500 이다.
type NewsError struct {
	StatusCode int
	Message    string
	Detail     string
	Cause      error
}

func (e *NewsError) Error() string {
	if e == nil {
		return "news_failed"
	}
	return e.Message
}

func (e *NewsError) Unwrap() error { return e.Cause }

func (s *NewsService) Fetch(ctx context.Context, q NewsQuery) ([]models.Article, *NewsError) {
	if q.Limit <= 0 {
		q.Limit = repositories.DefaultListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	// 캐시 키와 저장소 필터가 같은 검색어를 보도록 먼저 정규화한다
	q.Search = strings.TrimSpace(q.Search)
	category := models.NormalizeCategory(q.Category)
	q.Category = string(category)
	key := cooldown.Key(q.Category, q.Search)

	cached, err := s.store.ListArticles(ctx, q.filter())
	if err != nil {
		metrics.RecordNewsOutcome(metrics.OutcomeError)
		return nil, &NewsError{StatusCode: http.StatusInternalServerError, Message: msgUpstreamFailed, Detail: err.Error(), Cause: err}
	}

	s.mu.Lock()
	now := s.now()
	gap, seen := s.tracker.Since(key, now)
	if len(cached) > 0 && seen && gap < s.freshness {
		s.mu.Unlock()
		metrics.RecordNewsOutcome(metrics.OutcomeCacheHit)
		return cached, nil
	}
	if seen && gap < s.cooldown {
		s.mu.Unlock()
		if len(cached) > 0 {
			metrics.RecordNewsOutcome(metrics.OutcomeCooldown)
			return cached, nil
		}
		metrics.RecordNewsOutcome(metrics.OutcomeRateLimited)
		return nil, &NewsError{StatusCode: http.StatusTooManyRequests, Message: msgCooldown}
	}
	s.tracker.Record(key, now)
	s.mu.Unlock()

	searchTerm := q.Search
	if searchTerm == "" {
		searchTerm = category.SearchTerms()
	}

	start := time.Now()
	items, err := s.source.Search(ctx, models.NewsSearch{
		Query:    searchTerm,
		Category: category,
		Lang:     "en",
		Country:  "us",
		SortBy:   "publishedAt",
		Max:      q.Limit,
	})
	if err != nil {
		metrics.RecordUpstream(s.source.Name(), "error", time.Since(start).Seconds())
		return s.fallback(ctx, q, err)
	}
	metrics.RecordUpstream(s.source.Name(), "ok", time.Since(start).Seconds())

	articles := make([]models.Article, 0, len(items))
	for _, it := range items {
		articles = append(articles, s.toArticle(it, category, now))
	}
	if len(articles) == 0 {
		metrics.RecordNewsOutcome(metrics.OutcomeFetched)
		return []models.Article{}, nil
	}

	saved, err := s.store.CreateArticles(ctx, articles)
	if err != nil {
		return s.fallback(ctx, q, err)
	}
	logger.InfoWithFields("fetched news from provider", logger.Fields{
		"provider": s.source.Name(),
		"key":      key,
		"count":    len(saved),
	})
	metrics.RecordNewsOutcome(metrics.OutcomeFetched)
	return saved, nil
}

func (s *NewsService) fallback(ctx context.Context, q NewsQuery, cause error) ([]models.Article, *NewsError) {
	logger.ErrorWithFields("error fetching news", logger.Fields{
		"provider": s.source.Name(),
		"category": q.Category,
		"search":   q.Search,
		"error":    cause.Error(),
	})

	if cached, err := s.store.ListArticles(ctx, q.filter()); err == nil && len(cached) > 0 {
		metrics.RecordNewsOutcome(metrics.OutcomeFallback)
		return cached, nil
	}

	if isQuotaError(cause) {
		metrics.RecordNewsOutcome(metrics.OutcomeRateLimited)
		return nil, &NewsError{StatusCode: http.StatusTooManyRequests, Message: msgUpstreamQuota, Detail: upstreamMessage(cause), Cause: cause}
	}
	metrics.RecordNewsOutcome(metrics.OutcomeError)
	return nil, &NewsError{StatusCode: http.StatusInternalServerError, Message: msgUpstreamFailed, Detail: upstreamMessage(cause), Cause: cause}
}

// toArticle 은 provider 결과를 Article 로 바꾼다.
// id 는 (category, url) 로부터 결정적으로 만들어 같은 기사를 다시 받아도 중복 저장되지 않는다.
func (s *NewsService) toArticle(it models.NewsItem, category models.Category, now time.Time) models.Article {
	source := strings.TrimSpace(it.SourceName)
	if source == "" {
		source = "Unknown"
	}
	idSeed := string(category) + "|" + it.URL
	if it.URL == "" {
		idSeed = uuid.NewString()
	}
	return models.Article{
		ID:          s.source.Name() + "_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(idSeed)).String(),
		Title:       it.Title,
		Description: models.OptionalString(it.Description),
		URL:         it.URL,
		URLToImage:  models.OptionalString(it.Image),
		PublishedAt: parsePublishedAt(it.PublishedAt, now),
		Source:      source,
		Category:    string(category),
		Content:     models.OptionalString(it.Content),
	}
}

var publishedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePublishedAt 은 알 수 없는 형식이면 now 를 사용한다.
func parsePublishedAt(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return now.UTC()
}

// isQuotaError 는 provider 가 한도 초과/요청 거부로 응답했는지 판단한다.
// GNews 는 일일 한도 초과 시 403, 잘못된 요청이나 키 누락 시 400 을 준다.
func isQuotaError(err error) bool {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	switch httpErr.StatusCode {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusTooManyRequests:
		return true
	}
	return false
}

// upstreamMessage 는 provider 응답 본문의 message/errors 를 우선 사용한다.
func upstreamMessage(err error) string {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err.Error()
	}
	var body struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if json.Unmarshal([]byte(httpErr.Body), &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if len(body.Errors) > 0 {
			return strings.Join(body.Errors, "; ")
		}
	}
	return err.Error()
}
