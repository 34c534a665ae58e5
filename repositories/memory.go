package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tech-pulse/models"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	articles     map[string]models.Article
	articleOrder []string

	summaries        map[string]models.Summary
	summaryByArticle map[string]string

	bookmarks         map[string]models.Bookmark
	bookmarkByArticle map[string]string
	bookmarkSeq       map[string]int64
	seq               int64
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock uses now for createdAt timestamps.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		now:               now,
		articles:          make(map[string]models.Article),
		summaries:         make(map[string]models.Summary),
		summaryByArticle:  make(map[string]string),
		bookmarks:         make(map[string]models.Bookmark),
		bookmarkByArticle: make(map[string]string),
		bookmarkSeq:       make(map[string]int64),
	}
}

func (s *MemoryStore) ListArticles(_ context.Context, f ArticleFilter) ([]models.Article, error) {
	f = f.normalized()
	category := models.NormalizeCategory(f.Category)
	search := strings.ToLower(f.Search)

	s.mu.RLock()
	out := make([]models.Article, 0, len(s.articles))
	for _, id := range s.articleOrder {
		a := s.articles[id]
		if matchArticle(a, category, search) {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	return paginate(out, f.Offset, f.Limit), nil
}

func (s *MemoryStore) GetArticle(_ context.Context, id string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return models.Article{}, ErrNotFound
	}
	return a, nil
}

func (s *MemoryStore) CreateArticle(_ context.Context, a models.Article) (models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createArticleLocked(a), nil
}

func (s *MemoryStore) createArticleLocked(a models.Article) models.Article {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if existing, ok := s.articles[a.ID]; ok {
		// articles are immutable once stored
		return existing
	}
	a.Description = normalizeOptional(a.Description)
	a.URLToImage = normalizeOptional(a.URLToImage)
	a.Content = normalizeOptional(a.Content)

	s.articles[a.ID] = a
	s.articleOrder = append(s.articleOrder, a.ID)
	return a
}

func (s *MemoryStore) CreateArticles(_ context.Context, as []models.Article) ([]models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Article, 0, len(as))
	for _, a := range as {
		out = append(out, s.createArticleLocked(a))
	}
	return out, nil
}

func (s *MemoryStore) GetSummary(_ context.Context, articleID string) (models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.summaryByArticle[articleID]
	if !ok {
		return models.Summary{}, ErrNotFound
	}
	return s.summaries[id], nil
}

func (s *MemoryStore) CreateSummary(_ context.Context, sum models.Summary) (models.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.summaryByArticle[sum.ArticleID]; ok {
		return s.summaries[id], nil
	}
	sum.ID = uuid.NewString()
	sum.CreatedAt = s.now()
	s.summaries[sum.ID] = sum
	s.summaryByArticle[sum.ArticleID] = sum.ID
	return sum, nil
}

func (s *MemoryStore) ListBookmarks(_ context.Context) ([]models.Bookmark, error) {
	s.mu.RLock()
	out := make([]models.Bookmark, 0, len(s.bookmarks))
	seq := make(map[string]int64, len(s.bookmarks))
	for id, b := range s.bookmarks {
		out = append(out, b)
		seq[id] = s.bookmarkSeq[id]
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return seq[out[i].ID] > seq[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) CreateBookmark(_ context.Context, b models.Bookmark) (models.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.bookmarkByArticle[b.ArticleID]; ok {
		return s.bookmarks[id], nil
	}
	b.ID = uuid.NewString()
	b.CreatedAt = s.now()
	s.seq++
	s.bookmarks[b.ID] = b
	s.bookmarkByArticle[b.ArticleID] = b.ID
	s.bookmarkSeq[b.ID] = s.seq
	return b, nil
}

func (s *MemoryStore) DeleteBookmark(_ context.Context, articleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.bookmarkByArticle[articleID]
	if !ok {
		return false, nil
	}
	delete(s.bookmarks, id)
	delete(s.bookmarkSeq, id)
	delete(s.bookmarkByArticle, articleID)
	return true, nil
}

func (s *MemoryStore) IsBookmarked(_ context.Context, articleID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bookmarkByArticle[articleID]
	return ok, nil
}

func normalizeOptional(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
