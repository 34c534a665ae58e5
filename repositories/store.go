package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"

	"tech-pulse/models"
)

// ErrNotFound is returned when an article, summary or bookmark does not exist.
var ErrNotFound = errors.New("not found")

const DefaultListLimit = 20

// ArticleFilter selects articles for ListArticles.
// Category "all" or "" matches every article. Search is a case-insensitive substring
// matched against title, description and source.
type ArticleFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// normalized clamps pagination to the defaults.
func (f ArticleFilter) normalized() ArticleFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Store is the storage capability used by the API services.
// MemoryStore is the default; MongoStore can be swapped in without touching the services.
type Store interface {
	ListArticles(ctx context.Context, f ArticleFilter) ([]models.Article, error)
	GetArticle(ctx context.Context, id string) (models.Article, error)
	CreateArticle(ctx context.Context, a models.Article) (models.Article, error)
	CreateArticles(ctx context.Context, as []models.Article) ([]models.Article, error)

	// GetSummary returns the single summary of an article.
	GetSummary(ctx context.Context, articleID string) (models.Summary, error)
	// CreateSummary stores a summary. When the article already has one, the stored
	// summary is returned and s is discarded.
	CreateSummary(ctx context.Context, s models.Summary) (models.Summary, error)

	// ListBookmarks returns bookmarks newest first.
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	// CreateBookmark is idempotent per article.
	CreateBookmark(ctx context.Context, b models.Bookmark) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, articleID string) (bool, error)
	IsBookmarked(ctx context.Context, articleID string) (bool, error)
}

// matchArticle applies the category and search parts of the filter.
func matchArticle(a models.Article, category models.Category, search string) bool {
	if !category.IsWildcard() && !strings.EqualFold(a.Category, string(category)) {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), search) ||
		strings.Contains(strings.ToLower(a.DescriptionText()), search) ||
		strings.Contains(strings.ToLower(a.Source), search)
}

// sortNewestFirst sorts by publishedAt descending; ties keep their relative order.
func sortNewestFirst(as []models.Article) {
	sort.SliceStable(as, func(i, j int) bool {
		return as[i].PublishedAt.After(as[j].PublishedAt)
	})
}

func paginate(as []models.Article, offset, limit int) []models.Article {
	if offset >= len(as) {
		return []models.Article{}
	}
	end := offset + limit
	if end > len(as) {
		end = len(as)
	}
	return as[offset:end]
}
