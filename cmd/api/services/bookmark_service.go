package services

import (
	"context"
	"errors"

	"tech-pulse/models"
	"tech-pulse/repositories"
)

type BookmarkService struct {
	store repositories.Store
}

func NewBookmarkService(store repositories.Store) *BookmarkService {
	return &BookmarkService{store: store}
}

// List 는 북마크된 기사를 최신 북마크 순으로 반환한다. 기사가 사라진 북마크는 건너뛴다.
func (s *BookmarkService) List(ctx context.Context) ([]models.BookmarkedArticle, error) {
	bookmarks, err := s.store.ListBookmarks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.BookmarkedArticle, 0, len(bookmarks))
	for _, b := range bookmarks {
		article, err := s.store.GetArticle(ctx, b.ArticleID)
		if errors.Is(err, repositories.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, models.BookmarkedArticle{Article: article, BookmarkedAt: b.CreatedAt})
	}
	return out, nil
}

// Add 는 같은 기사에 대해 여러 번 호출해도 처음 만든 북마크를 돌려준다.
func (s *BookmarkService) Add(ctx context.Context, articleID string) (models.Bookmark, error) {
	return s.store.CreateBookmark(ctx, models.Bookmark{ArticleID: articleID})
}

// Remove 는 북마크가 없으면 repositories.ErrNotFound 를 반환한다.
func (s *BookmarkService) Remove(ctx context.Context, articleID string) error {
	deleted, err := s.store.DeleteBookmark(ctx, articleID)
	if err != nil {
		return err
	}
	if !deleted {
		return repositories.ErrNotFound
	}
	return nil
}

func (s *BookmarkService) Status(ctx context.Context, articleID string) (bool, error) {
	return s.store.IsBookmarked(ctx, articleID)
}
