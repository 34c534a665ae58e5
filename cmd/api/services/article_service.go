package services

import (
	"context"

	"tech-pulse/models"
	"tech-pulse/repositories"
)

type ArticleService struct {
	store repositories.Store
}

func NewArticleService(store repositories.Store) *ArticleService {
	return &ArticleService{store: store}
}

// Get 은 기사가 없으면 repositories.ErrNotFound 를 반환한다.
func (s *ArticleService) Get(ctx context.Context, id string) (models.Article, error) {
	return s.store.GetArticle(ctx, id)
}
