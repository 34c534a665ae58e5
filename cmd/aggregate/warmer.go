package main

import (
	"context"
	"time"

	"tech-pulse/cmd/api/services"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/cmd/internal/quota"
	"tech-pulse/models"
)

// Warmer 는 모든 카테고리의 뉴스를 주기적으로 미리 수집해 API 가 캐시로 응답할 수 있게 한다.
// summarizeTop 이 0 보다 크면 카테고리별 상위 기사의 TL;DR 도 미리 만든다.
// limiter 가 있으면 요약 호출마다 슬롯을 예약한다.
type Warmer struct {
	news         *services.NewsService
	summaries    *services.SummaryService
	limiter      *quota.Limiter
	categories   []models.Category
	limit        int
	summarizeTop int
}

func NewWarmer(news *services.NewsService, summaries *services.SummaryService, limiter *quota.Limiter, limit, summarizeTop int) *Warmer {
	return &Warmer{
		news:         news,
		summaries:    summaries,
		limiter:      limiter,
		categories:   models.Categories,
		limit:        limit,
		summarizeTop: summarizeTop,
	}
}

// WarmResult 는 한 번의 수집 결과 요약이다.
type WarmResult struct {
	Categories int
	Articles   int
	Summaries  int
	Failures   int
}

// RunOnce 는 모든 카테고리를 한 번씩 수집한다. 한 카테고리의 실패가 나머지를 막지 않는다.
func (w *Warmer) RunOnce(ctx context.Context) WarmResult {
	var res WarmResult
	summarize := w.summarizeTop > 0
	for _, c := range w.categories {
		if ctx.Err() != nil {
			break
		}
		res.Categories++

		articles, newsErr := w.news.Fetch(ctx, services.NewsQuery{Category: string(c), Limit: w.limit})
		if newsErr != nil {
			res.Failures++
			logger.WarnWithFields("warm category failed", logger.Fields{
				"category": c,
				"status":   newsErr.StatusCode,
				"message":  newsErr.Message,
				"error":    newsErr.Detail,
			})
			continue
		}
		res.Articles += len(articles)

		for i := 0; summarize && i < len(articles) && i < w.summarizeTop; i++ {
			if !w.reserve(ctx) {
				summarize = false
				break
			}
			if _, err := w.summaries.Generate(ctx, articles[i].ID); err != nil {
				res.Failures++
				logger.WarnWithFields("warm summary failed", logger.Fields{
					"article_id": articles[i].ID,
					"error":      err.Error(),
				})
				continue
			}
			res.Summaries++
		}
	}
	logger.InfoWithFields("warm cycle completed", logger.Fields{
		"categories": res.Categories,
		"articles":   res.Articles,
		"summaries":  res.Summaries,
		"failures":   res.Failures,
	})
	return res
}

// reserve 는 요약 한 건의 호출 슬롯을 잡는다. false 면 이번 주기의 요약을 멈춘다.
func (w *Warmer) reserve(ctx context.Context) bool {
	if w.limiter == nil {
		return true
	}
	ok, err := w.limiter.Reserve(ctx)
	if err != nil {
		return false
	}
	if !ok {
		logger.WarnWithFields("daily summary quota exhausted", logger.Fields{"remaining": w.limiter.Remaining()})
	}
	return ok
}

// Run 은 즉시 1회 수행한 뒤 interval 마다 반복한다. ctx 가 취소되면 반환한다.
func (w *Warmer) Run(ctx context.Context, interval time.Duration) {
	w.RunOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}
