package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tech-pulse/cmd/api/clients/llmclient"
	"tech-pulse/cmd/api/metrics"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/models"
	"tech-pulse/parser"
	"tech-pulse/repositories"
)

const summaryGenerationFailed = "Summary generation failed"

var summaryOptions = llmclient.Options{MaxTokens: 200, Temperature: 0.3}

// TextExtractor 는 기사 원문 페이지에서 본문을 가져온다. (parser.Extractor)
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

type SummaryService struct {
	store     repositories.Store
	llm       llmclient.Completer
	extractor TextExtractor
}

// NewSummaryService 는 extractor 가 nil 이면 본문 보강 없이 저장된 content 만 사용한다.
func NewSummaryService(store repositories.Store, llm llmclient.Completer, extractor TextExtractor) *SummaryService {
	return &SummaryService{store: store, llm: llm, extractor: extractor}
}

// Generate 는 기사의 TL;DR 을 돌려준다. 이미 요약이 있으면 그대로 반환하고 LLM 을 호출하지 않는다.
// LLM 실패는 fallback 요약으로 대체되므로 에러는 저장소 에러 또는 ErrNotFound 뿐이다.
func (s *SummaryService) Generate(ctx context.Context, articleID string) (models.Summary, error) {
	existing, err := s.store.GetSummary(ctx, articleID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return models.Summary{}, fmt.Errorf("get summary: %w", err)
	}

	article, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		return models.Summary{}, err
	}

	text := s.summarize(ctx, s.enrich(ctx, article))

	saved, err := s.store.CreateSummary(ctx, models.Summary{ArticleID: articleID, Summary: text})
	if err != nil {
		return models.Summary{}, fmt.Errorf("create summary: %w", err)
	}
	return saved, nil
}

func (s *SummaryService) summarize(ctx context.Context, a models.Article) string {
	if s.llm == nil {
		metrics.RecordFallback("summary", "no_provider")
		return fallbackSummary(a)
	}

	answer, err := s.llm.Complete(ctx, []llmclient.Message{
		{Role: llmclient.RoleUser, Content: summaryPrompt(a)},
	}, summaryOptions)
	if err != nil {
		reason := "error"
		if errors.Is(err, llmclient.ErrNoCredential) {
			reason = "no_credential"
		} else {
			logger.ErrorWithFields("llm summary failed", logger.Fields{
				"provider":   s.llm.Name(),
				"article_id": a.ID,
				"error":      err.Error(),
			})
		}
		metrics.RecordFallback("summary", reason)
		return fallbackSummary(a)
	}
	if strings.TrimSpace(answer) == "" {
		return summaryGenerationFailed
	}
	return answer
}

// enrich 는 content 가 비었거나 잘린 경우 원문 페이지에서 본문을 추출해 채운다.
// 추출 실패 시 저장된 content 를 그대로 쓴다.
func (s *SummaryService) enrich(ctx context.Context, a models.Article) models.Article {
	if s.extractor == nil || a.URL == "" || !parser.IsTruncated(a.ContentText()) {
		return a
	}
	text, err := s.extractor.ExtractText(ctx, a.URL)
	if err != nil {
		logger.WarnWithFields("article enrichment failed", logger.Fields{
			"article_id": a.ID,
			"url":        a.URL,
			"error":      err.Error(),
		})
		return a
	}
	if strings.TrimSpace(text) == "" {
		return a
	}
	a.Content = &text
	return a
}

func summaryPrompt(a models.Article) string {
	return "Please provide a concise TL;DR summary of this article in bullet points (3-4 points max). Focus on the key technical details and main takeaways for developers:\n\n" +
		"Title: " + a.Title + "\n" +
		"Description: " + a.DescriptionText() + "\n" +
		"Content: " + a.ContentText()
}
