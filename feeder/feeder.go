package feeder

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"tech-pulse/cmd/internal/logger"
	"tech-pulse/models"
	"tech-pulse/parser"
)

// ErrNoFeeds 는 요청한 카테고리에 설정된 피드가 하나도 없을 때 반환된다.
var ErrNoFeeds = errors.New("feeder: no feeds configured for category")

// Feeder 는 카테고리별 RSS/Atom 피드를 뉴스 소스로 사용한다.
// GNews 키 없이도 동작하는 대체 provider 이다.
type Feeder struct {
	feeds  map[models.Category][]string
	parser *gofeed.Parser
}

// New 는 카테고리 -> 피드 URL 목록으로 Feeder 를 만든다.
// "all" 카테고리는 설정이 없으면 모든 피드를 합쳐서 사용한다.
func New(feeds map[string][]string, httpClient *http.Client) *Feeder {
	m := make(map[models.Category][]string, len(feeds))
	for k, v := range feeds {
		m[models.NormalizeCategory(k)] = v
	}
	fp := gofeed.NewParser()
	if httpClient != nil {
		fp.Client = httpClient
	}
	return &Feeder{feeds: m, parser: fp}
}

func (f *Feeder) Name() string { return "rss" }

func (f *Feeder) urlsFor(c models.Category) []string {
	if urls, ok := f.feeds[c]; ok && len(urls) > 0 {
		return urls
	}
	if !c.IsWildcard() {
		return nil
	}
	var all []string
	for _, urls := range f.feeds {
		all = append(all, urls...)
	}
	sort.Strings(all)
	return all
}

// Search 는 카테고리의 피드들을 읽어 최신순으로 s.Max 개를 반환한다.
// 사용자 검색어가 있으면 제목/설명에 대한 부분 일치로 거른다.
// 일부 피드가 실패해도 하나라도 성공하면 에러를 반환하지 않는다.
func (f *Feeder) Search(ctx context.Context, s models.NewsSearch) ([]models.NewsItem, error) {
	urls := f.urlsFor(s.Category)
	if len(urls) == 0 {
		return nil, ErrNoFeeds
	}

	var (
		items   []models.NewsItem
		lastErr error
		okCount int
	)
	for _, u := range urls {
		feed, err := f.parser.ParseURLWithContext(u, ctx)
		if err != nil {
			logger.WarnWithFields("failed to parse feed", logger.Fields{"url": u, "error": err.Error()})
			lastErr = err
			continue
		}
		okCount++
		items = append(items, itemsFromFeed(feed)...)
	}
	if okCount == 0 {
		return nil, lastErr
	}

	items = filterByTerm(items, s.Query, s.Category)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt > items[j].PublishedAt
	})
	if s.Max > 0 && len(items) > s.Max {
		items = items[:s.Max]
	}
	return items, nil
}

func itemsFromFeed(feed *gofeed.Feed) []models.NewsItem {
	out := make([]models.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		ni := models.NewsItem{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.Link,
			SourceName:  feed.Title,
		}
		if !published.IsZero() {
			ni.PublishedAt = published.UTC().Format(time.RFC3339)
		}
		ni.Image = itemImage(item)
		out = append(out, ni)
	}
	return out
}

// itemImage 는 피드 이미지 → image/* enclosure → 본문 HTML 순으로 대표 이미지를 고른다.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	if img := parser.FindImage(item.Content, item.Link); img != "" {
		return img
	}
	return parser.FindImage(item.Description, item.Link)
}

// filterByTerm 은 카테고리 검색식이 아닌 사용자 검색어일 때만 거른다.
func filterByTerm(items []models.NewsItem, query string, c models.Category) []models.NewsItem {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" || query == c.SearchTerms() {
		return items
	}
	out := items[:0]
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), term) || strings.Contains(strings.ToLower(it.Description), term) {
			out = append(out, it)
		}
	}
	return out
}
