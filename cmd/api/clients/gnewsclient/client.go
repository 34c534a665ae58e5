package gnewsclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tech-pulse/cmd/internal/httpclient"
	"tech-pulse/models"
)

// Client 는 GNews 검색 API(https://gnews.io/api/v4) 를 호출하는 얇은 클라이언트다.
//
// API 키는 token 쿼리 파라미터로 전달되며, httpclient 로그에서는 가려진다.
type Client struct {
	base   *httpclient.BaseClient
	apiKey string
}

const DefaultBaseURL = "https://gnews.io/api/v4"

// ErrMissingAPIKey 는 키 없이 호출했을 때 반환된다. GNews 는 키가 없으면 400/401 을 돌려준다.
var ErrMissingAPIKey = errors.New("GNEWS_API_KEY is not configured")

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := httpclient.New(httpclient.Config{Timeout: timeout})
	return &Client{
		base:   httpclient.NewBaseClientWithClient(httpClient, baseURL, "gnews"),
		apiKey: apiKey,
	}
}

type searchResponse struct {
	TotalArticles int             `json:"totalArticles"`
	Articles      []searchArticle `json:"articles"`
}

type searchArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

// Search 는 GET /search 를 호출한다. 2xx 가 아니면 *httpclient.HTTPError 를 반환한다.
func (c *Client) Search(ctx context.Context, s models.NewsSearch) ([]models.NewsItem, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("q", s.Query)
	q.Set("token", c.apiKey)
	q.Set("lang", s.Lang)
	q.Set("country", s.Country)
	q.Set("sortby", s.SortBy)
	if s.Max > 0 {
		q.Set("max", strconv.Itoa(s.Max))
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/search", q, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var out searchResponse
	if err := c.base.DoJSON(req, &out); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(out.Articles))
	for _, a := range out.Articles {
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			Image:       a.Image,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
		})
	}
	return items, nil
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return "gnews" }
