package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tech-pulse/cmd/internal/httpclient"
	"tech-pulse/models"
)

// NewsQuery 는 GET /api/news 쿼리다.
type NewsQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// Client 는 tech-pulse API 서버를 호출하는 reader 용 클라이언트다.
type Client struct {
	base *httpclient.BaseClient
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: httpclient.NewBaseClientWithClient(
			httpclient.New(httpclient.Config{Timeout: timeout, UserAgent: "tech-pulse-reader"}),
			baseURL,
			"tech-pulse",
		),
	}
}

func (c *Client) News(ctx context.Context, q NewsQuery) ([]models.Article, error) {
	query := url.Values{}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		query.Set("offset", strconv.Itoa(q.Offset))
	}
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/api/news", query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var out []models.Article
	if err := c.base.DoJSON(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Summary(ctx context.Context, articleID string) (models.Summary, error) {
	req, err := c.base.NewJSONRequest(ctx, http.MethodPost, "/api/articles/"+url.PathEscape(articleID)+"/summary", nil)
	if err != nil {
		return models.Summary{}, err
	}
	var out models.Summary
	if err := c.base.DoJSON(req, &out); err != nil {
		return models.Summary{}, err
	}
	return out, nil
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	req, err := c.base.NewJSONRequest(ctx, http.MethodPost, "/api/chat", map[string]string{"message": message})
	if err != nil {
		return "", err
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := c.base.DoJSON(req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *Client) Bookmarks(ctx context.Context) ([]models.BookmarkedArticle, error) {
	req, err := c.base.NewJSONRequest(ctx, http.MethodGet, "/api/bookmarks", nil)
	if err != nil {
		return nil, err
	}
	var out []models.BookmarkedArticle
	if err := c.base.DoJSON(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddBookmark(ctx context.Context, articleID string) error {
	req, err := c.base.NewJSONRequest(ctx, http.MethodPost, "/api/bookmarks", map[string]string{"articleId": articleID})
	if err != nil {
		return err
	}
	return c.base.DoJSON(req, nil)
}

// RemoveBookmark 는 북마크를 지운다. 서버에 이미 없으면(404) 성공으로 본다.
func (c *Client) RemoveBookmark(ctx context.Context, articleID string) error {
	req, err := c.base.NewJSONRequest(ctx, http.MethodDelete, "/api/bookmarks/"+url.PathEscape(articleID), nil)
	if err != nil {
		return err
	}
	err = c.base.DoJSON(req, nil)
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

// Message 는 에러를 화면에 보여줄 한 줄로 바꾼다. 서버가 {message} 를 주면 그것을 쓴다.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal([]byte(httpErr.Body), &body) == nil && body.Message != "" {
			return body.Message
		}
		return http.StatusText(httpErr.StatusCode)
	}
	return err.Error()
}
