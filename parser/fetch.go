package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// maxPageSize 는 원문 페이지를 읽을 때의 상한이다.
const maxPageSize = 4 * 1024 * 1024

// truncatedContent matches the "... [1234 chars]" suffix GNews appends to clipped content.
var truncatedContent = regexp.MustCompile(`\[\+?\d+ chars\]\s*$`)

// IsTruncated 는 본문이 비었거나 provider 가 잘라낸 흔적이 있으면 true 이다.
func IsTruncated(content string) bool {
	content = strings.TrimSpace(content)
	return content == "" || truncatedContent.MatchString(content)
}

// Renderer 는 JS 렌더링이 필요한 페이지의 HTML 을 돌려준다. (renderer.ChromeRenderer)
type Renderer interface {
	RenderHTML(ctx context.Context, url string) (string, error)
}

// Extractor 는 기사 URL 을 받아 본문 텍스트를 추출한다.
// renderer 가 nil 이면 일반 HTTP GET 으로 HTML 을 가져온다.
type Extractor struct {
	httpClient *http.Client
	renderer   Renderer
	maxRunes   int
}

func NewExtractor(httpClient *http.Client, renderer Renderer, maxRunes int) *Extractor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Extractor{httpClient: httpClient, renderer: renderer, maxRunes: maxRunes}
}

// ExtractText 는 pageURL 의 본문을 maxRunes 로 잘라 반환한다.
func (e *Extractor) ExtractText(ctx context.Context, pageURL string) (string, error) {
	htmlStr, err := e.fetchHTML(ctx, pageURL)
	if err != nil {
		return "", err
	}
	parsed, err := ParseArticleOfHTML(htmlStr, pageURL)
	if err != nil {
		return "", err
	}
	return Truncate(parsed.PlainTextContent, e.maxRunes), nil
}

func (e *Extractor) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	if e.renderer != nil {
		return e.renderer.RenderHTML(ctx, pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("parser: fetch %s: status=%d", pageURL, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
