package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ErrNoContent 는 어떤 추출기도 본문을 찾지 못했을 때 반환된다.
var ErrNoContent = errors.New("parser: no readable content")

type ParsedArticle struct {
	PlainTextContent string
	TopImage         string
	Extractor        string
}

// ParseArticleOfHTML 은 readability -> trafilatura -> goose 순서로 본문을 추출한다.
// 앞 단계가 실패하거나 빈 본문을 돌려주면 다음 추출기를 시도한다.
func ParseArticleOfHTML(htmlStr, pageURL string) (*ParsedArticle, error) {
	var errs []error
	for _, ex := range []struct {
		name string
		fn   func(string, string) (*ParsedArticle, error)
	}{
		{"readability", ParseHtmlWithReadability},
		{"trafilatura", ParseHtmlWithTrafilatura},
		{"goose", ParseHtmlWithGoose},
	} {
		parsed, err := ex.fn(htmlStr, pageURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ex.name, err))
			continue
		}
		if strings.TrimSpace(parsed.PlainTextContent) == "" {
			continue
		}
		parsed.Extractor = ex.name
		parsed.PlainTextContent = collapseWhitespace(parsed.PlainTextContent)
		return parsed, nil
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrNoContent}, errs...)...)
	}
	return nil, ErrNoContent
}

func ParseHtmlWithReadability(htmlStr, pageURL string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	var base *url.URL
	if pageURL != "" {
		base, _ = url.Parse(pageURL)
	}
	article, err := readability.FromDocument(doc, base)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.TextContent,
		TopImage:         article.Image,
	}, nil
}

func ParseHtmlWithTrafilatura(htmlStr, pageURL string) (*ParsedArticle, error) {
	opts := trafilatura.Options{IncludeImages: true}
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			opts.OriginalURL = u
		}
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.ContentText,
		TopImage:         article.Metadata.Image,
	}, nil
}

func ParseHtmlWithGoose(htmlStr, pageURL string) (*ParsedArticle, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, pageURL)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.CleanedText,
		TopImage:         article.TopImage,
	}, nil
}

// Truncate 는 s 를 최대 max 룬으로 자른다.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
