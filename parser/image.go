package parser

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// minImageSide 보다 작다고 선언된 <img> 는 아이콘/트래킹 픽셀로 보고 건너뛴다.
const minImageSide = 120

// FindImage 는 HTML 조각이나 문서에서 대표 이미지 URL 을 찾는다.
// 우선순위: og/twitter 메타 → link rel=image_src → 본문 첫 <img>. 없으면 "".
// 네트워크 요청은 하지 않으므로 피드 항목마다 호출해도 된다.
func FindImage(htmlStr, pageURL string) string {
	if !strings.Contains(htmlStr, "<") {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	for _, find := range []func(*html.Node) string{metaImage, linkImage, imgImage} {
		if src := find(doc); src != "" {
			if abs, ok := absoluteURL(src, base); ok {
				return abs
			}
		}
	}
	return ""
}

var metaImageKeys = map[string]struct{}{
	"og:image":            {},
	"og:image:url":        {},
	"og:image:secure_url": {},
	"twitter:image":       {},
	"twitter:image:src":   {},
	"thumbnail":           {},
}

func metaImage(doc *html.Node) string {
	return findNode(doc, "meta", func(n *html.Node) string {
		key := strings.ToLower(attr(n, "property"))
		if key == "" {
			key = strings.ToLower(attr(n, "name"))
		}
		if _, ok := metaImageKeys[key]; ok {
			return attr(n, "content")
		}
		return ""
	})
}

func linkImage(doc *html.Node) string {
	return findNode(doc, "link", func(n *html.Node) string {
		rel := strings.ToLower(attr(n, "rel"))
		if rel == "image_src" || strings.Contains(rel, "thumbnail") {
			return attr(n, "href")
		}
		return ""
	})
}

func imgImage(doc *html.Node) string {
	return findNode(doc, "img", func(n *html.Node) string {
		for _, dim := range []string{"width", "height"} {
			if v, err := strconv.Atoi(attr(n, dim)); err == nil && v < minImageSide {
				return ""
			}
		}
		return attr(n, "src")
	})
}

// findNode 는 깊이 우선으로 tag 노드를 돌며 pick 이 처음 반환한 비어있지 않은 값을 돌려준다.
func findNode(root *html.Node, tag string, pick func(*html.Node) string) string {
	if root == nil {
		return ""
	}
	if root.Type == html.ElementNode && root.Data == tag {
		if v := pick(root); v != "" {
			return v
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if v := findNode(c, tag, pick); v != "" {
			return v
		}
	}
	return ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func absoluteURL(src string, base *url.URL) (string, bool) {
	u, err := url.Parse(src)
	if err != nil || strings.HasPrefix(src, "data:") {
		return "", false
	}
	if u.IsAbs() {
		return u.String(), true
	}
	if base == nil {
		return "", false
	}
	return base.ResolveReference(u).String(), true
}
