package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tech-pulse/parser"
)

func TestFindImage(t *testing.T) {
	testCases := []struct {
		name    string
		html    string
		pageURL string
		want    string
	}{
		{
			name: "og image wins over body img",
			html: `<html><head><meta property="og:image" content="/og.png"></head>
				<body><img src="https://cdn.example/body.jpg"></body></html>`,
			pageURL: "https://news.example/post/1",
			want:    "https://news.example/og.png",
		},
		{
			name:    "twitter card",
			html:    `<meta name="twitter:image" content="https://cdn.example/card.jpg">`,
			pageURL: "",
			want:    "https://cdn.example/card.jpg",
		},
		{
			name:    "link rel image_src",
			html:    `<link rel="image_src" href="thumb.png"><p>text</p>`,
			pageURL: "https://news.example/a/b",
			want:    "https://news.example/a/thumb.png",
		},
		{
			name:    "tracking pixel skipped",
			html:    `<p><img src="https://t.example/px.gif" width="1" height="1"><img src="https://cdn.example/hero.jpg" width="640"></p>`,
			pageURL: "",
			want:    "https://cdn.example/hero.jpg",
		},
		{
			name:    "relative img without base",
			html:    `<img src="/hero.jpg">`,
			pageURL: "",
			want:    "",
		},
		{
			name:    "data uri ignored",
			html:    `<img src="data:image/png;base64,AAAA">`,
			pageURL: "https://news.example/",
			want:    "",
		},
		{
			name:    "plain text",
			html:    "just a description without markup",
			pageURL: "https://news.example/",
			want:    "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, parser.FindImage(testCase.html, testCase.pageURL))
		})
	}
}
