package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tech-pulse/models"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
		{"한국어 뉴스 요약", 5, "한국..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateStr(tt.input, tt.n), "truncateStr(%q, %d)", tt.input, tt.n)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeTime(tt.t))
	}
	assert.Equal(t, "Jun 15", relativeTime(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "All", categoryLabel("all"))
	assert.Equal(t, "AI", categoryLabel("ai"))
	assert.Equal(t, "DevOps", categoryLabel("devops"))
	assert.Equal(t, "Cybersecurity", categoryLabel("cybersecurity"))
}

func TestRenderListShowsLoadMoreAtEnd(t *testing.T) {
	articles := []models.Article{
		{ID: "a1", Title: "first", Category: "ai", Source: "Wired", PublishedAt: time.Now()},
		{ID: "a2", Title: "second", Category: "ai", Source: "Wired", PublishedAt: time.Now()},
	}
	none := func(string) bool { return false }

	out := renderList(articles, 0, none, true, 30, 60)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "load more")

	out = renderList(articles, 0, none, false, 30, 60)
	assert.NotContains(t, out, "load more")

	assert.True(t, strings.Contains(renderList(nil, 0, none, false, 9, 60), "No articles found"))
}
