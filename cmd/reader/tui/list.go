package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tech-pulse/models"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// categoryLabel 은 "cybersecurity" 를 "Cybersecurity" 처럼 첫 글자만 대문자로 바꾼다.
func categoryLabel(c string) string {
	if c == "" {
		return ""
	}
	if c == string(models.CategoryAI) {
		return "AI"
	}
	if c == string(models.CategoryDevOps) {
		return "DevOps"
	}
	return strings.ToUpper(c[:1]) + c[1:]
}

func renderListItem(a models.Article, selected, bookmarked bool, width int) string {
	if width < 10 {
		width = 30
	}

	mark := "  "
	if bookmarked {
		mark = itemBookmarkStyle.Render("★ ")
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-6))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-6))
	}

	meta := "    " + itemMetaStyle.Render(categoryLabel(a.Category)+" · "+a.Source+" · "+relativeTime(a.PublishedAt))
	return mark + title + "\n" + meta
}

func renderList(articles []models.Article, cursor int, isBookmarked func(string) bool, hasMore bool, height, width int) string {
	if len(articles) == 0 {
		return strings.Repeat("\n", height/3) + "  No articles found"
	}

	// 항목당 제목 + 메타 + 빈 줄
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = max(0, end-visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(articles[i], i == cursor, isBookmarked(articles[i].ID), width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	if hasMore && end == len(articles) {
		b.WriteString("\n\n" + loadMoreStyle.Render("  m  load more articles"))
	}
	return b.String()
}

func renderCategoryBar(active models.Category, width int) string {
	tabs := make([]string, 0, len(models.Categories))
	for i, c := range models.Categories {
		label := fmt.Sprintf("%d %s", i+1, categoryLabel(string(c)))
		if c == active {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(tabs, " "))
}
