package tui

import "tech-pulse/models"

type articlesLoadedMsg struct {
	category models.Category
	search   string
	limit    int
	articles []models.Article
	err      error
}

// searchTickMsg 는 입력이 멈춘 뒤 도착하는 debounce 틱이다. seq 가 최신이 아니면 버린다.
type searchTickMsg struct {
	seq int
}

type summaryLoadedMsg struct {
	articleID string
	summary   string
	err       error
}

type chatReplyMsg struct {
	message string
	reply   string
	err     error
}

type bookmarkToggledMsg struct {
	articleID  string
	bookmarked bool
	err        error
}

type bookmarksLoadedMsg struct {
	items []models.BookmarkedArticle
	err   error
}
