package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tech-pulse/cmd/reader/client"
	"tech-pulse/models"
)

const (
	pageSize       = 20
	searchDebounce = 500 * time.Millisecond
	requestTimeout = 90 * time.Second

	chatWelcome     = "Hi! I'm your coding assistant. Ask me about programming, debugging, or any tech questions you have!"
	chatSendFailed  = "Failed to send message. Please try again."
	bookmarkFailed  = "Failed to update bookmark"
	bookmarkAdded   = "Bookmarked: article saved to your bookmarks"
	bookmarkRemoved = "Bookmark removed: article removed from your bookmarks"
)

// API 는 reader 가 쓰는 서버 호출이다. *client.Client 가 구현한다.
type API interface {
	News(ctx context.Context, q client.NewsQuery) ([]models.Article, error)
	Summary(ctx context.Context, articleID string) (models.Summary, error)
	Chat(ctx context.Context, message string) (string, error)
	Bookmarks(ctx context.Context) ([]models.BookmarkedArticle, error)
	AddBookmark(ctx context.Context, articleID string) error
	RemoveBookmark(ctx context.Context, articleID string) error
}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeSummary
	modeChat
	modeBookmarks
	modeHelp
)

type App struct {
	api    API
	mirror *bookmarkMirror
	now    func() time.Time

	mode       mode
	returnMode mode
	width      int
	height     int

	// 기사 목록
	category models.Category
	search   string
	articles []models.Article
	cursor   int
	// limit 은 "load more" 마다 pageSize 씩 늘어난다. 서버가 offset 을 보장하지 않으므로
	// 항상 offset 0 에서 limit 만큼 다시 받아 목록을 교체한다.
	limit   int
	hasMore bool
	loading bool

	// 검색 입력. search 는 debounce 가 끝난 뒤에만 바뀐다.
	searchInput textinput.Model
	searchSeq   int

	// TL;DR 은 세션 동안 기사별로 캐시한다
	summaries      map[string]string
	summaryFor     string
	summaryLoading bool
	summaryErr     error

	chatInput   textinput.Model
	chat        []models.ChatMessage
	chatPending bool

	bookmarks      []models.Article
	bookmarkCursor int

	status string
	err    error
}

// RunOpts 는 TUI 실행에 필요한 값이다.
type RunOpts struct {
	API        API
	MirrorPath string
	Category   models.Category
}

func NewApp(opts RunOpts) (*App, error) {
	mirror, err := loadMirror(opts.MirrorPath)
	if err != nil {
		return nil, fmt.Errorf("loading bookmark mirror: %w", err)
	}

	si := textinput.New()
	si.Placeholder = "Search articles..."
	si.Prompt = searchPromptStyle.Render("/ ")
	si.CharLimit = 100

	ci := textinput.New()
	ci.Placeholder = "Ask me anything about coding..."
	ci.Prompt = searchPromptStyle.Render("> ")
	ci.CharLimit = 500

	category := opts.Category
	if category == "" {
		category = models.CategoryAll
	}

	now := time.Now
	return &App{
		api:         opts.API,
		mirror:      mirror,
		now:         now,
		category:    category,
		limit:       pageSize,
		searchInput: si,
		chatInput:   ci,
		summaries:   map[string]string{},
		chat: []models.ChatMessage{{
			ID:        "welcome",
			Role:      models.ChatRoleAssistant,
			Content:   chatWelcome,
			Timestamp: now(),
		}},
		loading: true,
	}, nil
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadArticlesCmd(), a.loadBookmarksCmd())
}

// loadArticlesCmd 는 현재 질의를 클로저에 담아 race 를 피한다.
func (a *App) loadArticlesCmd() tea.Cmd {
	api := a.api
	category := a.category
	search := a.search
	limit := a.limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		articles, err := api.News(ctx, client.NewsQuery{
			Category: string(category),
			Search:   search,
			Limit:    limit,
		})
		return articlesLoadedMsg{category: category, search: search, limit: limit, articles: articles, err: err}
	}
}

func (a *App) loadBookmarksCmd() tea.Cmd {
	api := a.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := api.Bookmarks(ctx)
		return bookmarksLoadedMsg{items: items, err: err}
	}
}

func (a *App) fetchSummaryCmd(articleID string) tea.Cmd {
	api := a.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		s, err := api.Summary(ctx, articleID)
		return summaryLoadedMsg{articleID: articleID, summary: s.Summary, err: err}
	}
}

func (a *App) sendChatCmd(message string) tea.Cmd {
	api := a.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reply, err := api.Chat(ctx, message)
		return chatReplyMsg{message: message, reply: reply, err: err}
	}
}

func (a *App) toggleBookmarkCmd(articleID string, bookmarked bool) tea.Cmd {
	api := a.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if bookmarked {
			err = api.RemoveBookmark(ctx, articleID)
		} else {
			err = api.AddBookmark(ctx, articleID)
		}
		return bookmarkToggledMsg{articleID: articleID, bookmarked: !bookmarked, err: err}
	}
}

func searchTickCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		a.status = ""
		return a.handleKey(msg)

	case searchTickMsg:
		if msg.seq != a.searchSeq {
			return a, nil
		}
		return a, a.applySearch(a.searchInput.Value())

	case articlesLoadedMsg:
		// 카테고리, 검색어, limit 중 하나라도 바뀐 뒤 도착한 응답은 버린다
		if msg.category != a.category || msg.search != a.search || msg.limit != a.limit {
			return a, nil
		}
		a.loading = false
		if msg.err != nil {
			a.err = errors.New(client.Message(msg.err))
			// 실패한 "load more" 는 다시 시도할 수 있도록 이전 limit 으로 되돌린다
			if a.limit > pageSize && len(a.articles) > 0 {
				a.limit -= pageSize
			}
			return a, nil
		}
		if a.limit == pageSize {
			a.cursor = 0
		}
		a.articles = dedupeArticles(msg.articles)
		a.cursor = min(a.cursor, max(0, len(a.articles)-1))
		a.hasMore = len(msg.articles) >= msg.limit
		return a, nil

	case summaryLoadedMsg:
		if msg.err == nil {
			a.summaries[msg.articleID] = msg.summary
		}
		if msg.articleID == a.summaryFor {
			a.summaryLoading = false
			a.summaryErr = msg.err
		}
		return a, nil

	case chatReplyMsg:
		a.chatPending = false
		if msg.err != nil {
			a.err = errors.New(chatSendFailed)
			return a, nil
		}
		now := a.now()
		a.chat = append(a.chat,
			models.ChatMessage{ID: fmt.Sprintf("user_%d", now.UnixMilli()), Role: models.ChatRoleUser, Content: msg.message, Timestamp: now},
			models.ChatMessage{ID: fmt.Sprintf("assistant_%d", now.UnixMilli()), Role: models.ChatRoleAssistant, Content: msg.reply, Timestamp: now},
		)
		a.chatInput.SetValue("")
		return a, nil

	case bookmarkToggledMsg:
		if msg.err != nil {
			a.err = errors.New(bookmarkFailed)
			return a, nil
		}
		if err := a.mirror.Set(msg.articleID, msg.bookmarked); err != nil {
			a.err = fmt.Errorf("saving bookmark mirror: %w", err)
		}
		if msg.bookmarked {
			a.status = bookmarkAdded
			return a, nil
		}
		a.status = bookmarkRemoved
		if a.mode == modeBookmarks {
			return a, a.loadBookmarksCmd()
		}
		return a, nil

	case bookmarksLoadedMsg:
		if msg.err != nil {
			a.err = errors.New(client.Message(msg.err))
			return a, nil
		}
		ids := make([]string, 0, len(msg.items))
		a.bookmarks = a.bookmarks[:0]
		for _, item := range msg.items {
			ids = append(ids, item.ID)
			a.bookmarks = append(a.bookmarks, item.Article)
		}
		if a.bookmarkCursor >= len(a.bookmarks) {
			a.bookmarkCursor = max(0, len(a.bookmarks)-1)
		}
		if err := a.mirror.Replace(ids); err != nil {
			a.err = fmt.Errorf("saving bookmark mirror: %w", err)
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeChat:
		return a.handleChatKey(msg)
	case modeSummary:
		switch msg.String() {
		case "esc", "q", "enter", "t":
			a.mode = a.returnMode
		case "b":
			return a, a.toggleSelected()
		}
		return a, nil
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	case modeBookmarks:
		return a.handleBookmarksKey(msg)
	}

	switch key := msg.String(); key {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.articles)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		a.cursor = max(0, len(a.articles)-1)
		return a, nil
	case "/":
		a.mode = modeSearch
		return a, a.searchInput.Focus()
	case "m":
		return a, a.loadMore()
	case "r":
		a.loading = true
		return a, a.loadArticlesCmd()
	case "enter", "t":
		return a, a.openSummary()
	case "b":
		return a, a.toggleSelected()
	case "B":
		a.mode = modeBookmarks
		return a, a.loadBookmarksCmd()
	case "c":
		a.mode = modeChat
		return a, a.chatInput.Focus()
	case "?":
		a.mode = modeHelp
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7":
		return a, a.selectCategory(models.Categories[int(key[0]-'1')])
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		return a, a.applySearch("")
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, a.applySearch(a.searchInput.Value())
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// 커서 이동 같은 입력은 재검색하지 않는다
	if a.searchInput.Value() == before {
		return a, cmd
	}
	a.searchSeq++
	return a, tea.Batch(cmd, searchTickCmd(a.searchSeq))
}

// applySearch 는 검색어를 확정한다. 대기 중인 debounce 틱은 무효가 된다.
func (a *App) applySearch(term string) tea.Cmd {
	a.searchSeq++
	term = strings.TrimSpace(term)
	if term == a.search {
		return nil
	}
	a.search = term
	a.limit = pageSize
	a.loading = true
	return a.loadArticlesCmd()
}

// selectCategory 는 카테고리를 바꾸고 검색어를 비운 뒤 처음부터 다시 읽는다.
func (a *App) selectCategory(c models.Category) tea.Cmd {
	if c == a.category {
		return nil
	}
	a.category = c
	a.search = ""
	a.searchSeq++
	a.searchInput.SetValue("")
	a.articles = nil
	a.cursor = 0
	a.hasMore = false
	a.limit = pageSize
	a.loading = true
	return a.loadArticlesCmd()
}

func (a *App) loadMore() tea.Cmd {
	if a.loading || !a.hasMore {
		return nil
	}
	a.limit += pageSize
	a.loading = true
	return a.loadArticlesCmd()
}

func dedupeArticles(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]models.Article, 0, len(articles))
	for _, art := range articles {
		if _, ok := seen[art.ID]; ok {
			continue
		}
		seen[art.ID] = struct{}{}
		out = append(out, art)
	}
	return out
}

func (a *App) selected() *models.Article {
	if a.mode == modeBookmarks || (a.mode == modeSummary && a.returnMode == modeBookmarks) {
		if a.bookmarkCursor < len(a.bookmarks) {
			return &a.bookmarks[a.bookmarkCursor]
		}
		return nil
	}
	if a.cursor < len(a.articles) {
		return &a.articles[a.cursor]
	}
	return nil
}

func (a *App) openSummary() tea.Cmd {
	article := a.selected()
	if article == nil {
		return nil
	}
	a.returnMode = a.mode
	a.mode = modeSummary
	a.summaryFor = article.ID
	a.summaryErr = nil
	if _, ok := a.summaries[article.ID]; ok {
		a.summaryLoading = false
		return nil
	}
	a.summaryLoading = true
	return a.fetchSummaryCmd(article.ID)
}

func (a *App) toggleSelected() tea.Cmd {
	article := a.selected()
	if article == nil {
		return nil
	}
	return a.toggleBookmarkCmd(article.ID, a.mirror.Has(article.ID))
}

func (a *App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.chatInput.Blur()
		return a, nil
	case "enter":
		text := strings.TrimSpace(a.chatInput.Value())
		if text == "" || a.chatPending {
			return a, nil
		}
		a.chatPending = true
		return a, a.sendChatCmd(text)
	}

	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(msg)
	return a, cmd
}

func (a *App) handleBookmarksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "B":
		a.mode = modeNormal
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.bookmarkCursor < len(a.bookmarks)-1 {
			a.bookmarkCursor++
		}
	case "k", "up":
		if a.bookmarkCursor > 0 {
			a.bookmarkCursor--
		}
	case "enter", "t":
		return a, a.openSummary()
	case "b":
		return a, a.toggleSelected()
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render("Tech-Pulse")
	}

	header := a.renderHeader()
	bar := renderCategoryBar(a.category, a.width)
	contentHeight := max(3, a.height-lipgloss.Height(header)-lipgloss.Height(bar)-3)

	var content string
	switch a.mode {
	case modeSummary:
		content = a.renderSummary(contentHeight)
	case modeChat:
		content = a.renderChat(contentHeight)
	case modeHelp:
		content = a.renderHelp()
	case modeBookmarks:
		content = renderList(a.bookmarks, a.bookmarkCursor, a.mirror.Has, false, contentHeight, a.width-4)
	default:
		content = renderList(a.articles, a.cursor, a.mirror.Has, a.hasMore, contentHeight, a.width-4)
	}
	pane := paneStyle.Width(a.width - 2).Height(contentHeight).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, pane, a.renderStatusBar())
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("Tech-Pulse")
	var right string
	if a.mode == modeSearch {
		right = a.searchInput.View()
	} else if a.search != "" {
		right = headerHintStyle.Render("search: " + a.search)
	} else {
		right = headerHintStyle.Render("/ search")
	}
	gap := max(0, a.width-lipgloss.Width(left)-lipgloss.Width(right)-1)
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderSummary(height int) string {
	article := a.selected()
	if article == nil {
		return ""
	}
	var body string
	switch {
	case a.summaryLoading:
		body = "Generating summary..."
	case a.summaryErr != nil:
		body = errorStyle.Render(client.Message(a.summaryErr))
	default:
		body = a.summaries[article.ID]
	}
	width := max(20, min(a.width-8, 90))
	modal := modalStyle.Width(width).Render(
		modalTitleStyle.Render("TL;DR  "+truncateStr(article.Title, width-10)) + "\n" +
			modalBodyStyle.Render(body) + "\n\n" +
			headerHintStyle.Render(article.URL),
	)
	return lipgloss.Place(a.width-4, height, lipgloss.Center, lipgloss.Center, modal)
}

func (a *App) renderChat(height int) string {
	var lines []string
	for _, m := range a.chat {
		if m.Role == models.ChatRoleUser {
			lines = append(lines, chatUserStyle.Render("you")+"  "+m.Content)
		} else {
			lines = append(lines, chatAssistantStyle.Render("assistant")+"  "+m.Content)
		}
		lines = append(lines, "")
	}
	if a.chatPending {
		lines = append(lines, headerHintStyle.Render("assistant is typing..."))
	}
	transcript := lipgloss.NewStyle().Width(a.width - 6).Render(strings.Join(lines, "\n"))

	// 최신 메시지가 보이도록 아래쪽만 남긴다
	rows := strings.Split(transcript, "\n")
	if keep := height - 2; keep > 0 && len(rows) > keep {
		rows = rows[len(rows)-keep:]
	}
	return strings.Join(rows, "\n") + "\n" + a.chatInput.View()
}

func (a *App) renderHelp() string {
	keys := [][2]string{
		{"j/k", "move"},
		{"1-7", "switch category"},
		{"/", "search (esc clears)"},
		{"enter, t", "TL;DR summary"},
		{"b", "toggle bookmark"},
		{"B", "bookmarks"},
		{"m", "load more"},
		{"r", "reload"},
		{"c", "coding assistant"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "  %-10s %s\n", itemTitleStyle.Render(k[0]), k[1])
	}
	return b.String()
}

func (a *App) renderStatusBar() string {
	var left string
	switch {
	case a.err != nil:
		left = errorStyle.Render(" " + a.err.Error())
	case a.loading:
		left = " loading..."
	case a.status != "":
		left = " " + a.status
	case a.mode == modeBookmarks:
		left = fmt.Sprintf(" %d bookmarks", len(a.bookmarks))
	default:
		left = fmt.Sprintf(" %d articles · %s", len(a.articles), categoryLabel(string(a.category)))
	}

	right := " ? help  q quit "
	switch a.mode {
	case modeSearch:
		right = " esc clear  enter search "
	case modeChat:
		right = " enter send  esc close "
	case modeSummary:
		right = " b bookmark  esc close "
	}

	gap := max(0, a.width-lipgloss.Width(left)-lipgloss.Width(right))
	return statusBarStyle.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}

func Run(opts RunOpts) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
