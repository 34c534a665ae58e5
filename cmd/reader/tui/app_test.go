package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/cmd/reader/client"
	"tech-pulse/models"
)

type fakeAPI struct {
	mu         sync.Mutex
	queries    []client.NewsQuery
	total      int
	pageCap    int
	newsErr    error
	summaries  int
	chatErr    error
	bookmarked map[string]bool
}

func newFakeAPI(total int) *fakeAPI {
	return &fakeAPI{total: total, bookmarked: map[string]bool{}}
}

func (f *fakeAPI) News(_ context.Context, q client.NewsQuery) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.newsErr != nil {
		return nil, f.newsErr
	}
	// 실제 서버처럼 offset 은 무시하고 항상 첫 페이지부터 돌려준다
	limit := q.Limit
	if f.pageCap > 0 && limit > f.pageCap {
		limit = f.pageCap
	}
	var out []models.Article
	for i := 0; i < f.total && len(out) < limit; i++ {
		out = append(out, models.Article{
			ID:          fmt.Sprintf("%s-%d", q.Category, i),
			Title:       fmt.Sprintf("article %d", i),
			Category:    q.Category,
			PublishedAt: time.Now(),
		})
	}
	return out, nil
}

func (f *fakeAPI) lastQuery() client.NewsQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *fakeAPI) Summary(_ context.Context, id string) (models.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries++
	return models.Summary{ArticleID: id, Summary: "• tl;dr of " + id}, nil
}

func (f *fakeAPI) Chat(_ context.Context, message string) (string, error) {
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return "answer to " + message, nil
}

func (f *fakeAPI) Bookmarks(context.Context) ([]models.BookmarkedArticle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BookmarkedArticle
	for id, ok := range f.bookmarked {
		if ok {
			out = append(out, models.BookmarkedArticle{Article: models.Article{ID: id, Title: id}})
		}
	}
	return out, nil
}

func (f *fakeAPI) AddBookmark(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookmarked[id] = true
	return nil
}

func (f *fakeAPI) RemoveBookmark(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookmarked, id)
	return nil
}

func newTestApp(t *testing.T, api *fakeAPI) *App {
	t.Helper()
	a, err := NewApp(RunOpts{API: api, MirrorPath: filepath.Join(t.TempDir(), "bookmarks.json")})
	require.NoError(t, err)
	a.Update(a.loadArticlesCmd()())
	return a
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run 은 cmd 를 실행해 나온 메시지를 App 에 다시 넣고 후속 cmd 를 돌려준다.
func run(t *testing.T, a *App, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := a.Update(cmd())
	return next
}

func TestInitialLoad(t *testing.T) {
	api := newFakeAPI(25)
	a := newTestApp(t, api)

	assert.Len(t, a.articles, pageSize)
	assert.True(t, a.hasMore)
	assert.False(t, a.loading)
	assert.Equal(t, client.NewsQuery{Category: "all", Limit: pageSize}, api.lastQuery())
}

func TestSearchIsDebounced(t *testing.T) {
	api := newFakeAPI(5)
	a := newTestApp(t, api)

	a.Update(key("/"))
	require.Equal(t, modeSearch, a.mode)
	a.Update(key("g"))
	a.Update(key("o"))
	assert.Equal(t, "go", a.searchInput.Value())
	assert.Empty(t, a.search, "search term must not apply while typing")
	assert.Equal(t, 2, a.searchSeq)

	// 이전 입력의 틱은 무시된다
	_, cmd := a.Update(searchTickMsg{seq: 1})
	assert.Nil(t, cmd)
	assert.Empty(t, a.search)

	_, cmd = a.Update(searchTickMsg{seq: 2})
	assert.Equal(t, "go", a.search)
	run(t, a, cmd)
	assert.Equal(t, "go", api.lastQuery().Search)

	// 같은 검색어로 다시 틱이 와도 재요청하지 않는다
	_, cmd = a.Update(searchTickMsg{seq: a.searchSeq})
	assert.Nil(t, cmd)
}

func TestSearchEnterAppliesImmediately(t *testing.T) {
	api := newFakeAPI(5)
	a := newTestApp(t, api)

	a.Update(key("/"))
	a.Update(key("k8s"))
	pending := a.searchSeq
	_, cmd := a.Update(key("enter"))
	assert.Equal(t, modeNormal, a.mode)
	assert.Equal(t, "k8s", a.search)
	run(t, a, cmd)

	// enter 이후 도착한 예전 틱은 무효다
	_, cmd = a.Update(searchTickMsg{seq: pending})
	assert.Nil(t, cmd)

	a.Update(key("/"))
	_, cmd = a.Update(key("esc"))
	assert.Empty(t, a.search)
	run(t, a, cmd)
	assert.Empty(t, api.lastQuery().Search)
}

func TestCategorySwitchClearsSearch(t *testing.T) {
	api := newFakeAPI(5)
	a := newTestApp(t, api)
	a.search = "rust"
	a.searchInput.SetValue("rust")

	_, cmd := a.Update(key("3"))
	assert.Equal(t, models.CategoryProgramming, a.category)
	assert.Empty(t, a.search)
	assert.Empty(t, a.searchInput.Value())
	run(t, a, cmd)
	assert.Equal(t, client.NewsQuery{Category: "programming", Limit: pageSize}, api.lastQuery())

	// 같은 카테고리는 재요청하지 않는다
	_, cmd = a.Update(key("3"))
	assert.Nil(t, cmd)
}

func TestStaleResponseIsDropped(t *testing.T) {
	api := newFakeAPI(5)
	a := newTestApp(t, api)

	stale := a.loadArticlesCmd()
	a.Update(key("2"))
	a.Update(stale())
	assert.Empty(t, a.articles, "response for the previous category must be ignored")
	assert.True(t, a.loading)
}

func TestLoadMoreGrowsLimit(t *testing.T) {
	api := newFakeAPI(25)
	a := newTestApp(t, api)
	a.cursor = 5

	_, cmd := a.Update(key("m"))
	require.NotNil(t, cmd)
	// 로딩 중에는 중복 요청하지 않는다
	_, dup := a.Update(key("m"))
	assert.Nil(t, dup)

	run(t, a, cmd)
	assert.Equal(t, client.NewsQuery{Category: "all", Limit: 2 * pageSize}, api.lastQuery())
	assert.Len(t, a.articles, 25)
	assert.False(t, a.hasMore)
	assert.Equal(t, "all-24", a.articles[24].ID)
	assert.Equal(t, 5, a.cursor)

	_, cmd = a.Update(key("m"))
	assert.Nil(t, cmd)
}

func TestLoadMoreWithCappedServerPage(t *testing.T) {
	api := newFakeAPI(100)
	api.pageCap = pageSize
	a := newTestApp(t, api)
	require.True(t, a.hasMore)

	_, cmd := a.Update(key("m"))
	run(t, a, cmd)
	// 서버가 같은 첫 페이지만 돌려주면 중복 없이 멈춘다
	assert.Len(t, a.articles, pageSize)
	assert.False(t, a.hasMore)
	ids := map[string]bool{}
	for _, art := range a.articles {
		assert.False(t, ids[art.ID], "duplicate %s", art.ID)
		ids[art.ID] = true
	}
}

func TestLoadMoreFailureRestoresLimit(t *testing.T) {
	api := newFakeAPI(40)
	a := newTestApp(t, api)

	api.newsErr = errors.New("Rate limit protection active. Please try again in a moment.")
	_, cmd := a.Update(key("m"))
	run(t, a, cmd)
	require.Error(t, a.err)
	assert.Len(t, a.articles, pageSize)
	assert.Equal(t, pageSize, a.limit)
	assert.True(t, a.hasMore)

	api.newsErr = nil
	_, cmd = a.Update(key("m"))
	run(t, a, cmd)
	assert.Len(t, a.articles, 40)
	assert.Equal(t, 2*pageSize, api.lastQuery().Limit)
}

func TestSummaryIsCachedPerArticle(t *testing.T) {
	api := newFakeAPI(3)
	a := newTestApp(t, api)

	_, cmd := a.Update(key("enter"))
	assert.Equal(t, modeSummary, a.mode)
	assert.True(t, a.summaryLoading)
	run(t, a, cmd)
	assert.False(t, a.summaryLoading)
	assert.Equal(t, "• tl;dr of all-0", a.summaries["all-0"])

	a.Update(key("esc"))
	assert.Equal(t, modeNormal, a.mode)
	_, cmd = a.Update(key("t"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, api.summaries)

	a.Update(key("esc"))
	a.Update(key("j"))
	_, cmd = a.Update(key("t"))
	run(t, a, cmd)
	assert.Equal(t, 2, api.summaries)
}

func TestBookmarkToggleUpdatesMirror(t *testing.T) {
	api := newFakeAPI(3)
	a := newTestApp(t, api)

	_, cmd := a.Update(key("b"))
	run(t, a, cmd)
	assert.True(t, api.bookmarked["all-0"])
	assert.True(t, a.mirror.Has("all-0"))
	assert.Equal(t, bookmarkAdded, a.status)

	reloaded, err := loadMirror(a.mirror.path)
	require.NoError(t, err)
	assert.True(t, reloaded.Has("all-0"))

	_, cmd = a.Update(key("b"))
	run(t, a, cmd)
	assert.False(t, api.bookmarked["all-0"])
	assert.False(t, a.mirror.Has("all-0"))
	assert.Equal(t, bookmarkRemoved, a.status)
}

func TestBookmarksViewSyncsMirrorFromServer(t *testing.T) {
	api := newFakeAPI(3)
	api.bookmarked["server-only"] = true
	a := newTestApp(t, api)
	require.NoError(t, a.mirror.Set("local-only", true))

	_, cmd := a.Update(key("B"))
	assert.Equal(t, modeBookmarks, a.mode)
	run(t, a, cmd)
	require.Len(t, a.bookmarks, 1)
	assert.Equal(t, []string{"server-only"}, a.mirror.IDs())

	// 목록에서 해제하면 다시 읽는다
	_, cmd = a.Update(key("b"))
	reload := run(t, a, cmd)
	run(t, a, reload)
	assert.Empty(t, a.bookmarks)
	assert.Empty(t, a.mirror.IDs())
}

func TestChatTranscript(t *testing.T) {
	api := newFakeAPI(1)
	a := newTestApp(t, api)
	require.Len(t, a.chat, 1)

	a.Update(key("c"))
	require.Equal(t, modeChat, a.mode)

	// 빈 메시지는 보내지 않는다
	_, cmd := a.Update(key("enter"))
	assert.Nil(t, cmd)

	a.Update(key("what is a goroutine"))
	_, cmd = a.Update(key("enter"))
	assert.True(t, a.chatPending)
	_, dup := a.Update(key("enter"))
	assert.Nil(t, dup)

	run(t, a, cmd)
	require.Len(t, a.chat, 3)
	assert.Equal(t, models.ChatRoleUser, a.chat[1].Role)
	assert.Equal(t, "what is a goroutine", a.chat[1].Content)
	assert.Equal(t, "answer to what is a goroutine", a.chat[2].Content)
	assert.Empty(t, a.chatInput.Value())

	api.chatErr = errors.New("down")
	a.Update(key("again"))
	_, cmd = a.Update(key("enter"))
	run(t, a, cmd)
	assert.Len(t, a.chat, 3)
	require.Error(t, a.err)
	assert.Equal(t, chatSendFailed, a.err.Error())
	assert.Equal(t, "again", a.chatInput.Value())
}

func TestViewRenders(t *testing.T) {
	a := newTestApp(t, newFakeAPI(3))
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := a.View()
	assert.Contains(t, out, "Tech-Pulse")
	assert.Contains(t, out, "article 0")
}
