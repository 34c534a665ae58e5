package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/cmd/api/clients/llmclient"
	"tech-pulse/models"
	"tech-pulse/repositories"
)

type fakeCompleter struct {
	mu       sync.Mutex
	calls    int
	answer   string
	err      error
	messages []llmclient.Message
	opts     llmclient.Options
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(_ context.Context, messages []llmclient.Message, opts llmclient.Options) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.messages = messages
	f.opts = opts
	return f.answer, f.err
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(context.Context, string) (string, error) {
	f.calls++
	return f.text, f.err
}

func seedArticle(t *testing.T, store repositories.Store, a models.Article) models.Article {
	t.Helper()
	saved, err := store.CreateArticle(context.Background(), a)
	require.NoError(t, err)
	return saved
}

func TestGenerateSummaryIsIdempotent(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedArticle(t, store, models.Article{ID: "a1", Title: "Go 1.25", Description: models.OptionalString("desc")})
	llm := &fakeCompleter{answer: "• first answer"}
	svc := NewSummaryService(store, llm, nil)

	first, err := svc.Generate(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "• first answer", first.Summary)

	llm.answer = "• second answer"
	second, err := svc.Generate(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, llm.calls)
}

func TestGenerateSummaryPromptAndOptions(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedArticle(t, store, models.Article{ID: "a1", Title: "Title here", Content: models.OptionalString("Body text")})
	llm := &fakeCompleter{answer: "ok"}

	_, err := NewSummaryService(store, llm, nil).Generate(context.Background(), "a1")
	require.NoError(t, err)

	require.Len(t, llm.messages, 1)
	assert.Equal(t, llmclient.RoleUser, llm.messages[0].Role)
	assert.Contains(t, llm.messages[0].Content, "in bullet points (3-4 points max)")
	assert.Contains(t, llm.messages[0].Content, "Title: Title here\nDescription: \nContent: Body text")
	assert.Equal(t, llmclient.Options{MaxTokens: 200, Temperature: 0.3}, llm.opts)
}

func TestGenerateSummaryArticleNotFound(t *testing.T) {
	llm := &fakeCompleter{answer: "ok"}
	_, err := NewSummaryService(repositories.NewMemoryStore(), llm, nil).Generate(context.Background(), "missing")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Zero(t, llm.calls)
}

func TestGenerateSummaryFallbacks(t *testing.T) {
	article := models.Article{
		ID:          "a1",
		Title:       "Kubernetes 1.33: sidecars graduate",
		Description: models.OptionalString("Native sidecar containers are now stable in this release. Short one. Pod lifecycle handling was also reworked."),
	}
	wantFallback := "• Kubernetes 1.33\n• Native sidecar containers are now stable in this release\n• Pod lifecycle handling was also reworked"

	testCases := []struct {
		name string
		llm  llmclient.Completer
		want string
	}{
		{name: "no provider", llm: nil, want: wantFallback},
		{name: "no credential", llm: &fakeCompleter{err: llmclient.ErrNoCredential}, want: wantFallback},
		{name: "provider error", llm: &fakeCompleter{err: errors.New("boom")}, want: wantFallback},
		{name: "empty answer", llm: &fakeCompleter{answer: "   "}, want: summaryGenerationFailed},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			store := repositories.NewMemoryStore()
			seedArticle(t, store, article)

			got, err := NewSummaryService(store, testCase.llm, nil).Generate(context.Background(), "a1")
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got.Summary)
			assert.Equal(t, "a1", got.ArticleID)
		})
	}
}

func TestGenerateSummaryEnrichesTruncatedContent(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedArticle(t, store, models.Article{
		ID:      "a1",
		Title:   "t",
		URL:     "https://example.com/a1",
		Content: models.OptionalString("The first part of the story... [2412 chars]"),
	})
	llm := &fakeCompleter{answer: "ok"}
	ext := &fakeExtractor{text: "Full article body"}

	_, err := NewSummaryService(store, llm, ext).Generate(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, 1, ext.calls)
	assert.Contains(t, llm.messages[0].Content, "Content: Full article body")

	// 저장된 기사는 바뀌지 않는다
	stored, err := store.GetArticle(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "The first part of the story... [2412 chars]", stored.ContentText())
}

func TestGenerateSummaryKeepsContentWhenExtractionFails(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedArticle(t, store, models.Article{ID: "a1", Title: "t", URL: "https://example.com/a1"})
	llm := &fakeCompleter{answer: "ok"}
	ext := &fakeExtractor{err: errors.New("blocked")}

	_, err := NewSummaryService(store, llm, ext).Generate(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, ext.calls)
	assert.Contains(t, llm.messages[0].Content, "Content: ")
}

func TestGenerateSummarySkipsEnrichmentForFullContent(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedArticle(t, store, models.Article{ID: "a1", Title: "t", URL: "https://example.com/a1", Content: models.OptionalString("Complete body.")})
	ext := &fakeExtractor{text: "unused"}

	_, err := NewSummaryService(store, &fakeCompleter{answer: "ok"}, ext).Generate(context.Background(), "a1")
	require.NoError(t, err)
	assert.Zero(t, ext.calls)
}

func TestFallbackSummary(t *testing.T) {
	testCases := []struct {
		name    string
		article models.Article
		want    string
	}{
		{
			name:    "title without colon",
			article: models.Article{Title: "Rust in the kernel"},
			want:    "• Rust in the kernel",
		},
		{
			name:    "short sentences are skipped",
			article: models.Article{Title: "T", Description: models.OptionalString("Too short. Also short.")},
			want:    "• T",
		},
		{
			name:    "at most two sentences",
			article: models.Article{Description: models.OptionalString("The first sentence is long enough. The second sentence is long enough. The third sentence is long enough.")},
			want:    "• The first sentence is long enough\n• The second sentence is long enough",
		},
		{
			name:    "nothing available",
			article: models.Article{},
			want:    summaryUnavailable,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, fallbackSummary(testCase.article))
		})
	}
}
