package feeder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/feeder"
	"tech-pulse/models"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Cloud Weekly</title>
  <item>
    <title>Serverless at scale</title>
    <link>https://cloud.example/serverless</link>
    <description>How we run functions</description>
    <enclosure url="https://cloud.example/fn.png" type="image/png" length="0"/>
    <pubDate>Sat, 01 Mar 2025 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Kubernetes cost tips</title>
    <link>https://cloud.example/k8s</link>
    <description>&lt;img src="/k8s.jpg"&gt; Save money on clusters</description>
    <pubDate>Sat, 01 Mar 2025 12:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Old news</title>
    <link>https://cloud.example/old</link>
    <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchCategoryFeedsNewestFirst(t *testing.T) {
	srv := newFeedServer(t)
	f := feeder.New(map[string][]string{"cloud": {srv.URL + "/broken", srv.URL + "/feed"}}, srv.Client())

	items, err := f.Search(context.Background(), models.NewsSearch{
		Query: models.CategoryCloud.SearchTerms(), Category: models.CategoryCloud, Max: 2,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Kubernetes cost tips", items[0].Title)
	assert.Equal(t, "Serverless at scale", items[1].Title)
	assert.Equal(t, "Cloud Weekly", items[0].SourceName)
	assert.Equal(t, "2025-03-01T12:00:00Z", items[0].PublishedAt)

	// 이미지: 본문 HTML 의 상대 경로, enclosure
	assert.Equal(t, "https://cloud.example/k8s.jpg", items[0].Image)
	assert.Equal(t, "https://cloud.example/fn.png", items[1].Image)
}

func TestSearchFiltersByUserTerm(t *testing.T) {
	srv := newFeedServer(t)
	f := feeder.New(map[string][]string{"cloud": {srv.URL + "/feed"}}, srv.Client())

	items, err := f.Search(context.Background(), models.NewsSearch{Query: "clusters", Category: models.CategoryAll})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://cloud.example/k8s", items[0].URL)
}

func TestSearchUnknownCategory(t *testing.T) {
	f := feeder.New(map[string][]string{"cloud": {"http://unused"}}, nil)
	_, err := f.Search(context.Background(), models.NewsSearch{Category: models.CategoryAI})
	assert.ErrorIs(t, err, feeder.ErrNoFeeds)
}
