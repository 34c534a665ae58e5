package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/models"
	"tech-pulse/repositories"
)

func TestBookmarkServiceRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store := repositories.NewMemoryStoreWithClock(func() time.Time { return now })
	seedArticle(t, store, models.Article{ID: "a1", Title: "first"})
	seedArticle(t, store, models.Article{ID: "a2", Title: "second"})
	svc := NewBookmarkService(store)
	ctx := context.Background()

	ok, err := svc.Status(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, ok)

	b1, err := svc.Add(ctx, "a1")
	require.NoError(t, err)
	again, err := svc.Add(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, b1, again)

	now = now.Add(time.Minute)
	_, err = svc.Add(ctx, "a2")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID)
	assert.Equal(t, "a1", list[1].ID)
	assert.Equal(t, b1.CreatedAt, list[1].BookmarkedAt)

	require.NoError(t, svc.Remove(ctx, "a1"))
	ok, _ = svc.Status(ctx, "a1")
	assert.False(t, ok)
	assert.ErrorIs(t, svc.Remove(ctx, "a1"), repositories.ErrNotFound)
}

func TestBookmarkServiceListSkipsMissingArticles(t *testing.T) {
	store := repositories.NewMemoryStore()
	seedArticle(t, store, models.Article{ID: "a1", Title: "kept"})
	svc := NewBookmarkService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "a1")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "ghost")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "kept", list[0].Title)
}
