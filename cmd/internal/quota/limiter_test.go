package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLimit(t *testing.T) {
	l := New(0, 2)
	day := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return day }

	for i := 0; i < 2; i++ {
		ok, err := l.Reserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Reserve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, l.Remaining())

	// 날짜가 바뀌면 초기화된다
	day = day.Add(2 * time.Hour)
	assert.Equal(t, 2, l.Remaining())
	ok, err = l.Reserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnlimited(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < 100; i++ {
		ok, err := l.Reserve(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, -1, l.Remaining())
}

func TestIntervalWaitsAndHonoursCancel(t *testing.T) {
	l := New(1, 0)

	ok, err := l.Reserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	ok, err = l.Reserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestIntervalElapsed(t *testing.T) {
	l := New(60, 0)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ok, _ := l.Reserve(context.Background())
	require.True(t, ok)

	now = now.Add(time.Second)
	ok, err := l.Reserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
