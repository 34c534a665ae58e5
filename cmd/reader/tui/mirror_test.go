package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookmarks.json")

	m, err := loadMirror(path)
	require.NoError(t, err)
	assert.Empty(t, m.IDs())

	require.NoError(t, m.Set("b", true))
	require.NoError(t, m.Set("a", true))
	require.NoError(t, m.Set("b", false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, string(raw))

	reloaded, err := loadMirror(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Has("a"))
	assert.False(t, reloaded.Has("b"))
}

func TestMirrorReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	m, err := loadMirror(path)
	require.NoError(t, err)
	require.NoError(t, m.Set("stale", true))

	require.NoError(t, m.Replace([]string{"x", "y"}))
	assert.Equal(t, []string{"x", "y"}, m.IDs())
}

func TestMirrorCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loadMirror(path)
	assert.Error(t, err)
}

func TestMirrorWithoutPath(t *testing.T) {
	m, err := loadMirror("")
	require.NoError(t, err)
	require.NoError(t, m.Set("a", true))
	assert.True(t, m.Has("a"))
}
