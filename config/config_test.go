package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "gnews", c.News.Provider)
	assert.Equal(t, "memory", c.Storage.Backend)
	assert.Equal(t, 5*time.Minute, c.News.FreshnessDuration())
	assert.Equal(t, 10*time.Second, c.News.CooldownDuration())
	assert.Equal(t, 1024, c.News.MaxTrackedKeys)
}

func TestDurationFallbacks(t *testing.T) {
	n := NewsConfig{Freshness: "invalid", Cooldown: "-1s", Timeout: ""}
	assert.Equal(t, 5*time.Minute, n.FreshnessDuration())
	assert.Equal(t, 10*time.Second, n.CooldownDuration())
	assert.Equal(t, 15*time.Second, n.TimeoutDuration())

	n = NewsConfig{Freshness: "30s", Cooldown: "2s"}
	assert.Equal(t, 30*time.Second, n.FreshnessDuration())
	assert.Equal(t, 2*time.Second, n.CooldownDuration())
}

func TestYAMLOverridesDefaults(t *testing.T) {
	c := Default()
	raw := []byte(`
news:
  cooldown: 3s
llm:
  provider: google
  model_name: gemini-2.5-flash
`)
	require.NoError(t, yaml.Unmarshal(raw, &c))

	assert.Equal(t, 3*time.Second, c.News.CooldownDuration())
	assert.Equal(t, "google", c.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", c.LLM.ModelName)
	// untouched keys keep their defaults
	assert.Equal(t, 5*time.Minute, c.News.FreshnessDuration())
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestGetBasePathFindsConfigInParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, CONFIG_FILE), []byte("{}"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	t.Chdir(nested)

	got, err := filepath.EvalSymlinks(GetBasePath())
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
