package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{EnvAPIURL, EnvStorage, EnvRedisAddr, EnvThemeFile, EnvLogLevel} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "kanbo")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddTask)
	assert.Equal(t, "enter", defaults.ViewTask)
	assert.Equal(t, "esc", defaults.Back)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, ".kanbo", "storage.yaml"), cfg.Storage.Path)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.NotEmpty(t, cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://kanban.example.com"
request_timeout: 5s
storage:
  backend: sqlite
key_mappings:
  quit: "x"
  add_task: "n"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://kanban.example.com", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, ".kanbo", "kanbo.db"), cfg.Storage.Path)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddTask)
	assert.Equal(t, "h", cfg.KeyMappings.PrevColumn, "missing keys fall back to defaults")
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "api_url: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://from-file"`)
	t.Setenv(EnvAPIURL, "https://from-env")
	t.Setenv(EnvStorage, "redis")
	t.Setenv(EnvRedisAddr, "cache:6380")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://from-env", cfg.APIURL)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Storage.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.Storage.Path, "redis has no file path")
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)
	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themeFile, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`), 0o644))
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.Edit)
	assert.NotEmpty(t, cfg.ColorScheme.Delete, "other colors keep their defaults")
}

func TestSaveAndSet(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.NoError(t, cfg.Set("api_url", "https://saved"))
	require.NoError(t, cfg.Set("storage.redis_db", "3"))
	require.NoError(t, cfg.Set("request_timeout", "10s"))
	assert.ErrorIs(t, cfg.Set("nope", "x"), ErrUnknownKey)
	assert.Error(t, cfg.Set("storage.redis_db", "three"))
	require.NoError(t, cfg.Save())

	reloaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://saved", reloaded.APIURL)
	assert.Equal(t, 3, reloaded.Storage.RedisDB)
	assert.Equal(t, 10*time.Second, reloaded.RequestTimeout)
}

func TestEdit(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "https://from-env")

	path, err := Path()
	require.NoError(t, err)

	require.NoError(t, Edit(path, "storage.backend", "sqlite"))
	require.NoError(t, Edit(path, "log_level", "debug"))
	assert.ErrorIs(t, Edit(path, "nope", "x"), ErrUnknownKey)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "https://from-env", "environment overrides are not saved")

	t.Setenv(EnvAPIURL, "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}
