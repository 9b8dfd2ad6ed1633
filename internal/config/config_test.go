package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Scan.MaxPages)
	assert.Equal(t, 5, cfg.Scan.Concurrency)
	assert.Equal(t, 10, cfg.Scan.FetchTimeoutSecs)
	assert.Equal(t, 90, cfg.Scan.TimeoutSecs)
	assert.InDelta(t, 10.0, cfg.Scan.RequestsPerSec, 0.001)
	assert.Contains(t, cfg.Scan.UserAgent, "Mozilla/5.0")
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "prospect.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.Anthropic.Model)
	assert.Equal(t, 4096, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chdirTemp(t)

	yaml := `
scan:
  max_pages: 5
  concurrency: 2
store:
  driver: postgres
  database_url: postgres://localhost/prospect
log:
  level: debug
  format: console
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Scan.MaxPages)
	assert.Equal(t, 2, cfg.Scan.Concurrency)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/prospect", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched values keep their defaults
	assert.Equal(t, 90, cfg.Scan.TimeoutSecs)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PROSPECT_SCAN_MAX_PAGES", "7")
	t.Setenv("PROSPECT_ANTHROPIC_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Scan.MaxPages)
	assert.Equal(t, "test-key", cfg.Anthropic.Key)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	assert.Error(t, InitLogger(LogConfig{Level: "not-a-level"}))
}
