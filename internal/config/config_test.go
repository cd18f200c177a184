package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kadane.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: DEBUG
  format: json
example: [1, 2, -10, 5]
checked: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []int64{1, 2, -10, 5}, cfg.Example)
	assert.False(t, cfg.Checked)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultConfig().Example, cfg.Example)
	assert.True(t, cfg.Checked)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "logging: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := Load(writeConfig(t, "logging:\n  level: loud\n"))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "logging:\n  format: xml\n"))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("path is a directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("level and format", func(t *testing.T) {
		t.Setenv("KADANE_LOG_LEVEL", "error")
		t.Setenv("KADANE_LOG_FORMAT", "json")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("KADANE_CHECKED", "false")

		cfg, err := Load(writeConfig(t, "checked: true\n"))
		require.NoError(t, err)
		assert.False(t, cfg.Checked)
	})

	t.Run("unparseable bool is ignored", func(t *testing.T) {
		t.Setenv("KADANE_CHECKED", "maybe")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Checked)
	})

	t.Run("invalid override fails validation", func(t *testing.T) {
		t.Setenv("KADANE_LOG_LEVEL", "trace")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, ErrInvalid)
	})
}
