package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "E6", cfg.DefaultSeries)
	assert.Equal(t, 0, cfg.Decades.Min)
	assert.Equal(t, 6, cfg.Decades.Max)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file merges over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("default_series: E24\n"), 0o600))

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "E24", cfg.DefaultSeries)
		assert.Equal(t, Default().Decades, cfg.Decades)
	})

	t.Run("full file", func(t *testing.T) {
		content := `default_series: E96
decades:
  min: 1
  max: 4
logging:
  level: debug
  format: json
`
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "E96", cfg.DefaultSeries)
		assert.Equal(t, DecadesConfig{Min: 1, Max: 4}, cfg.Decades)
		assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("default_series: [\n"), 0o600))

		_, err := LoadFrom(path)
		assert.Error(t, err)
	})

	t.Run("inverted decades rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("decades:\n  min: 5\n  max: 2\n"), 0o600))

		_, err := LoadFrom(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decades")
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:  "trace",
		EnvLogFormat: "json",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	t.Run("unset variables leave config alone", func(t *testing.T) {
		cfg := Default()
		cfg.ApplyEnv(func(string) (string, bool) { return "", false })
		assert.Equal(t, Default(), cfg)
	})
}
