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
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 13, cfg.Strategy.FastPeriod)
	assert.Equal(t, 21, cfg.Strategy.SlowPeriod)
	assert.Equal(t, 100_000.0, cfg.Account.Capital)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capital", func(c *Config) { c.Account.Capital = 0 }},
		{"negative fast", func(c *Config) { c.Strategy.FastPeriod = -1 }},
		{"fast not below slow", func(c *Config) { c.Strategy.FastPeriod = 21 }},
		{"bad journal type", func(c *Config) { c.Journal.Type = "postgres" }},
		{"csv without files", func(c *Config) { c.Journal.Type = "csv" }},
		{"sqlite without path", func(c *Config) { c.Journal.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
account:
  capital: 250000
strategy:
  fast_period: 9
  slow_period: 26
journal:
  type: none
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 250_000.0, cfg.Account.Capital)
	assert.Equal(t, 9, cfg.Strategy.FastPeriod)
	assert.Equal(t, 26, cfg.Strategy.SlowPeriod)
	assert.Equal(t, "none", cfg.Journal.Type)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"account":{"capital":5000},"strategy":{"fast_period":5,"slow_period":10},"journal":{"type":"none"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.Account.Capital)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("BACKTESTER_CAPITAL", "75000")
	t.Setenv("BACKTESTER_FAST_PERIOD", "8")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "account:\n  capital: 10000\njournal:\n  type: none\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 75_000.0, cfg.Account.Capital)
	assert.Equal(t, 8, cfg.Strategy.FastPeriod)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			cfg := Default()
			cfg.Account.Capital = 42_000

			require.NoError(t, cfg.SaveToFile(path))

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, 42_000.0, loaded.Account.Capital)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
