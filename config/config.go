// Package config loads and validates backtester configuration from YAML or
// JSON files, with optional overrides from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete backtester configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	Capital float64 `json:"capital" yaml:"capital"`
}

// StrategyConfig contains the crossover parameters.
type StrategyConfig struct {
	FastPeriod int `json:"fast_period" yaml:"fast_period"`
	SlowPeriod int `json:"slow_period" yaml:"slow_period"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Capital: 100_000,
		},
		Strategy: StrategyConfig{
			FastPeriod: 13,
			SlowPeriod: 21,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./backtester.sqlite",
		},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON), then applies
// environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Capital <= 0 {
		return fmt.Errorf("account.capital must be positive")
	}
	if c.Strategy.FastPeriod < 1 {
		return fmt.Errorf("strategy.fast_period must be positive")
	}
	if c.Strategy.SlowPeriod < 1 {
		return fmt.Errorf("strategy.slow_period must be positive")
	}
	if c.Strategy.FastPeriod >= c.Strategy.SlowPeriod {
		return fmt.Errorf("strategy.fast_period must be less than slow_period")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.RunsFile == "" {
			return fmt.Errorf("journal trades_file and runs_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// applyEnv overlays BACKTESTER_* environment variables, loading a local .env
// file first if one exists.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("BACKTESTER_CAPITAL"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			c.Account.Capital = x
		}
	}
	if v := os.Getenv("BACKTESTER_FAST_PERIOD"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			c.Strategy.FastPeriod = x
		}
	}
	if v := os.Getenv("BACKTESTER_SLOW_PERIOD"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			c.Strategy.SlowPeriod = x
		}
	}
	if v := os.Getenv("BACKTESTER_DB_PATH"); v != "" {
		c.Journal.DBPath = v
	}
}
