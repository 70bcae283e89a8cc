// Package config loads and persists the application configuration
// from ~/.config/ordsok/config.yaml and ORDSOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sjursen/ordsok/internal/search"
)

// ErrConfigNotFound is returned when no usable configuration is found
var ErrConfigNotFound = errors.New("configuration not found")

// Default search settings applied when the config file omits them
const (
	DefaultThreshold = 0.6
	DefaultLimit     = 15
	DefaultPageSize  = 15
)

// Config holds the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Search   SearchConfig   `mapstructure:"search" yaml:"search"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
}

// DatabaseConfig holds dictionary store settings
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// SearchConfig holds search behavior settings
type SearchConfig struct {
	Threshold    float64           `mapstructure:"threshold" yaml:"threshold"` // Fuzzy similarity cutoff, (0, 1]
	Limit        int               `mapstructure:"limit" yaml:"limit"`         // Maximum candidates shown
	PageSize     int               `mapstructure:"page_size" yaml:"page_size"` // Disambiguation menu page size
	Fallback     bool              `mapstructure:"fallback" yaml:"fallback"`   // Retry exact misses with fuzzy, then prefix
	Replacements []ReplacementRule `mapstructure:"replacements" yaml:"replacements,omitempty"`
}

// ReplacementRule is one digraph substitution applied to queries
type ReplacementRule struct {
	From string `mapstructure:"from" yaml:"from"`
	To   string `mapstructure:"to" yaml:"to"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Interactive bool `mapstructure:"interactive" yaml:"interactive"`
}

// DefaultDatabasePath returns the standard dictionary location
func DefaultDatabasePath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "ordsok", "ordbok.db")
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "ordsok")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".") // Also check current directory

	viper.SetEnvPrefix("ORDSOK")
	viper.AutomaticEnv()

	viper.SetDefault("database.path", DefaultDatabasePath())
	viper.SetDefault("search.threshold", DefaultThreshold)
	viper.SetDefault("search.limit", DefaultLimit)
	viper.SetDefault("search.page_size", DefaultPageSize)
	viper.SetDefault("search.fallback", true)
	viper.SetDefault("ui.interactive", true)

	// Try to read config file (it's okay if it doesn't exist)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Database.Path == "" {
		return nil, ErrConfigNotFound
	}
	cfg.Database.Path = expandPath(cfg.Database.Path)

	// Out-of-range values fall back to defaults
	if cfg.Search.Threshold <= 0 || cfg.Search.Threshold > 1 {
		cfg.Search.Threshold = DefaultThreshold
	}
	if cfg.Search.Limit <= 0 {
		cfg.Search.Limit = DefaultLimit
	}
	if cfg.Search.PageSize <= 0 {
		cfg.Search.PageSize = DefaultPageSize
	}

	return &cfg, nil
}

// ReplacementTable converts the configured substitution rules to the
// search package's form. Nil when none are configured, which selects
// the built-in Norwegian digraph table.
func (c *SearchConfig) ReplacementTable() []search.Replacement {
	if len(c.Replacements) == 0 {
		return nil
	}
	out := make([]search.Replacement, 0, len(c.Replacements))
	for _, r := range c.Replacements {
		out = append(out, search.Replacement{From: r.From, To: r.To})
	}
	return out
}

// expandPath expands ~ to home directory in paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home := os.Getenv("HOME")
		if len(path) == 1 {
			return home
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() error {
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "ordsok")
	return os.MkdirAll(configDir, 0755)
}

// ExampleConfigPath returns the path where the example config should be created
func ExampleConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "ordsok", "config.yaml.example")
}

// Save saves the current configuration to file
func (c *Config) Save() error {
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "ordsok")
	configPath := filepath.Join(configDir, "config.yaml")

	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("database.path", c.Database.Path)
	viper.Set("search.threshold", c.Search.Threshold)
	viper.Set("search.limit", c.Search.Limit)
	viper.Set("search.page_size", c.Search.PageSize)
	viper.Set("search.fallback", c.Search.Fallback)
	viper.Set("ui.interactive", c.UI.Interactive)

	rules := make([]map[string]string, 0, len(c.Search.Replacements))
	for _, r := range c.Search.Replacements {
		rules = append(rules, map[string]string{"from": r.From, "to": r.To})
	}
	viper.Set("search.replacements", rules)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateExampleConfig creates an example configuration file
func CreateExampleConfig() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	exampleConfig := `# ordsok configuration file
# Place this file at ~/.config/ordsok/config.yaml

database:
  # Dictionary database location (read-only SQLite file)
  path: "~/.local/share/ordsok/ordbok.db"

search:
  # Fuzzy similarity cutoff, between 0 and 1 (optional, defaults to 0.6)
  threshold: 0.6

  # Maximum candidates shown (optional, defaults to 15)
  limit: 15

  # Disambiguation menu page size, at most 26 (optional, defaults to 15)
  page_size: 15

  # Retry exact misses with fuzzy, then prefix search (optional, defaults to true)
  fallback: true

  # Query digraph substitutions (optional, defaults to aa/oe/ae)
  # replacements:
  #   - from: "aa"
  #     to: "å"
  #   - from: "oe"
  #     to: "ø"
  #   - from: "ae"
  #     to: "æ"

ui:
  # Show the disambiguation menu on multiple matches (optional, defaults to true)
  interactive: true

# Environment variables can also be used:
# ORDSOK_DATABASE_PATH=/path/to/ordbok.db
`

	examplePath := ExampleConfigPath()
	return os.WriteFile(examplePath, []byte(exampleConfig), 0644)
}
