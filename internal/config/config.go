// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Catalog CatalogConfig `toml:"catalog"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path" env:"WEEKENDLY_DB_PATH"`
	Key    string `toml:"key"`
}

// CatalogConfig points at a custom activity catalog.
type CatalogConfig struct {
	Path string `toml:"path" env:"WEEKENDLY_CATALOG_PATH"` // empty uses the built-in catalog
}

// UIConfig holds board settings.
type UIConfig struct {
	Theme   string `toml:"theme" env:"WEEKENDLY_THEME"`     // "dark" or "light"
	Density string `toml:"density" env:"WEEKENDLY_DENSITY"` // "compact" or "comfortable"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Dir   string `toml:"dir" env:"WEEKENDLY_LOG_DIR"`
	Debug bool   `toml:"debug" env:"WEEKENDLY_DEBUG"`
}

// Themes and densities accepted by Validate.
var (
	Themes    = []string{"dark", "light"}
	Densities = []string{"compact", "comfortable"}
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: filepath.Join(dataDir(), "weekendly.db"),
			Key:    "wknd-plan-v1",
		},
		UI: UIConfig{
			Theme:   "dark",
			Density: "comfortable",
		},
		Log: LogConfig{
			Dir: dataDir(),
		},
	}
}

// dataDir returns the default data directory.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "weekendly")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekendly", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)
	cfg.UI.Theme = strings.ToLower(cfg.UI.Theme)
	cfg.UI.Density = strings.ToLower(cfg.UI.Density)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Storage.Key == "" {
		return errors.New("storage key must be set")
	}
	if !oneOf(c.UI.Theme, Themes) {
		return fmt.Errorf("invalid theme: %s (want %s)", c.UI.Theme, strings.Join(Themes, " or "))
	}
	if !oneOf(c.UI.Density, Densities) {
		return fmt.Errorf("invalid density: %s (want %s)", c.UI.Density, strings.Join(Densities, " or "))
	}
	if c.Log.Dir == "" {
		return errors.New("log dir must be set")
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
