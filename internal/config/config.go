// Package config handles TOML-based configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"wcoget/internal/httputil"
)

// MaxWorkers caps concurrent episode resolutions.
const MaxWorkers = 16

// Config holds all application configuration.
type Config struct {
	Base      string  `toml:"base"`
	Rate      float64 `toml:"rate"`    // seconds waited before each request hop
	Pacing    string  `toml:"pacing"`  // sleep, shared or none
	Workers   int     `toml:"workers"` // episodes resolved at once
	UserAgent string  `toml:"user_agent"`
	Timeout   int     `toml:"timeout"` // seconds per request
	Debug     bool    `toml:"debug"`
	LogJSON   bool    `toml:"log_json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Base:      "https://www.wcostream.tv",
		Rate:      5,
		Pacing:    "sleep",
		Workers:   1,
		UserAgent: httputil.DefaultUserAgent,
		Timeout:   30,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wcoget"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "wcoget"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file from disk and merges it over the defaults.
func Load() (*Config, error) {
	return LoadFs(afero.NewOsFs())
}

// LoadFs is Load against an arbitrary filesystem.
// If the config file doesn't exist, defaults are returned.
func LoadFs(fs afero.Fs) (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.Base == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if err := httputil.ValidateURL(c.Base); err != nil {
		return fmt.Errorf("base URL: %w", err)
	}

	if c.Rate < 0 {
		return fmt.Errorf("rate cannot be negative, got %v", c.Rate)
	}

	validPacing := map[string]bool{"sleep": true, "shared": true, "none": true}
	if !validPacing[c.Pacing] {
		return fmt.Errorf("unsupported pacing %q (valid: sleep, shared, none)", c.Pacing)
	}

	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.Timeout)
	}

	return nil
}

// RateDuration returns Rate as a duration.
func (c *Config) RateDuration() time.Duration {
	return time.Duration(c.Rate * float64(time.Second))
}

// TimeoutDuration returns Timeout as a duration.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
