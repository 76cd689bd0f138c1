// Package config loads the optional CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lockhart9/stresscheck/internal/utils"
)

// Config holds CLI defaults. Command-line flags override file values,
// which override the built-in defaults.
type Config struct {
	// Locale selects the UI language ("ja" or "en").
	Locale string `yaml:"locale"`

	// Method is the default aggregation method: sumup, conversion or both.
	Method string `yaml:"method"`

	// Format is the default bulk output format: text or csv.
	Format string `yaml:"format"`

	// NoColor disables colored terminal output.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the built-in defaults. The questionnaire is a
// Japanese regulatory instrument, so the UI defaults to Japanese.
func DefaultConfig() *Config {
	return &Config{
		Locale: "ja",
		Method: "sumup",
		Format: "text",
	}
}

// DefaultPath returns the conventional config file location:
// $XDG_CONFIG_HOME/stresscheck/config.yaml, falling back to
// ~/.config/stresscheck/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "stresscheck", "config.yaml")
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults; a malformed file is. STRESSCHECK_LANG, when set,
// overrides the locale from any source.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.Locale = utils.SafeEnv("STRESSCHECK_LANG", cfg.Locale)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Method {
	case "sumup", "conversion", "both":
	default:
		return fmt.Errorf("invalid method %q: want sumup, conversion or both", c.Method)
	}
	switch c.Format {
	case "text", "csv":
	default:
		return fmt.Errorf("invalid format %q: want text or csv", c.Format)
	}
	return nil
}
