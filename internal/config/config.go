package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notational-fzf/shorten-path/internal/ui"
)

// Colors holds the palette overrides, as ANSI color numbers or #rrggbb
type Colors struct {
	Path string `yaml:"path,omitempty"`
	Line string `yaml:"line,omitempty"`
	Dir  string `yaml:"dir,omitempty"`
}

// UserConfig represents the optional configuration file
type UserConfig struct {
	Colors   Colors `yaml:"colors"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		LogLevel: "info",
	}
}

// Load reads the configuration file from its default location
func Load() (*UserConfig, error) {
	return LoadFrom(GetConfigFile())
}

// LoadFrom reads the configuration from path, or returns the default
// configuration if the file does not exist
func LoadFrom(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *UserConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	if _, ok := c.Palette(); !ok {
		return fmt.Errorf("colors must be ANSI color numbers (0-255) or #rrggbb, got %+v", c.Colors)
	}

	return nil
}

// Palette returns the output palette with the configured overrides applied
func (c *UserConfig) Palette() (ui.Palette, bool) {
	return ui.ParsePalette(c.Colors.Path, c.Colors.Line, c.Colors.Dir)
}
