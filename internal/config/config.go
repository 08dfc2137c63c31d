// Package config provides configuration management for termcalc
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the main configuration object. It covers only ambient
// concerns; calculator behavior itself is not configurable.
type Config struct {
	Debug bool `toml:"debug"`

	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// UIConfig controls terminal styling
type UIConfig struct {
	Color string `toml:"color"` // auto, always, never
}

// LoggingConfig defines log output levels and formats
type LoggingConfig struct {
	Level          string `toml:"level"`
	Format         string `toml:"format"`
	FileEnabled    bool   `toml:"file_enabled"`
	ConsoleEnabled bool   `toml:"console_enabled"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		UI: UIConfig{
			Color: "auto",
		},
		Logging: LoggingConfig{
			Level:          "WARNING",
			Format:         "text",
			FileEnabled:    false,
			ConsoleEnabled: true,
		},
	}
}

// LogDir returns the directory used for the optional log file.
func LogDir() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "termcalc")
	}
	return "."
}

// LoadConfig loads configuration from a file or fallback paths
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
	}
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// SaveConfig writes the configuration to a TOML file
func (c *Config) SaveConfig(configPath string) error {
	file, err := os.Create(configPath) //nolint:gosec // config path is user-controlled
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		_ = file.Close() // Close errors are non-critical after successful encoding
	}()

	return toml.NewEncoder(file).Encode(c)
}

// Validate ensures settings are within supported bounds
func (c *Config) Validate() error {
	if err := c.validateUI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func findDefaultConfig() string {
	candidates := []string{"termcalc.toml"}

	if cfgDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(cfgDir, "termcalc", "config.toml"))
	}
	candidates = append(candidates, "/etc/termcalc/config.toml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) validateUI() error {
	valid := []string{"auto", "always", "never"}
	mode := strings.ToLower(c.UI.Color)
	if !slices.Contains(valid, mode) {
		return fmt.Errorf("invalid color mode: %s. Must be one of %v", c.UI.Color, valid)
	}
	c.UI.Color = mode
	return nil
}

func (c *Config) validateLogging() error {
	validLevels := []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	level := strings.ToUpper(c.Logging.Level)
	if !slices.Contains(validLevels, level) {
		return fmt.Errorf("invalid log level: %s. Must be one of %v", c.Logging.Level, validLevels)
	}
	c.Logging.Level = level

	validFormats := []string{"json", "text"}
	format := strings.ToLower(c.Logging.Format)
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid log format: %s. Must be one of %v", c.Logging.Format, validFormats)
	}
	c.Logging.Format = format
	return nil
}
