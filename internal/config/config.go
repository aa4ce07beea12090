package config

import (
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Color modes for the table tags
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Config holds all configuration options for the task list application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Time        TimeConfig        `toml:"time"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds task file configuration
type StorageConfig struct {
	File string `toml:"file" env:"TASKLIST_FILE"`
}

// TimeConfig holds the reference time zone used to decide what "today" is
type TimeConfig struct {
	Zone string `toml:"zone" env:"TASKLIST_TIMEZONE"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Color string `toml:"color" env:"TASKLIST_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TASKLIST_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			File: "tasklist.json",
		},
		Time: TimeConfig{
			Zone: "Local",
		},
		Display: DisplayConfig{
			Color: ColorAlways,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// Location resolves the configured reference time zone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Time.Zone)
}

// LoadFromFile overlays values present in a TOML file onto the configuration
func (c *Config) LoadFromFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return &ConfigError{Field: "file", Message: "cannot decode " + path + ": " + err.Error()}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if file := os.Getenv("TASKLIST_FILE"); file != "" {
		c.Storage.File = file
	}
	if zone := os.Getenv("TASKLIST_TIMEZONE"); zone != "" {
		c.Time.Zone = zone
	}
	if color := os.Getenv("TASKLIST_COLOR"); color != "" {
		c.Display.Color = strings.ToLower(color)
	}
	if verbose := os.Getenv("TASKLIST_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.File) == "" {
		return &ConfigError{Field: "storage.file", Message: "task file path cannot be empty"}
	}

	if c.Time.Zone == "" {
		return &ConfigError{Field: "time.zone", Message: "time zone cannot be empty"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "time.zone", Message: "unknown time zone " + c.Time.Zone}
	}

	switch c.Display.Color {
	case ColorAlways, ColorNever, ColorAuto:
	default:
		return &ConfigError{Field: "display.color", Message: "color must be one of always, never, auto"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
