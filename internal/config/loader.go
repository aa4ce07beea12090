package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configPath string
	explicit   bool
	source     string
}

// NewLoader creates a new configuration loader reading the default config file
func NewLoader() *Loader {
	path, explicit := DefaultConfigPath()
	return &Loader{
		config:     NewConfig(),
		configPath: path,
		explicit:   explicit,
	}
}

// WithConfigPath makes the loader read the given TOML file, which must exist
func (l *Loader) WithConfigPath(path string) *Loader {
	if path != "" {
		l.configPath = path
		l.explicit = true
	}
	return l
}

// Source returns the config file that was applied, or "" when only defaults
// and the environment were used
func (l *Loader) Source() string {
	return l.source
}

// LoadWithOverrides loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags, when overrides is not nil
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) loadFile() error {
	if l.configPath == "" {
		return nil
	}
	if _, err := os.Stat(l.configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !l.explicit {
			return nil
		}
		return &ConfigError{Field: "file", Message: err.Error()}
	}
	if err := l.config.LoadFromFile(l.configPath); err != nil {
		return err
	}
	l.source = l.configPath
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	File     *string
	TimeZone *string
	Color    *string
	Verbose  *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.File != nil {
		config.Storage.File = *overrides.File
	}
	if overrides.TimeZone != nil {
		config.Time.Zone = *overrides.TimeZone
	}
	if overrides.Color != nil {
		config.Display.Color = *overrides.Color
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// DefaultConfigPath returns the config file location. TASKLIST_CONFIG wins and
// is reported as explicit; otherwise the XDG location is used.
func DefaultConfigPath() (string, bool) {
	if path := os.Getenv("TASKLIST_CONFIG"); path != "" {
		return path, true
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tasklist", "config.toml"), false
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
