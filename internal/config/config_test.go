package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TASKLIST_CONFIG", "")
	t.Setenv("TASKLIST_FILE", "")
	t.Setenv("TASKLIST_TIMEZONE", "")
	t.Setenv("TASKLIST_COLOR", "")
	t.Setenv("TASKLIST_VERBOSE", "")
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "tasklist.json", cfg.Storage.File)
	assert.Equal(t, "Local", cfg.Time.Zone)
	assert.Equal(t, ColorAlways, cfg.Display.Color)
	assert.False(t, cfg.Application.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_LoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	loader := NewLoader()
	cfg, err := loader.LoadWithOverrides(nil)

	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
	assert.Empty(t, loader.Source())
}

func TestLoader_LoadFromXDGFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tasklist", "config.toml")
	writeConfig(t, path, `
[storage]
file = "/tmp/tasks.json"

[time]
zone = "Europe/Kyiv"

[display]
color = "never"
`)

	loader := NewLoader()
	cfg, err := loader.LoadWithOverrides(nil)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/tasks.json", cfg.Storage.File)
	assert.Equal(t, "Europe/Kyiv", cfg.Time.Zone)
	assert.Equal(t, ColorNever, cfg.Display.Color)
	assert.False(t, cfg.Application.Verbose, "keys missing from the file keep their defaults")
	assert.Equal(t, path, loader.Source())
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "tasklist", "config.toml"), "[time]\nzone = \"Europe/Kyiv\"\n")
	t.Setenv("TASKLIST_TIMEZONE", "UTC")
	t.Setenv("TASKLIST_COLOR", "AUTO")
	t.Setenv("TASKLIST_VERBOSE", "true")

	cfg, err := NewLoader().LoadWithOverrides(nil)

	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Time.Zone)
	assert.Equal(t, ColorAuto, cfg.Display.Color)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("TASKLIST_FILE", "env.json")

	file := "flag.json"
	zone := "America/New_York"
	verbose := true
	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		File:     &file,
		TimeZone: &zone,
		Verbose:  &verbose,
	})

	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.Storage.File)
	assert.Equal(t, "America/New_York", cfg.Time.Zone)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_ExplicitConfigMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := NewLoader().WithConfigPath(filepath.Join(dir, "missing.toml")).LoadWithOverrides(nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "file", cfgErr.Field)
}

func TestLoader_ConfigEnvVariableIsExplicit(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TASKLIST_CONFIG", filepath.Join(dir, "missing.toml"))

	_, err := NewLoader().LoadWithOverrides(nil)

	assert.Error(t, err)
}

func TestLoader_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeConfig(t, path, "[storage\nfile = ")

	_, err := NewLoader().WithConfigPath(path).LoadWithOverrides(nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(c *Config)
		expectedField string
	}{
		{"empty file", func(c *Config) { c.Storage.File = " " }, "storage.file"},
		{"empty zone", func(c *Config) { c.Time.Zone = "" }, "time.zone"},
		{"unknown zone", func(c *Config) { c.Time.Zone = "Mars/Olympus" }, "time.zone"},
		{"bad color", func(c *Config) { c.Display.Color = "sometimes" }, "display.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.expectedField, cfgErr.Field)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := NewConfig()
	cfg.Time.Zone = "Europe/Kyiv"

	loc, err := cfg.Location()

	require.NoError(t, err)
	assert.Equal(t, "Europe/Kyiv", loc.String())
}

func TestParseBoolWithFallback(t *testing.T) {
	assert.True(t, ParseBoolWithFallback("1", false))
	assert.False(t, ParseBoolWithFallback("false", true))
	assert.True(t, ParseBoolWithFallback("maybe", true))
}
