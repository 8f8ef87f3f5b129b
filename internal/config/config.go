// Package config loads the optional ohmoracle configuration file. All
// settings have working defaults; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the YAML file looked up under the user config directory.
const configFileName = "config.yaml"

// appDirName is the per-application directory under os.UserConfigDir.
const appDirName = "ohmoracle"

// Environment variables overriding the logging section. CLI flags take
// precedence over both.
const (
	EnvLogLevel  = "OHMORACLE_LOG_LEVEL"
	EnvLogFormat = "OHMORACLE_LOG_FORMAT"
)

// Config is the root of the configuration file.
type Config struct {
	// DefaultSeries is the E-series used when neither --standard nor --csv
	// is given. Must parse as a series name; empty means E6.
	DefaultSeries string `yaml:"default_series"`
	// Decades bounds the power-of-ten expansion of series catalogs.
	Decades DecadesConfig `yaml:"decades"`
	// Logging configures the zerolog output.
	Logging LoggingConfig `yaml:"logging"`
}

// DecadesConfig is the inclusive decade range for series expansion.
type DecadesConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: E6, decades 0..6, warn-level
// console logging.
func Default() *Config {
	return &Config{
		DefaultSeries: "E6",
		Decades:       DecadesConfig{Min: 0, Max: 6},
		Logging:       LoggingConfig{Level: "warn", Format: "console"},
	}
}

// Path returns the expected location of the configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads the configuration file, merging it over Default. A missing
// file yields the defaults; a present but malformed file is an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil //nolint:nilerr // no config dir means defaults, not failure
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path, merging it over
// Default. Exported for testing.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Decades.Min > cfg.Decades.Max {
		return nil, fmt.Errorf("config %s: decades.min %d exceeds decades.max %d",
			path, cfg.Decades.Min, cfg.Decades.Max)
	}
	return cfg, nil
}

// ApplyEnv overlays OHMORACLE_LOG_LEVEL / OHMORACLE_LOG_FORMAT onto the
// logging section.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}
