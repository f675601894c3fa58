// Package config provides configuration defaults, validation and paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// AppName is the application name.
	AppName = "isocountry"

	// EnvPrefix is the prefix of environment variables read by viper.
	EnvPrefix = "ISOCOUNTRY"

	// ConfigDirName is the config directory name under the user config root.
	ConfigDirName = "isocountry"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yaml"

	// DefaultConcurrency is the default batch lookup concurrency.
	DefaultConcurrency = 8

	// MaxConcurrency is the maximum allowed batch lookup concurrency.
	MaxConcurrency = 64

	// DefaultFormat is the default output format.
	DefaultFormat = FormatText

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Config holds runtime configuration.
type Config struct {
	Format      string `mapstructure:"format"`
	Concurrency int    `mapstructure:"concurrency"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	// Space restricts bare lookups to one key space; empty means any.
	Space string `mapstructure:"space"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Format:      DefaultFormat,
		Concurrency: DefaultConcurrency,
		LogLevel:    DefaultLogLevel,
		LogFormat:   FormatText,
	}
}

// Validate checks the configuration and normalizes its enumerations to
// lower case.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		return fmt.Errorf("invalid concurrency %d: must be between 1 and %d", c.Concurrency, MaxConcurrency)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory
		home = "."
	}
	return filepath.Join(home, ".config", ConfigDirName)
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return ConfigPath(DefaultConfigDir())
}

// ConfigPath returns the config file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileType)
}
