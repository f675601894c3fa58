package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Space)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"uppercase format", func(c *Config) { c.Format = "JSON" }, ""},
		{"yaml format", func(c *Config) { c.Format = "yaml" }, ""},
		{"unknown format", func(c *Config) { c.Format = "csv" }, "invalid format"},
		{"json logs", func(c *Config) { c.LogFormat = "json" }, ""},
		{"unknown log format", func(c *Config) { c.LogFormat = "logfmt" }, "invalid log format"},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, "invalid concurrency"},
		{"max concurrency", func(c *Config) { c.Concurrency = MaxConcurrency }, ""},
		{"too much concurrency", func(c *Config) { c.Concurrency = MaxConcurrency + 1 }, "invalid concurrency"},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, ""},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateLowercasesFormat(t *testing.T) {
	cfg := Defaults()
	cfg.Format = "YAML"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("x", "config.yaml"), ConfigPath("x"))
	assert.Equal(t, "config.yaml", filepath.Base(DefaultConfigPath()))
	assert.Equal(t, ConfigDirName, filepath.Base(DefaultConfigDir()))
}
