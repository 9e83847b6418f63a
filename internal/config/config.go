// Package config centralizes path resolution and runtime settings for the
// CCAM analysis tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the runtime settings shared by all entry points.
// Every field has a default so the tools run with no configuration file.
type Config struct {
	// DataDir overrides the executable-relative data directory when set.
	DataDir string `yaml:"data_dir"`

	// TopN is the size of "top N" rankings in reports.
	TopN int `yaml:"top_n"`

	// MaxFilenameLen bounds sanitized menu labels in output filenames.
	MaxFilenameLen int `yaml:"max_filename_len"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in settings used when no ccam.yaml is present.
func Default() *Config {
	return &Config{
		TopN:           20,
		MaxFilenameLen: 100,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the optional YAML settings file. A missing file is not an
// error: defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Re-apply defaults for fields the file left at zero values.
	if cfg.TopN <= 0 {
		cfg.TopN = 20
	}
	if cfg.MaxFilenameLen <= 0 {
		cfg.MaxFilenameLen = 100
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return cfg, nil
}
