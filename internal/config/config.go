// Package config loads raadgen settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bend-n/raad-codegen/internal/codegen"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = ".raadgen.yaml"

// Config is the root configuration structure.
type Config struct {
	Suffix   string   `yaml:"suffix"`    // output file suffix, before .go
	Runtime  string   `yaml:"runtime"`   // import path of the runtime package
	LogLevel string   `yaml:"log_level"` // debug, info, warn, error
	Jobs     int      `yaml:"jobs"`      // files generated concurrently
	Header   []string `yaml:"header"`    // comment lines under the generated-code notice
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads a config file, applying environment overrides and defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadWithFallback loads path if it exists, the defaults otherwise. An
// empty path means DefaultFile.
func LoadWithFallback(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		cfg = &Config{}
		applyEnvOverrides(cfg)
		setDefaults(cfg)
		return cfg, validate(cfg)
	}
	return cfg, err
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RAADGEN_SUFFIX"); v != "" {
		cfg.Suffix = v
	}
	if v := os.Getenv("RAADGEN_RUNTIME"); v != "" {
		cfg.Runtime = v
	}
	if v := os.Getenv("RAADGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RAADGEN_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Jobs = n
		}
	}
}

func setDefaults(cfg *Config) {
	if cfg.Suffix == "" {
		cfg.Suffix = "_raad"
	}
	if cfg.Runtime == "" {
		cfg.Runtime = codegen.DefaultRuntime
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 4
	}
}

func validate(cfg *Config) error {
	if !strings.HasPrefix(cfg.Suffix, "_") {
		return fmt.Errorf("suffix must start with '_', got %q", cfg.Suffix)
	}
	if strings.HasSuffix(cfg.Suffix, "_test") {
		return fmt.Errorf("suffix must not end in _test, got %q", cfg.Suffix)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error, got %q", cfg.LogLevel)
	}

	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs must be positive, got %d", cfg.Jobs)
	}
	for _, line := range cfg.Header {
		if strings.Contains(line, "\n") {
			return fmt.Errorf("header lines must not contain newlines")
		}
	}
	return nil
}
