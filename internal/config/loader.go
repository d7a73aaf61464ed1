package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "VSA_"
	envConfigFile = "VSA_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if VSA_CONFIG is set
//  3. env (prefix VSA_)
func Load() (*Config, error) {
	return LoadFile(os.Getenv(envConfigFile))
}

// LoadFile is Load with an explicit config file; an empty path skips the file layer.
func LoadFile(path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	// VSA_LOG_LEVEL -> log_level
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "vsa_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the viewer cannot work with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%w: log_file must not be empty", ErrInvalidConfig)
	}
	if c.NotifyMS <= 0 || c.SubmitDelayMS < 0 || c.NavOffset < 0 {
		return fmt.Errorf("%w: durations and offsets must be positive", ErrInvalidConfig)
	}
	return nil
}
