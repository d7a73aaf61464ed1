// Package config defines the viewer configuration and its loading.
package config

import (
	"errors"
	"time"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives the logs; the TUI owns the terminal.
	LogFile string `koanf:"log_file"`

	// DatasetFile optionally overlays the embedded results.
	DatasetFile string `koanf:"dataset_file"`

	// ConsentFile stores the consent decision. Empty means the user config dir.
	ConsentFile string `koanf:"consent_file"`

	// SiteDir holds the site's HTML pages indexed by the search command.
	SiteDir string `koanf:"site_dir"`

	// NotifyMS is how long a notification stays visible.
	NotifyMS int `koanf:"notify_ms"`

	// SubmitDelayMS is the duration of the simulated contact form submission.
	SubmitDelayMS int `koanf:"submit_delay_ms"`

	// MetricsFile, when set, receives the metrics in the text exposition format on exit.
	MetricsFile string `koanf:"metrics_file"`

	// NavOffset is how many lines before a section's top it becomes the active one.
	NavOffset int `koanf:"nav_offset"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFile:       "vsa.log",
		SiteDir:       ".",
		NotifyMS:      5000,
		SubmitDelayMS: 2000,
		NavOffset:     4,
	}
}

// NotifyDuration returns NotifyMS as a duration.
func (c *Config) NotifyDuration() time.Duration {
	return time.Duration(c.NotifyMS) * time.Millisecond
}

// SubmitDelay returns SubmitDelayMS as a duration.
func (c *Config) SubmitDelay() time.Duration {
	return time.Duration(c.SubmitDelayMS) * time.Millisecond
}
