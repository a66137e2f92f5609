package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the hosted simulation backend.
const DefaultBaseURL = "https://simulation-server-634070185639.us-central1.run.app"

// Config contains configurable parameters for the console.
// Use Default() to get sensible defaults, then override as needed.
type Config struct {
	// Backend
	BaseURL        string        `yaml:"base_url"`        // Simulation service root (default: hosted backend)
	RequestTimeout time.Duration `yaml:"request_timeout"` // Per-action timeout (default: 15s)

	// Health probe
	ProbeInterval time.Duration `yaml:"probe_interval"` // How often GET / is issued (default: 30s)
	ProbeTimeout  time.Duration `yaml:"probe_timeout"`  // Timeout for a single probe (default: 5s)

	// UI
	LatencyHistory int `yaml:"latency_history"` // Points kept for the latency chart (default: 30)

	// Diagnostics
	MetricsAddr string `yaml:"metrics_addr"` // Prometheus listener, empty disables it
	LogFile     string `yaml:"log_file"`     // Diagnostic log path, empty discards
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error (default: info)
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: 15 * time.Second,

		ProbeInterval: 30 * time.Second,
		ProbeTimeout:  5 * time.Second,

		LatencyHistory: 30,

		LogLevel: "info",
	}
}

// Load overlays the YAML file at path on top of Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WithBaseURL returns a copy of the config with a different backend.
func (c Config) WithBaseURL(u string) Config {
	c.BaseURL = u
	return c
}

// WithRequestTimeout returns a copy of the config with a different action timeout.
func (c Config) WithRequestTimeout(d time.Duration) Config {
	c.RequestTimeout = d
	return c
}

// WithProbeInterval returns a copy of the config with a different probe interval.
func (c Config) WithProbeInterval(d time.Duration) Config {
	c.ProbeInterval = d
	return c
}

// WithMetricsAddr returns a copy of the config with the metrics listener set.
func (c Config) WithMetricsAddr(addr string) Config {
	c.MetricsAddr = addr
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return &ConfigError{Field: "BaseURL", Message: "must not be empty"}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ConfigError{Field: "BaseURL", Message: "must be an absolute http(s) URL"}
	}
	if c.RequestTimeout <= 0 {
		return &ConfigError{Field: "RequestTimeout", Message: "must be positive"}
	}
	if c.ProbeInterval <= 0 {
		return &ConfigError{Field: "ProbeInterval", Message: "must be positive"}
	}
	if c.ProbeTimeout <= 0 {
		return &ConfigError{Field: "ProbeTimeout", Message: "must be positive"}
	}
	if c.LatencyHistory < 2 {
		return &ConfigError{Field: "LatencyHistory", Message: "must be at least 2"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// IsConfigError reports whether err is (or wraps) a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
