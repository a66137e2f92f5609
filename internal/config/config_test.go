package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected BaseURL %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.ProbeInterval != 30*time.Second {
		t.Errorf("Expected ProbeInterval 30s, got %v", cfg.ProbeInterval)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("Expected ProbeTimeout 5s, got %v", cfg.ProbeTimeout)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("Expected RequestTimeout 15s, got %v", cfg.RequestTimeout)
	}
	if cfg.LatencyHistory != 30 {
		t.Errorf("Expected LatencyHistory 30, got %d", cfg.LatencyHistory)
	}
	if cfg.MetricsAddr != "" || cfg.LogFile != "" {
		t.Error("Expected metrics and log file to be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid default config", Default(), false},
		{"local http backend", Default().WithBaseURL("http://localhost:8000"), false},
		{"empty base url", Default().WithBaseURL(""), true},
		{"relative base url", Default().WithBaseURL("/api"), true},
		{"ftp base url", Default().WithBaseURL("ftp://example.com"), true},
		{"zero request timeout", Default().WithRequestTimeout(0), true},
		{"zero probe interval", Default().WithProbeInterval(0), true},
		{"zero probe timeout", func() Config { c := Default(); c.ProbeTimeout = 0; return c }(), true},
		{"tiny latency history", func() Config { c := Default(); c.LatencyHistory = 1; return c }(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsConfigError(err) {
				t.Errorf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestWithMethods(t *testing.T) {
	cfg := Default()

	newCfg := cfg.WithBaseURL("http://127.0.0.1:9000").
		WithRequestTimeout(time.Second).
		WithProbeInterval(10 * time.Second).
		WithMetricsAddr(":9100").
		WithLogFile("/tmp/simconsole.log")

	if newCfg.BaseURL != "http://127.0.0.1:9000" {
		t.Errorf("WithBaseURL failed, got %s", newCfg.BaseURL)
	}
	if newCfg.RequestTimeout != time.Second {
		t.Errorf("WithRequestTimeout failed, got %v", newCfg.RequestTimeout)
	}
	if newCfg.ProbeInterval != 10*time.Second {
		t.Errorf("WithProbeInterval failed, got %v", newCfg.ProbeInterval)
	}
	if newCfg.MetricsAddr != ":9100" || newCfg.LogFile != "/tmp/simconsole.log" {
		t.Errorf("WithMetricsAddr/WithLogFile failed, got %+v", newCfg)
	}

	// Original should be unchanged
	if cfg.BaseURL != DefaultBaseURL {
		t.Error("With* mutated original config")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simconsole.yaml")
	content := `
base_url: http://localhost:8000
probe_interval: 10s
request_timeout: 2s
metrics_addr: ":9100"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %s", cfg.BaseURL)
	}
	if cfg.ProbeInterval != 10*time.Second || cfg.RequestTimeout != 2*time.Second {
		t.Errorf("durations not parsed: %v %v", cfg.ProbeInterval, cfg.RequestTimeout)
	}
	if cfg.MetricsAddr != ":9100" {
		t.Errorf("MetricsAddr = %s", cfg.MetricsAddr)
	}
	// Untouched fields keep defaults
	if cfg.ProbeTimeout != 5*time.Second || cfg.LatencyHistory != 30 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if cfg, err := Load(""); err != nil || cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Load(\"\") = %+v, %v", cfg, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("probe_interval: [nope"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "TestField", Message: "test message"}

	expected := "config error: TestField test message"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
	if !IsConfigError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsConfigError should see through wrapping")
	}
}
