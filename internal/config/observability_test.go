package config

import (
	"testing"
	"time"
)

func TestDefaultObservabilityConfigIsValid(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Logging.SlowQueryThreshold != 100*time.Millisecond {
		t.Errorf("unexpected default slow-query threshold %v", cfg.Logging.SlowQueryThreshold)
	}
}

func TestObservabilityConfigValidate(t *testing.T) {
	tests := []struct {
		label   string
		mutate  func(*ObservabilityConfig)
		wantErr bool
	}{
		{"valid", func(c *ObservabilityConfig) {}, false},
		{"console format", func(c *ObservabilityConfig) { c.Logging.Format = "console" }, false},
		{"missing service name", func(c *ObservabilityConfig) { c.ServiceName = "" }, true},
		{"bad level", func(c *ObservabilityConfig) { c.Logging.Level = "verbose" }, true},
		{"bad format", func(c *ObservabilityConfig) { c.Logging.Format = "xml" }, true},
		{"negative threshold", func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("expected info in production, got %q", got)
	}

	cfg.Environment = "development"
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("expected debug in development, got %q", got)
	}

	cfg.Logging.Level = "warn"
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("configured level must win, got %q", got)
	}
}
