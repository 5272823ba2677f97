package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups telemetry settings: structured logging
// behavior and slow-query flagging. It is optional at the root level;
// DefaultObservabilityConfig fills the gap.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs. Forced to "itemsvc"
	// at load time so it cannot be configured into inconsistency.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment labels telemetry by runtime environment.
	Environment string `koanf:"environment" validate:"required"`

	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// LoggingConfig holds structured logger settings.
type LoggingConfig struct {
	// Level is the verbosity threshold: debug, info, warn or error.
	Level string `koanf:"level" validate:"required"`

	// Format selects "json" (log pipelines) or "console" (local dev).
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold flags SQL statements slower than this duration.
	// Parsed from duration strings like "100ms".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// DefaultObservabilityConfig returns the defaults used when no
// observability block is configured.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "itemsvc",
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
	}
}

// Validate applies rules beyond struct tags: level must be a known name
// and the slow-query threshold non-negative.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level, defaulting by environment
// when none is configured: info in production, debug in development.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		if c.Environment == "production" {
			return "info"
		}
		return "debug"
	}
	return c.Logging.Level
}

// IsProduction reports whether the service runs in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
