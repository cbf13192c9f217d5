// Package config loads tool configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
)

// Config is the environment-level configuration of the dcmspec tools.
// Command-line flags override individual fields.
type Config struct {
	// Dictionary is an alternate YAML definition table; empty selects the
	// embedded one.
	Dictionary string `env:"DCMSPEC_DICTIONARY"`

	LogLevel     slog.Level    `env:"DCMSPEC_LOG_LEVEL" envDefault:"warn"`
	MinSeverity  diag.Severity `env:"DCMSPEC_MIN_SEVERITY" envDefault:"notice"`
	FailSeverity diag.Severity `env:"DCMSPEC_FAIL_SEVERITY" envDefault:"error"`

	// Report is a CBOR report file that validation runs append to.
	Report string `env:"DCMSPEC_REPORT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config described by the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel parses a log level name (debug, info, warn, error).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
