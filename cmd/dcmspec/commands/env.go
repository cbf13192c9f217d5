// Package commands implements the dcmspec CLI commands.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/dcmspec/dcmspec-go/pkg/config"
	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// env is the state shared by every command: configuration from the
// environment with flag overrides applied, a logger and the dictionary.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	dict   *dictionary.Dictionary
}

// commonFlags registers the flags every command accepts. The returned
// function applies them over the environment configuration.
func commonFlags(fs *flag.FlagSet) func(*config.Config) error {
	dict := fs.String("dictionary", "", "Alternate YAML definition table (default: embedded, $DCMSPEC_DICTIONARY)")
	level := fs.String("log-level", "", "Log level: debug, info, warn, error ($DCMSPEC_LOG_LEVEL)")

	return func(cfg *config.Config) error {
		if *dict != "" {
			cfg.Dictionary = *dict
		}
		if *level != "" {
			l, err := config.ParseLevel(*level)
			if err != nil {
				return err
			}
			cfg.LogLevel = l
		}
		return nil
	}
}

// severityFlag is a flag.Value over diag.Severity that remembers whether it
// was set.
type severityFlag struct {
	value diag.Severity
	set   bool
}

func (f *severityFlag) String() string {
	if !f.set {
		return ""
	}
	return f.value.String()
}

func (f *severityFlag) Set(s string) error {
	v, err := diag.ParseSeverity(s)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *severityFlag) apply(dst *diag.Severity) {
	if f.set {
		*dst = f.value
	}
}

// loadEnv reads the environment configuration, applies flag overrides and
// loads the dictionary.
func loadEnv(stderr io.Writer, overrides ...func(*config.Config) error) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if err := o(&cfg); err != nil {
			return nil, err
		}
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	d, err := dictionary.Default()
	if err != nil {
		return nil, err
	}
	if cfg.Dictionary != "" {
		alt, err := dictionary.LoadFile(cfg.Dictionary, dictionary.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		warnOlderEdition(logger, cfg.Dictionary, alt, d)
		d = alt
	}

	return &env{cfg: cfg, logger: logger, dict: d}, nil
}

// warnOlderEdition warns when an alternate table declares an edition older
// than the embedded one. Tables without an edition are not compared.
func warnOlderEdition(logger *slog.Logger, path string, alt, embedded *dictionary.Dictionary) {
	if alt.Edition().IsZero() || !alt.Edition().Before(embedded.Edition()) {
		return
	}
	logger.Warn("alternate dictionary is older than the embedded table",
		slog.String("path", path),
		slog.String("edition", alt.Edition().String()),
		slog.String("embedded", embedded.Edition().String()),
	)
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCommandError
}
