package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dcmspec/dcmspec-go/pkg/config"
	"github.com/dcmspec/dcmspec-go/pkg/dataset"
	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/report"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/validate/rules"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON  bool
	Files []string

	// Rules narrows the default rule set.
	Rules validate.Selection

	minSeverity  severityFlag
	failSeverity severityFlag
	report       string
	common       func(*config.Config) error
}

// FileOutput is the validation outcome of one dataset dump.
type FileOutput struct {
	Path        string         `json:"path"`
	Valid       bool           `json:"valid"`
	MaxSeverity string         `json:"max_severity,omitempty"`
	Error       string         `json:"error,omitempty"`
	Results     []ResultOutput `json:"results,omitempty"`

	all []diag.Result
}

// ResultOutput is one validation result.
type ResultOutput struct {
	Rule     string `json:"rule,omitempty"`
	Severity string `json:"severity"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		if err == flag.ErrHelp {
			printValidateUsage(stderr)
			return exitSuccess
		}
		return fail(stderr, err)
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	e, err := loadEnv(stderr, opts.common, func(cfg *config.Config) error {
		opts.minSeverity.apply(&cfg.MinSeverity)
		opts.failSeverity.apply(&cfg.FailSeverity)
		if opts.report != "" {
			cfg.Report = opts.report
		}
		return nil
	})
	if err != nil {
		return fail(stderr, err)
	}

	registry := rules.NewDefaultRegistry(e.dict)
	if err := registry.Apply(opts.Rules); err != nil {
		return fail(stderr, err)
	}

	var (
		fw      *report.FileWriter
		writers []report.Writer
	)
	if e.cfg.Report != "" {
		fw, err = report.NewFileWriter(e.cfg.Report)
		if err != nil {
			return fail(stderr, err)
		}
		writers = append(writers, fw)
	}
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		writers = append(writers, report.NewSlogAdapter(e.logger))
	}
	w := report.NewMultiWriter(writers...)

	v := validate.New(registry, validate.WithLogger(e.logger))
	run := report.NewRun()
	e.logger.Debug("validation run",
		slog.String("run_id", run.String()),
		slog.Int("files", len(opts.Files)),
		slog.Int("rules", registry.EnabledCount()),
	)

	exitCode := exitSuccess
	outputs := make([]*FileOutput, 0, len(opts.Files))
	for _, path := range opts.Files {
		out := validatePath(e, v, w, run, path)
		outputs = append(outputs, out)

		switch {
		case out.Error != "":
			exitCode = exitCommandError
		case diag.HasAtLeast(out.all, e.cfg.FailSeverity) && exitCode == exitSuccess:
			exitCode = exitValidation
		}

		if !opts.JSON {
			printFileOutput(stdout, out)
		}
	}

	if opts.JSON {
		data, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Fprintln(stdout, string(data))
	}

	if fw != nil {
		err := fw.Err()
		if cerr := fw.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fail(stderr, fmt.Errorf("writing report %s: %w", e.cfg.Report, err))
		}
	}

	return exitCode
}

// validatePath reads and validates one dump. Every result is recorded in
// w; only those at or above the minimum severity are kept for display.
func validatePath(e *env, v *validate.Validator, w report.Writer, run uuid.UUID, path string) *FileOutput {
	out := &FileOutput{Path: path}

	f, err := dataset.ReadDumpFile(path, e.dict)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.all = v.ValidateFile(f)
	report.Write(w, run, path, out.all)

	out.Valid = !diag.HasAtLeast(out.all, e.cfg.FailSeverity)
	if m, ok := diag.Max(out.all); ok {
		out.MaxSeverity = m.String()
	}

	at := time.Now()
	for _, r := range diag.FilterBySeverity(out.all, e.cfg.MinSeverity) {
		rec := report.FromResult(run, path, r, at)
		out.Results = append(out.Results, ResultOutput{
			Rule:     rec.RuleID,
			Severity: rec.Severity.String(),
			Subject:  rec.Subject,
			Message:  rec.Message,
		})
	}
	return out
}

func printFileOutput(w io.Writer, out *FileOutput) {
	switch {
	case out.Error != "":
		fmt.Fprintf(w, "%s: ERROR %s\n", out.Path, out.Error)
		return
	case len(out.all) == 0:
		fmt.Fprintf(w, "%s: OK\n", out.Path)
		return
	case out.Valid:
		fmt.Fprintf(w, "%s: OK (%d results, max %s)\n", out.Path, len(out.all), out.MaxSeverity)
	default:
		fmt.Fprintf(w, "%s: FAILED (%d results, max %s)\n", out.Path, len(out.all), out.MaxSeverity)
	}

	for _, r := range out.Results {
		fmt.Fprintf(w, "  %s", strings.ToUpper(r.Severity))
		if r.Rule != "" {
			fmt.Fprintf(w, " [%s]", r.Rule)
		}
		if r.Subject != "" {
			fmt.Fprintf(w, " %s:", r.Subject)
		}
		fmt.Fprintf(w, " %s\n", r.Message)
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.Var(&opts.minSeverity, "min-severity", "Lowest severity to display ($DCMSPEC_MIN_SEVERITY)")
	fs.Var(&opts.failSeverity, "fail-severity", "Severity that makes the run fail ($DCMSPEC_FAIL_SEVERITY)")
	fs.StringVar(&opts.report, "report", "", "Append CBOR report records to this file ($DCMSPEC_REPORT)")
	disable := fs.String("disable", "", "Comma-separated rule IDs to disable")
	category := fs.String("category", "", "Comma-separated rule categories to run (file, uid, vr, tag)")
	skip := fs.String("skip-category", "", "Comma-separated rule categories to skip")
	opts.common = commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Rules = validate.Selection{
		Categories:     splitList(*category),
		SkipCategories: splitList(*skip),
		DisabledRules:  splitList(*disable),
	}

	opts.Files = fs.Args()
	return opts, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: dcmspec validate [options] <dumps...>

Options:
  --json                 Output results as JSON
  --min-severity <sev>   Lowest severity to display (notice, warning, error, fatal)
  --fail-severity <sev>  Exit with status 2 when a result reaches this severity
  --report <file>        Append CBOR report records to file
  --disable <ids>        Disable rules, e.g. TAG-002,VR-002
  --category <cats>      Only run rules of these categories (file, uid, vr, tag)
  --skip-category <cats> Skip rules of these categories
  --dictionary <file>    Use an alternate definition table
  --log-level <level>    Log level (debug, info, warn, error)

Examples:
  dcmspec validate ct.yaml
  dcmspec validate --min-severity warning --report run.dcmr *.yaml`)
}
