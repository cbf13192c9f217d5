package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/dcmspec/dcmspec-go/pkg/report"
)

// ReportOptions configures the report command.
type ReportOptions struct {
	Path   string
	JSON   bool
	Filter report.Filter
}

// RunReport runs the report command.
func RunReport(args []string, stdout, stderr io.Writer) int {
	opts, err := parseReportArgs(args)
	if err != nil {
		if err == flag.ErrHelp {
			return exitSuccess
		}
		return fail(stderr, err)
	}

	records, err := report.ReadFile(opts.Path, opts.Filter)
	if err != nil {
		return fail(stderr, err)
	}

	if opts.JSON {
		enc := json.NewEncoder(stdout)
		for _, r := range records {
			if err := enc.Encode(recordJSON(r)); err != nil {
				return fail(stderr, err)
			}
		}
		return exitSuccess
	}

	for _, r := range records {
		formatRecord(stdout, r)
	}
	return exitSuccess
}

type recordOutput struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id"`
	Source    string `json:"source,omitempty"`
	Rule      string `json:"rule,omitempty"`
	Severity  string `json:"severity"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}

func recordJSON(r report.Record) recordOutput {
	return recordOutput{
		Timestamp: r.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		RunID:     r.RunID.String(),
		Source:    r.Source,
		Rule:      r.RuleID,
		Severity:  r.Severity.String(),
		Subject:   r.Subject,
		Message:   r.Message,
	}
}

// formatRecord writes "timestamp [run:xxxxxxxx] SEVERITY source rule subject: message".
func formatRecord(w io.Writer, r report.Record) {
	ts := r.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-7s", ts, r.RunID.String()[:8], strings.ToUpper(r.Severity.String()))
	if r.Source != "" {
		fmt.Fprintf(w, " %s", r.Source)
	}
	if r.RuleID != "" {
		fmt.Fprintf(w, " [%s]", r.RuleID)
	}
	if r.Subject != "" {
		fmt.Fprintf(w, " %s:", r.Subject)
	}
	fmt.Fprintf(w, " %s\n", r.Message)
}

func parseReportArgs(args []string) (ReportOptions, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ReportOptions{}

	var minSeverity severityFlag
	run := fs.String("run", "", "Only records of this run id")
	fs.StringVar(&opts.Filter.Source, "source", "", "Only records of this source")
	fs.StringVar(&opts.Filter.RuleID, "rule", "", "Only records of this rule id")
	fs.Var(&minSeverity, "min-severity", "Lowest severity to show")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON lines")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() < 1 {
		return opts, fmt.Errorf("report file path required")
	}
	opts.Path = fs.Arg(0)

	if *run != "" {
		id, err := uuid.Parse(*run)
		if err != nil {
			return opts, fmt.Errorf("invalid run id %q: %w", *run, err)
		}
		opts.Filter.RunID = id
	}
	if minSeverity.set {
		sev := minSeverity.value
		opts.Filter.MinSeverity = &sev
	}
	return opts, nil
}
