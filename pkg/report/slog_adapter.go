package report

import (
	"context"
	"log/slog"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
)

// SlogAdapter writes records to an slog.Logger. Notices are logged at
// Info, warnings at Warn and errors and fatals at Error.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns a SlogAdapter for logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Write logs r.
func (a *SlogAdapter) Write(r Record) {
	attrs := []slog.Attr{
		slog.String("run_id", r.RunID.String()),
		slog.String("severity", r.Severity.String()),
	}
	if r.Source != "" {
		attrs = append(attrs, slog.String("source", r.Source))
	}
	if r.RuleID != "" {
		attrs = append(attrs, slog.String("rule", r.RuleID))
	}
	if r.Subject != "" {
		attrs = append(attrs, slog.String("subject", r.Subject))
	}

	a.logger.LogAttrs(context.Background(), levelFor(r.Severity), r.Message, attrs...)
}

func levelFor(s diag.Severity) slog.Level {
	switch {
	case s >= diag.SeverityError:
		return slog.LevelError
	case s == diag.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

var _ Writer = (*SlogAdapter)(nil)
