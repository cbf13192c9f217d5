// Package diag defines the severity-ranked diagnostics produced by the
// conformance validator.
//
// Results compare by severity alone. Two results with the same severity are
// order-equivalent even when their subjects or messages differ, so sorting
// keeps such results in their original relative order. The natural order is
// least severe first (Notice, Warning, Error, Fatal); use SortMostSevereFirst
// for the reverse.
package diag

import (
	"fmt"
	"slices"
	"strings"
)

// Severity ranks a diagnostic. Higher values are more severe.
type Severity int

const (
	// SeverityNotice is informational feedback.
	SeverityNotice Severity = iota
	// SeverityWarning indicates a potential conformance problem.
	SeverityWarning
	// SeverityError indicates a conformance violation.
	SeverityError
	// SeverityFatal indicates the input could not be inspected further.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseSeverity parses a severity name as returned by Severity.String.
// Matching is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "notice", "info":
		return SeverityNotice, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "fatal":
		return SeverityFatal, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Result is a single diagnostic.
type Result struct {
	// Subject is the file, dataset or element the result refers to.
	// It is opaque to this package.
	Subject any

	// Severity of the result.
	Severity Severity

	// Message describes the problem.
	Message string

	// RuleID identifies the rule that produced the result. It is empty for
	// results merged in from a dataset's own validations.
	RuleID string
}

// New returns a Result for subject.
func New(subject any, severity Severity, message string) Result {
	return Result{Subject: subject, Severity: severity, Message: message}
}

// Newf is like New with a formatted message.
func Newf(subject any, severity Severity, format string, args ...any) Result {
	return New(subject, severity, fmt.Sprintf(format, args...))
}

// String returns "severity: message", prefixed with the rule id when set.
func (r Result) String() string {
	if r.RuleID != "" {
		return fmt.Sprintf("[%s] %s: %s", r.RuleID, r.Severity, r.Message)
	}
	return fmt.Sprintf("%s: %s", r.Severity, r.Message)
}

// Compare orders results by severity only. It returns a negative number when
// a is less severe than b, zero when both have the same severity and a
// positive number otherwise.
func Compare(a, b Result) int {
	return int(a.Severity) - int(b.Severity)
}

// Less reports whether a is strictly less severe than b.
func Less(a, b Result) bool {
	return a.Severity < b.Severity
}

// Equivalent reports whether a and b have the same severity. Subject and
// message are ignored.
func Equivalent(a, b Result) bool {
	return a.Severity == b.Severity
}

// Sort sorts results least severe first. Equal severities keep their
// relative order.
func Sort(results []Result) {
	slices.SortStableFunc(results, Compare)
}

// SortMostSevereFirst sorts results most severe first. Equal severities keep
// their relative order.
func SortMostSevereFirst(results []Result) {
	slices.SortStableFunc(results, func(a, b Result) int {
		return Compare(b, a)
	})
}

// FilterBySeverity returns the results at or above min.
func FilterBySeverity(results []Result, min Severity) []Result {
	var filtered []Result
	for _, r := range results {
		if r.Severity >= min {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Max returns the highest severity in results. ok is false for an empty
// slice.
func Max(results []Result) (max Severity, ok bool) {
	for i, r := range results {
		if i == 0 || r.Severity > max {
			max = r.Severity
		}
	}
	return max, len(results) > 0
}

// HasAtLeast reports whether any result is at or above min.
func HasAtLeast(results []Result, min Severity) bool {
	m, ok := Max(results)
	return ok && m >= min
}

// Counts returns the number of results per severity.
func Counts(results []Result) map[Severity]int {
	counts := make(map[Severity]int, 4)
	for _, r := range results {
		counts[r.Severity]++
	}
	return counts
}
