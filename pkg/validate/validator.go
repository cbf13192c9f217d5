package validate

import (
	"io"
	"log/slog"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger that receives a debug line per validation
// pass. The default discards it.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator applies the rules of a Registry to files, data sets and
// elements. It never mutates its inputs and is safe for concurrent use as
// long as the registry is not reconfigured during a pass.
type Validator struct {
	rules  *Registry
	logger *slog.Logger
}

// New creates a validator running the enabled rules of registry.
func New(registry *Registry, opts ...Option) *Validator {
	if registry == nil {
		registry = NewRegistry()
	}
	v := &Validator{
		rules:  registry,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the rule registry the validator runs.
func (v *Validator) Registry() *Registry { return v.rules }

// ValidateFile runs the file rules, then the element rules on every element
// of the file's data set, then appends the data set's internal validations.
func (v *Validator) ValidateFile(f File) []diag.Result {
	if f == nil {
		return nil
	}
	results := v.rules.RunFileRules(f)
	results, n := v.validateDataSet(results, f.DataSet())
	v.logPass("file", n, results)
	return results
}

// ValidateDataSet runs the element rules on every element of ds, then
// appends its internal validations.
func (v *Validator) ValidateDataSet(ds DataSet) []diag.Result {
	results, n := v.validateDataSet(nil, ds)
	v.logPass("dataset", n, results)
	return results
}

// ValidateElement runs the element rules on a single element.
func (v *Validator) ValidateElement(e Element) []diag.Result {
	if e == nil {
		return nil
	}
	return v.rules.RunElementRules(e)
}

func (v *Validator) validateDataSet(results []diag.Result, ds DataSet) ([]diag.Result, int) {
	if ds == nil {
		return results, 0
	}
	elements := ds.Elements()
	for _, e := range elements {
		if e == nil {
			continue
		}
		results = append(results, v.rules.RunElementRules(e)...)
	}
	results = append(results, ds.InternalValidations()...)
	return results, len(elements)
}

func (v *Validator) logPass(kind string, elements int, results []diag.Result) {
	maxSeverity := "none"
	if sev, ok := diag.Max(results); ok {
		maxSeverity = sev.String()
	}
	v.logger.Debug("validation pass",
		slog.String("kind", kind),
		slog.Int("elements", elements),
		slog.Int("results", len(results)),
		slog.String("max_severity", maxSeverity),
	)
}
