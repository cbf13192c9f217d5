package validate

import "github.com/dcmspec/dcmspec-go/pkg/diag"

// Rule categories.
const (
	CategoryFile = "file"
	CategoryUID  = "uid"
	CategoryVR   = "vr"
	CategoryTag  = "tag"
)

// Rule describes a validation rule. A rule also implements FileRule,
// ElementRule or both.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "VR-001").
	ID() string
	// Name returns a human-readable name for the rule.
	Name() string
	// Category returns the rule category (e.g., "file", "vr").
	Category() string
	// DefaultSeverity returns the default severity level.
	DefaultSeverity() diag.Severity
}

// FileRule checks file-level properties.
type FileRule interface {
	Rule
	CheckFile(f File) []diag.Result
}

// ElementRule checks a single element.
type ElementRule interface {
	Rule
	CheckElement(e Element) []diag.Result
}

// BaseRule provides a default implementation of common Rule methods.
type BaseRule struct {
	id              string
	name            string
	category        string
	defaultSeverity diag.Severity
}

// ID returns the rule ID.
func (r *BaseRule) ID() string { return r.id }

// Name returns the rule name.
func (r *BaseRule) Name() string { return r.name }

// Category returns the rule category.
func (r *BaseRule) Category() string { return r.category }

// DefaultSeverity returns the default severity.
func (r *BaseRule) DefaultSeverity() diag.Severity { return r.defaultSeverity }

// Result builds a result attributed to this rule at its default severity.
func (r *BaseRule) Result(subject any, message string) diag.Result {
	res := diag.New(subject, r.defaultSeverity, message)
	res.RuleID = r.id
	return res
}

// NewBaseRule creates a new BaseRule with the given properties.
func NewBaseRule(id, name, category string, severity diag.Severity) *BaseRule {
	return &BaseRule{
		id:              id,
		name:            name,
		category:        category,
		defaultSeverity: severity,
	}
}
