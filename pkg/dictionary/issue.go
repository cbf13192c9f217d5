package dictionary

import "fmt"

// IssueKind classifies a problem found while loading a definition source.
type IssueKind string

const (
	// IssueMalformed marks a record that was skipped.
	IssueMalformed IssueKind = "malformed"
	// IssueDuplicate marks a record whose key was already defined. The later
	// record replaces the earlier one.
	IssueDuplicate IssueKind = "duplicate"
)

// RecordType names the kind of record an issue refers to.
type RecordType string

const (
	RecordTag RecordType = "tag"
	RecordUID RecordType = "uid"
)

// RecordIssue describes a single record that was skipped or replaced while
// building a dictionary.
type RecordIssue struct {
	Kind   IssueKind
	Record RecordType

	// Key is the tag code, keyword or uid of the record, when known.
	Key string

	// Line is the source line of the record, 0 when unknown.
	Line int

	Reason string
}

func (i RecordIssue) String() string {
	var where string
	if i.Line > 0 {
		where = fmt.Sprintf("line %d: ", i.Line)
	}
	if i.Key != "" {
		return fmt.Sprintf("%s%s %s %s: %s", where, i.Kind, i.Record, i.Key, i.Reason)
	}
	return fmt.Sprintf("%s%s %s: %s", where, i.Kind, i.Record, i.Reason)
}
