package dictionary

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptySource is returned when a definition source has no content.
	ErrEmptySource = errors.New("empty definition source")

	// ErrNoRecords is returned when a definition source parses but defines
	// neither tags nor uids.
	ErrNoRecords = errors.New("definition source has no records")
)

// LoadError reports a definition source that could not be turned into a
// dictionary. No partial dictionary is returned alongside it.
type LoadError struct {
	// Path is the file the source was read from, empty for in-memory data.
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("loading dictionary %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("loading dictionary: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Scalar is a YAML scalar kept as its literal text. Hex groups such as
// 0002 and uids such as 1.2 would otherwise be decoded as numbers.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = Scalar(node.Value)
	return nil
}

// TagRecord is a data element definition.
type TagRecord struct {
	Group   Scalar `yaml:"group"`
	Element Scalar `yaml:"element"`
	Keyword string `yaml:"keyword"`
	Name    string `yaml:"name"`
	VR      string `yaml:"vr"`
	VM      string `yaml:"vm"`
	Retired bool   `yaml:"retired"`

	// Line is the source line of the record, 0 when unknown.
	Line int `yaml:"-"`
}

// UIDRecord is a registered unique identifier.
type UIDRecord struct {
	UID     Scalar `yaml:"uid"`
	Keyword string `yaml:"keyword"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Retired bool   `yaml:"retired"`

	// Line is the source line of the record, 0 when unknown.
	Line int `yaml:"-"`
}

// Source is a parsed standard definition table.
type Source struct {
	Edition string
	Tags    []TagRecord
	UIDs    []UIDRecord

	// Issues lists records that could not be decoded. They are carried
	// into the dictionary built from this source.
	Issues []RecordIssue
}

type rawSource struct {
	Edition string      `yaml:"edition"`
	Tags    []yaml.Node `yaml:"tags"`
	UIDs    []yaml.Node `yaml:"uids"`
}

// ParseSource parses a YAML definition table. Records are decoded one at a
// time so a record with an ill-typed field is reported as an issue instead
// of failing the whole source.
func ParseSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptySource
	}

	var raw rawSource
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing definition source: %w", err)
	}
	if len(raw.Tags) == 0 && len(raw.UIDs) == 0 {
		return nil, ErrNoRecords
	}

	src := &Source{
		Edition: raw.Edition,
		Tags:    make([]TagRecord, 0, len(raw.Tags)),
		UIDs:    make([]UIDRecord, 0, len(raw.UIDs)),
	}

	for i := range raw.Tags {
		node := &raw.Tags[i]
		var rec TagRecord
		if err := node.Decode(&rec); err != nil {
			src.Issues = append(src.Issues, RecordIssue{
				Kind: IssueMalformed, Record: RecordTag, Line: node.Line, Reason: err.Error(),
			})
			continue
		}
		rec.Line = node.Line
		src.Tags = append(src.Tags, rec)
	}

	for i := range raw.UIDs {
		node := &raw.UIDs[i]
		var rec UIDRecord
		if err := node.Decode(&rec); err != nil {
			src.Issues = append(src.Issues, RecordIssue{
				Kind: IssueMalformed, Record: RecordUID, Line: node.Line, Reason: err.Error(),
			})
			continue
		}
		rec.Line = node.Line
		src.UIDs = append(src.UIDs, rec)
	}

	return src, nil
}

// ReadSource reads and parses a YAML definition table from a file.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseSource(data)
}
