package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
)

// Record is a single validation result bound to a run.
type Record struct {
	// Timestamp is when the result was recorded.
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID groups the records of one validation pass.
	RunID uuid.UUID `cbor:"2,keyasint"`

	// Source names what was validated, usually a file path.
	Source string `cbor:"3,keyasint,omitempty"`

	// RuleID is empty for a dataset's own validations.
	RuleID string `cbor:"4,keyasint,omitempty"`

	Severity diag.Severity `cbor:"5,keyasint"`
	Message  string        `cbor:"6,keyasint"`

	// Subject is the display form of the result's subject.
	Subject string `cbor:"7,keyasint,omitempty"`
}

// NewRun returns a fresh run identifier.
func NewRun() uuid.UUID {
	return uuid.New()
}

// FromResult converts r into a Record for run and source.
func FromResult(run uuid.UUID, source string, r diag.Result, at time.Time) Record {
	return Record{
		Timestamp: at,
		RunID:     run,
		Source:    source,
		RuleID:    r.RuleID,
		Severity:  r.Severity,
		Message:   r.Message,
		Subject:   subjectName(r.Subject),
	}
}

// Write records every result of one run to w. All records share a
// timestamp.
func Write(w Writer, run uuid.UUID, source string, results []diag.Result) {
	at := time.Now()
	for _, r := range results {
		w.Write(FromResult(run, source, r, at))
	}
}

// subjectName renders elements as "Keyword (gggg,eeee)" and files and
// datasets by kind.
func subjectName(s any) string {
	switch v := s.(type) {
	case nil:
		return ""
	case validate.Element:
		return v.Name() + " " + v.Tag()
	case validate.File:
		return "file"
	case validate.DataSet:
		return "dataset"
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return ""
	}
}
