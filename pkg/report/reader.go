package report

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
)

// Filter selects records. Zero fields match everything.
type Filter struct {
	// RunID filters by run.
	RunID uuid.UUID

	// Source filters by exact source match.
	Source string

	// RuleID filters by exact rule id.
	RuleID string

	// MinSeverity keeps records at or above this severity.
	MinSeverity *diag.Severity

	// TimeStart keeps records at or after this time.
	TimeStart *time.Time

	// TimeEnd keeps records before this time.
	TimeEnd *time.Time
}

// Matches reports whether r satisfies every criterion of f.
func (f *Filter) Matches(r Record) bool {
	if f.RunID != uuid.Nil && r.RunID != f.RunID {
		return false
	}
	if f.Source != "" && r.Source != f.Source {
		return false
	}
	if f.RuleID != "" && r.RuleID != f.RuleID {
		return false
	}
	if f.MinSeverity != nil && r.Severity < *f.MinSeverity {
		return false
	}
	if f.TimeStart != nil && r.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !r.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader streams records from a report file.
type Reader struct {
	file   *os.File
	reader *StreamReader
}

// NewReader opens path and reads every record.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens path and reads the records matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, reader: NewStreamReader(f, filter)}, nil
}

// Next returns the next matching record, or io.EOF at the end of the file.
func (r *Reader) Next() (Record, error) {
	return r.reader.Next()
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// StreamReader decodes records from any io.Reader.
type StreamReader struct {
	decoder interface{ Decode(v any) error }
	filter  Filter
}

// NewStreamReader returns a StreamReader over r.
func NewStreamReader(r io.Reader, filter Filter) *StreamReader {
	return &StreamReader{decoder: NewDecoder(r), filter: filter}
}

// Next returns the next matching record, or io.EOF when the stream ends.
func (s *StreamReader) Next() (Record, error) {
	for {
		var rec Record
		if err := s.decoder.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, io.EOF
			}
			return Record{}, err
		}
		if s.filter.Matches(rec) {
			return rec, nil
		}
	}
}

// ReadAll collects the remaining matching records.
func (s *StreamReader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := s.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// ReadFile returns the records of path matching filter.
func ReadFile(path string, filter Filter) ([]Record, error) {
	r, err := NewFilteredReader(path, filter)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.reader.ReadAll()
}
