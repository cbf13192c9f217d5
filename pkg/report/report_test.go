package report

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dcmspec/dcmspec-go/pkg/dataset"
	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

func sampleRecord(run uuid.UUID, sev diag.Severity, rule string) Record {
	return Record{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC),
		RunID:     run,
		Source:    "ct.yaml",
		RuleID:    rule,
		Severity:  sev,
		Message:   "message for " + rule,
		Subject:   "Rows (0028,0010)",
	}
}

func TestEncodeDecodeRecord(t *testing.T) {
	run := NewRun()
	in := sampleRecord(run, diag.SeverityError, "VR-001")

	data, err := EncodeRecord(in)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	out, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}

	if !out.Timestamp.Equal(in.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", out.Timestamp, in.Timestamp)
	}
	out.Timestamp = in.Timestamp
	if out != in {
		t.Errorf("decoded record = %+v, want %+v", out, in)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	r := sampleRecord(uuid.Nil, diag.SeverityNotice, "TAG-001")
	a, err := EncodeRecord(r)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeRecord(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding the same record twice produced different bytes")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeRecord([]byte{0xff, 0x00}); err == nil {
		t.Error("expected an error for invalid CBOR")
	}
}

func TestFromResultSubjects(t *testing.T) {
	el := dataset.NewNamedElement("Rows", "00280010", vr.US, 2, uint16(512))
	run := NewRun()
	at := time.Now()

	tests := []struct {
		name    string
		subject any
		want    string
	}{
		{"element", el, "Rows (0028,0010)"},
		{"file", dataset.NewFile(false, dataset.New()), "file"},
		{"dataset", dataset.New(), "dataset"},
		{"string", "free text", "free text"},
		{"nil", nil, ""},
		{"other", 42, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := diag.New(tt.subject, diag.SeverityWarning, "m")
			res.RuleID = "X-1"
			rec := FromResult(run, "src", res, at)
			if rec.Subject != tt.want {
				t.Errorf("Subject = %q, want %q", rec.Subject, tt.want)
			}
			if rec.RunID != run || rec.Source != "src" || rec.RuleID != "X-1" || rec.Message != "m" {
				t.Errorf("unexpected record %+v", rec)
			}
		})
	}
}

type collector struct {
	mu      sync.Mutex
	records []Record
}

func (c *collector) Write(r Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
}

func TestWriteSharesTimestamp(t *testing.T) {
	c := &collector{}
	run := NewRun()
	results := []diag.Result{
		diag.New(nil, diag.SeverityNotice, "a"),
		diag.New(nil, diag.SeverityError, "b"),
	}
	Write(c, run, "f", results)

	if len(c.records) != 2 {
		t.Fatalf("got %d records, want 2", len(c.records))
	}
	if !c.records[0].Timestamp.Equal(c.records[1].Timestamp) {
		t.Error("records of one call should share a timestamp")
	}
	if c.records[1].Severity != diag.SeverityError {
		t.Errorf("order not kept: %+v", c.records)
	}
}

func TestMultiWriter(t *testing.T) {
	a, b := &collector{}, &collector{}
	m := NewMultiWriter(a, nil, b, NoopWriter{})
	m.Write(sampleRecord(uuid.Nil, diag.SeverityNotice, "R"))

	if len(a.records) != 1 || len(b.records) != 1 {
		t.Errorf("records not fanned out: a=%d b=%d", len(a.records), len(b.records))
	}
}

func TestSlogAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := NewSlogAdapter(logger)

	a.Write(sampleRecord(uuid.Nil, diag.SeverityNotice, "TAG-001"))
	a.Write(sampleRecord(uuid.Nil, diag.SeverityWarning, "UID-001"))
	a.Write(sampleRecord(uuid.Nil, diag.SeverityFatal, "X"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{"level=INFO", "level=WARN", "level=ERROR"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %s", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], "rule=TAG-001") || !strings.Contains(lines[0], "source=ct.yaml") {
		t.Errorf("missing attributes: %q", lines[0])
	}
}

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.dcmr")
	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	run1, run2 := NewRun(), NewRun()
	w.Write(sampleRecord(run1, diag.SeverityNotice, "FILE-001"))
	w.Write(sampleRecord(run1, diag.SeverityError, "VR-001"))
	w.Write(sampleRecord(run2, diag.SeverityWarning, "UID-002"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
	w.Write(sampleRecord(run2, diag.SeverityFatal, "dropped"))
	if err := w.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}

	all, err := ReadFile(path, Filter{})
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}

	byRun, err := ReadFile(path, Filter{RunID: run1})
	if err != nil {
		t.Fatal(err)
	}
	if len(byRun) != 2 {
		t.Errorf("run filter: got %d records, want 2", len(byRun))
	}

	warn := diag.SeverityWarning
	severe, err := ReadFile(path, Filter{MinSeverity: &warn})
	if err != nil {
		t.Fatal(err)
	}
	if len(severe) != 2 || severe[0].RuleID != "VR-001" || severe[1].RuleID != "UID-002" {
		t.Errorf("severity filter: got %+v", severe)
	}
}

func TestFileWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.dcmr")
	for i := 0; i < 2; i++ {
		w, err := NewFileWriter(path)
		if err != nil {
			t.Fatal(err)
		}
		w.Write(sampleRecord(uuid.Nil, diag.SeverityNotice, "R"))
		w.Close()
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		n++
	}
	if n != 2 {
		t.Errorf("got %d records after two sessions, want 2", n)
	}
}

func TestFileWriterConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.dcmr")
	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				w.Write(sampleRecord(uuid.Nil, diag.SeverityNotice, "R"))
			}
		}()
	}
	wg.Wait()
	w.Close()

	all, err := ReadFile(path, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 200 {
		t.Errorf("got %d records, want 200", len(all))
	}
}

func TestNewFileWriterBadPath(t *testing.T) {
	if _, err := NewFileWriter(filepath.Join(t.TempDir(), "missing", "x.dcmr")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent.dcmr"))
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestFilterMatches(t *testing.T) {
	run := NewRun()
	rec := sampleRecord(run, diag.SeverityWarning, "UID-001")
	before := rec.Timestamp.Add(-time.Second)
	after := rec.Timestamp.Add(time.Second)
	errSev := diag.SeverityError

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty", Filter{}, true},
		{"run", Filter{RunID: run}, true},
		{"other run", Filter{RunID: NewRun()}, false},
		{"source", Filter{Source: "ct.yaml"}, true},
		{"other source", Filter{Source: "mr.yaml"}, false},
		{"rule", Filter{RuleID: "UID-001"}, true},
		{"other rule", Filter{RuleID: "UID-002"}, false},
		{"below min severity", Filter{MinSeverity: &errSev}, false},
		{"window", Filter{TimeStart: &before, TimeEnd: &after}, true},
		{"start after", Filter{TimeStart: &after}, false},
		{"end exclusive", Filter{TimeEnd: &rec.Timestamp}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(rec); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStreamReaderTruncated(t *testing.T) {
	data, err := EncodeRecord(sampleRecord(uuid.Nil, diag.SeverityNotice, "R"))
	if err != nil {
		t.Fatal(err)
	}
	stream := append(append([]byte(nil), data...), data[:len(data)/2]...)

	s := NewStreamReader(bytes.NewReader(stream), Filter{})
	if _, err := s.Next(); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if _, err := s.Next(); err == nil || err == io.EOF {
		t.Errorf("truncated record: err = %v, want a decode error", err)
	}
}
