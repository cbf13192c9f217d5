package report

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileWriter appends CBOR-encoded records to a file.
// It is safe for concurrent use.
type FileWriter struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
	err     error
}

// NewFileWriter opens path for appending, creating it with mode 0644 if
// needed.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileWriter{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Write encodes r. The first encoding error is kept and returned by Err;
// later records are still attempted.
func (w *FileWriter) Write(r Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if err := w.encoder.Encode(r); err != nil && w.err == nil {
		w.err = err
	}
}

// Err returns the first write error, if any.
func (w *FileWriter) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close closes the file. It is safe to call more than once; records
// written after Close are dropped.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

var _ Writer = (*FileWriter)(nil)
