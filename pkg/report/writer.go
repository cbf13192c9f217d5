package report

// Writer receives validation records.
type Writer interface {
	Write(r Record)
}

// NoopWriter discards all records.
type NoopWriter struct{}

// Write does nothing.
func (NoopWriter) Write(Record) {}

// MultiWriter sends records to several writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter returns a MultiWriter for writers. Nil writers are dropped.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	m := &MultiWriter{}
	for _, w := range writers {
		if w != nil {
			m.writers = append(m.writers, w)
		}
	}
	return m
}

// Write forwards r to every writer.
func (m *MultiWriter) Write(r Record) {
	for _, w := range m.writers {
		w.Write(r)
	}
}

var (
	_ Writer = NoopWriter{}
	_ Writer = (*MultiWriter)(nil)
)
