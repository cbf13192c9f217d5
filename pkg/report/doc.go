// Package report records validation results as a machine-readable trace.
//
// A Writer receives one Record per result. Records are independent of the
// operational slog output: they carry the run they belong to, the source
// that was validated and the rule that fired, so a report file can be
// filtered and replayed later.
//
// # Basic Usage
//
//	// Console, for development
//	w := report.NewSlogAdapter(slog.Default())
//
//	// Binary report file
//	fw, _ := report.NewFileWriter("/tmp/ct.dcmr")
//
//	// Both
//	w = report.NewMultiWriter(w, fw)
//
// # File Format
//
// Report files are a stream of CBOR-encoded records, conventionally with a
// .dcmr extension. "dcmspec report" lists and filters them.
package report
