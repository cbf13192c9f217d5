// Package validate checks decoded DICOM data against a dictionary and
// reports severity-ranked diagnostics.
//
// The codec that decodes DICOM streams is an external collaborator; this
// package consumes its output through the File, DataSet and Element
// interfaces. Rules live in package rules and are collected in a Registry:
//
//	reg := rules.NewDefaultRegistry(dict)
//	v := validate.New(reg)
//	results := v.ValidateFile(f)
//
// Validation always returns data, never an error. A rule whose input does
// not have the expected shape is skipped without a diagnostic. Deciding
// whether a result list means pass or fail is up to the caller.
package validate
