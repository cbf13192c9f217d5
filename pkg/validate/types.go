package validate

import (
	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// Element is a decoded data element.
type Element interface {
	// Name is the dictionary keyword of the element, or "Unknown" when the
	// decoder could not resolve its tag.
	Name() string
	// Tag is the tag in "(gggg,eeee)" notation.
	Tag() string
	// TagCode is the lowercase composite code ("00080016").
	TagCode() string
	// VR is the Value Representation the element was encoded with.
	VR() vr.VR
	// Length is the value length in bytes.
	Length() uint32
	// Value is the decoded value. Its dynamic type depends on the VR.
	Value() any
}

// DataSet is a decoded data set.
type DataSet interface {
	// Elements returns the top-level elements in stream order.
	Elements() []Element
	// String returns the string value of the element with keyword name.
	String(name string) (string, bool)
	// InternalValidations returns structural problems found while decoding.
	InternalValidations() []diag.Result
}

// File is a decoded DICOM file.
type File interface {
	HasPreamble() bool
	DataSet() DataSet
}

// UnknownName is the Name of an element whose tag is not in the dictionary.
const UnknownName = "Unknown"
