// Package dataset provides in-memory DICOM data sets and a reader for YAML
// dumps of decoded files. The types implement the validate interfaces.
package dataset

import (
	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// Resolver names tags and supplies the VR of implicitly encoded elements.
// *dictionary.Dictionary implements it.
type Resolver interface {
	NameForTag(code string) (string, bool)
	VRForTag(code string) (vr.VR, bool)
}

// Element is a decoded data element.
type Element struct {
	name   string
	code   string
	vr     vr.VR
	length uint32
	value  any
}

// NewElement creates an element named through r. Tags r does not know are
// named validate.UnknownName.
func NewElement(r Resolver, code string, v vr.VR, length uint32, value any) *Element {
	name := validate.UnknownName
	if r != nil {
		if n, ok := r.NameForTag(code); ok {
			name = n
		}
	}
	return NewNamedElement(name, code, v, length, value)
}

// NewNamedElement creates an element with an explicit name.
func NewNamedElement(name, code string, v vr.VR, length uint32, value any) *Element {
	return &Element{name: name, code: code, vr: v, length: length, value: value}
}

func (e *Element) Name() string    { return e.name }
func (e *Element) Tag() string     { return dictionary.FormatCode(e.code) }
func (e *Element) TagCode() string { return e.code }
func (e *Element) VR() vr.VR       { return e.vr }
func (e *Element) Length() uint32  { return e.length }
func (e *Element) Value() any      { return e.value }

// Items returns the nested data sets of a sequence element.
func (e *Element) Items() []*DataSet {
	items, _ := e.value.([]*DataSet)
	return items
}

// DataSet is an ordered list of elements plus the structural problems the
// decoder ran into.
type DataSet struct {
	elements []*Element
	internal []diag.Result
}

// New creates a data set from elements.
func New(elements ...*Element) *DataSet {
	return &DataSet{elements: elements}
}

// Add appends an element.
func (ds *DataSet) Add(e *Element) {
	ds.elements = append(ds.elements, e)
}

// AddInternal records a decoding problem.
func (ds *DataSet) AddInternal(r diag.Result) {
	ds.internal = append(ds.internal, r)
}

// Elements implements validate.DataSet.
func (ds *DataSet) Elements() []validate.Element {
	out := make([]validate.Element, len(ds.elements))
	for i, e := range ds.elements {
		out[i] = e
	}
	return out
}

// Element returns the first element named name.
func (ds *DataSet) Element(name string) (*Element, bool) {
	for _, e := range ds.elements {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// String returns the value of the first element named name when it holds
// a string.
func (ds *DataSet) String(name string) (string, bool) {
	e, ok := ds.Element(name)
	if !ok {
		return "", false
	}
	s, ok := e.value.(string)
	return s, ok
}

// InternalValidations implements validate.DataSet.
func (ds *DataSet) InternalValidations() []diag.Result {
	return append([]diag.Result(nil), ds.internal...)
}

// Len returns the number of elements.
func (ds *DataSet) Len() int { return len(ds.elements) }

// File is a decoded DICOM file.
type File struct {
	preamble bool
	set      *DataSet
}

// NewFile creates a file.
func NewFile(preamble bool, ds *DataSet) *File {
	return &File{preamble: preamble, set: ds}
}

func (f *File) HasPreamble() bool { return f.preamble }

// DataSet implements validate.File. A file without a data set returns a nil
// interface.
func (f *File) DataSet() validate.DataSet {
	if f.set == nil {
		return nil
	}
	return f.set
}

// Set returns the concrete data set.
func (f *File) Set() *DataSet { return f.set }
