package dictionary

import (
	_ "embed"
	"sync"

	"github.com/dcmspec/dcmspec-go/pkg/version"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

//go:generate go run ../../cmd/dcmspec-gen -source data/dictionary.yaml -output uids_gen.go

//go:embed data/dictionary.yaml
var embeddedSource []byte

// EmbeddedSource returns the compiled-in definition table.
func EmbeddedSource() []byte {
	return embeddedSource
}

// Dictionary holds the tag and uid registries built from one definition
// source. It is immutable and safe for concurrent use; pass it to the
// components that need it instead of reaching for a global.
type Dictionary struct {
	tags    *TagRegistry
	uids    *UIDRegistry
	edition version.Edition
	issues  []RecordIssue
}

var loadDefault = sync.OnceValues(func() (*Dictionary, error) {
	return LoadBytes(embeddedSource)
})

// Default returns the dictionary built from the embedded definition table.
// It is built on first use, exactly once; every caller observes the same
// dictionary (or the same error).
func Default() (*Dictionary, error) {
	return loadDefault()
}

// MustDefault is like Default but panics if the embedded table cannot be
// loaded.
func MustDefault() *Dictionary {
	d, err := Default()
	if err != nil {
		panic(err)
	}
	return d
}

// Tags returns the tag registry.
func (d *Dictionary) Tags() *TagRegistry { return d.tags }

// UIDs returns the uid registry.
func (d *Dictionary) UIDs() *UIDRegistry { return d.uids }

// Edition returns the standard edition declared by the source, or the zero
// Edition when none was declared.
func (d *Dictionary) Edition() version.Edition { return d.edition }

// Issues returns the records that were skipped or replaced while loading.
func (d *Dictionary) Issues() []RecordIssue {
	return append([]RecordIssue(nil), d.issues...)
}

// NameForTag returns the keyword for a tag code.
func (d *Dictionary) NameForTag(code string) (string, bool) {
	return d.tags.NameFor(code)
}

// VRForTag returns the VR for a tag code.
func (d *Dictionary) VRForTag(code string) (vr.VR, bool) {
	return d.tags.VRFor(code)
}

// HasTag reports whether code is defined.
func (d *Dictionary) HasTag(code string) bool {
	_, ok := d.tags.Lookup(code)
	return ok
}

// IsRetiredTag reports whether code identifies a retired element.
func (d *Dictionary) IsRetiredTag(code string) bool {
	return d.tags.IsRetired(code)
}

// DataTag returns the tag definition for a keyword.
func (d *Dictionary) DataTag(keyword string) (Tag, bool) {
	return d.tags.TagFor(keyword)
}

// NameForUID returns a displayable name for uid. See UIDRegistry.NameFor.
func (d *Dictionary) NameForUID(uid string, appendUID bool) string {
	return d.uids.NameFor(uid, appendUID)
}

// IsSupportedTransferSyntax reports whether uid is a registered Transfer
// Syntax.
func (d *Dictionary) IsSupportedTransferSyntax(uid string) bool {
	return d.uids.IsSupportedTransferSyntax(uid)
}

// IsSupportedSOPClass reports whether uid is a registered SOP Class.
func (d *Dictionary) IsSupportedSOPClass(uid string) bool {
	return d.uids.IsSupportedSOPClass(uid)
}
