// Package presentation builds the table of transfer syntaxes offered for each
// abstract syntax during association negotiation. It only produces the
// table; negotiating on the wire is up to the network layer.
package presentation

import (
	"slices"
	"strings"

	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
)

// Well-known abstract syntaxes seeded into every table.
const (
	VerificationSOPClass       = dictionary.UIDVerification
	StudyRootQueryRetrieveFind = dictionary.UIDStudyRootQueryRetrieveInformationModelFind
)

// DefaultTransferSyntaxes are offered for every abstract syntax, in
// preference order.
var DefaultTransferSyntaxes = []string{
	dictionary.UIDImplicitVRLittleEndian,
	dictionary.UIDExplicitVRLittleEndian,
	dictionary.UIDExplicitVRBigEndian,
}

// Context pairs an abstract syntax with the transfer syntaxes offered for it.
type Context struct {
	AbstractSyntax   string
	TransferSyntaxes []string
}

// Table maps abstract syntaxes to their ordered transfer syntax lists.
// It is immutable once built.
type Table struct {
	byAbstract map[string][]string
	order      []string
}

// NewTable seeds the Verification SOP Class and the Study Root
// Query/Retrieve FIND model, then adds every storage SOP Class of uids in
// definition order. All of them get DefaultTransferSyntaxes.
func NewTable(uids *dictionary.UIDRegistry) *Table {
	t := &Table{byAbstract: make(map[string][]string)}
	t.add(VerificationSOPClass)
	t.add(StudyRootQueryRetrieveFind)

	if uids != nil {
		for _, e := range uids.SOPClasses() {
			if IsStorage(e) {
				t.add(e.UID)
			}
		}
	}
	return t
}

func (t *Table) add(abstract string) {
	if _, ok := t.byAbstract[abstract]; ok {
		return
	}
	t.byAbstract[abstract] = DefaultTransferSyntaxes
	t.order = append(t.order, abstract)
}

// storageRoot prefixes every Storage Service Class SOP Class UID
// (PS3.4 Annex B).
const storageRoot = "1.2.840.10008.5.1.4.1.1."

// IsStorage reports whether e is a storage SOP Class: a SOP Class under the
// storage root, or Media Storage Directory Storage. Storage Commitment is an
// N-ACTION service and does not qualify.
func IsStorage(e dictionary.UIDEntry) bool {
	if e.Type != dictionary.TypeSOPClass {
		return false
	}
	return strings.HasPrefix(e.UID, storageRoot) || e.UID == dictionary.UIDMediaStorageDirectoryStorage
}

// TransferSyntaxes returns the transfer syntaxes offered for abstract in
// preference order. The slice is a copy.
func (t *Table) TransferSyntaxes(abstract string) ([]string, bool) {
	ts, ok := t.byAbstract[abstract]
	if !ok {
		return nil, false
	}
	return slices.Clone(ts), true
}

// Accepts reports whether transferSyntax is offered for abstract.
func (t *Table) Accepts(abstract, transferSyntax string) bool {
	return slices.Contains(t.byAbstract[abstract], transferSyntax)
}

// AbstractSyntaxes returns every abstract syntax in insertion order.
func (t *Table) AbstractSyntaxes() []string {
	return slices.Clone(t.order)
}

// Contexts returns the whole table in insertion order.
func (t *Table) Contexts() []Context {
	out := make([]Context, len(t.order))
	for i, a := range t.order {
		out[i] = Context{AbstractSyntax: a, TransferSyntaxes: slices.Clone(t.byAbstract[a])}
	}
	return out
}

// Len returns the number of abstract syntaxes.
func (t *Table) Len() int {
	return len(t.order)
}
