package dictionary

import "strings"

// UIDType is the registry type of a UID entry.
type UIDType string

// Registry types used by the DICOM UID registry (PS3.6 Annex A).
const (
	TypeSOPClass                  UIDType = "SOP Class"
	TypeMetaSOPClass              UIDType = "Meta SOP Class"
	TypeTransferSyntax            UIDType = "Transfer Syntax"
	TypeWellKnownSOPInstance      UIDType = "Well-known SOP Instance"
	TypeWellKnownFrameOfReference UIDType = "Well-known frame of reference"
	TypeContextGroupName          UIDType = "Context Group Name"
	TypeCodingScheme              UIDType = "Coding Scheme"
	TypeApplicationContextName    UIDType = "Application Context Name"
	TypeServiceClass              UIDType = "Service Class"
	TypeApplicationHostingModel   UIDType = "Application Hosting Model"
	TypeMappingResource           UIDType = "Mapping Resource"
	TypeLDAPOID                   UIDType = "LDAP OID"
	TypeSynchronizationFrameOfRef UIDType = "Synchronization Frame of Reference"
	TypeDICOMUIDsAsCodingScheme   UIDType = "DICOM UIDs as a Coding Scheme"
	TypePrivateSOPInstance        UIDType = "Private SOP Instance"
)

var knownTypes = []UIDType{
	TypeSOPClass,
	TypeMetaSOPClass,
	TypeTransferSyntax,
	TypeWellKnownSOPInstance,
	TypeWellKnownFrameOfReference,
	TypeContextGroupName,
	TypeCodingScheme,
	TypeApplicationContextName,
	TypeServiceClass,
	TypeApplicationHostingModel,
	TypeMappingResource,
	TypeLDAPOID,
	TypeSynchronizationFrameOfRef,
	TypeDICOMUIDsAsCodingScheme,
	TypePrivateSOPInstance,
}

// canonicalType maps a registry type as written in a source to its
// canonical spelling. Unknown types are kept as written.
func canonicalType(s string) UIDType {
	s = strings.TrimSpace(s)
	for _, t := range knownTypes {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return UIDType(s)
}

// UIDEntry is a registered unique identifier.
type UIDEntry struct {
	UID     string
	Keyword string
	// Name is the registry description; it defaults to Keyword.
	Name    string
	Type    UIDType
	Retired bool
}

// UIDRegistry looks up registered UIDs and keeps definition-order views of
// the SOP Classes and Transfer Syntaxes.
//
// A UIDRegistry is immutable once built and safe for concurrent use.
type UIDRegistry struct {
	byUID            map[string]UIDEntry
	order            []string
	sopClasses       []UIDEntry
	transferSyntaxes []UIDEntry
}

func newUIDRegistry(size int) *UIDRegistry {
	return &UIDRegistry{
		byUID: make(map[string]UIDEntry, size),
		order: make([]string, 0, size),
	}
}

// put inserts e, replacing any entry with the same uid. A replaced entry
// keeps the position of the first definition. It reports whether the uid
// was already present.
func (r *UIDRegistry) put(e UIDEntry) (replaced bool) {
	if _, replaced = r.byUID[e.UID]; !replaced {
		r.order = append(r.order, e.UID)
	}
	r.byUID[e.UID] = e
	return replaced
}

// seal builds the filtered views once all entries are in.
func (r *UIDRegistry) seal() {
	for _, uid := range r.order {
		e := r.byUID[uid]
		switch e.Type {
		case TypeSOPClass:
			r.sopClasses = append(r.sopClasses, e)
		case TypeTransferSyntax:
			r.transferSyntaxes = append(r.transferSyntaxes, e)
		}
	}
}

// Lookup returns the entry for uid.
func (r *UIDRegistry) Lookup(uid string) (UIDEntry, bool) {
	e, ok := r.byUID[uid]
	return e, ok
}

// NameFor returns a displayable name for uid: its keyword, "keyword (uid)"
// when appendUID is set, or uid itself when it is not registered.
func (r *UIDRegistry) NameFor(uid string, appendUID bool) string {
	e, ok := r.byUID[uid]
	if !ok || e.Keyword == "" {
		return uid
	}
	if appendUID {
		return e.Keyword + " (" + uid + ")"
	}
	return e.Keyword
}

// SOPClasses returns the SOP Class entries in definition order. The slice
// is a copy.
func (r *UIDRegistry) SOPClasses() []UIDEntry {
	return append([]UIDEntry(nil), r.sopClasses...)
}

// TransferSyntaxes returns the Transfer Syntax entries in definition order.
// The slice is a copy.
func (r *UIDRegistry) TransferSyntaxes() []UIDEntry {
	return append([]UIDEntry(nil), r.transferSyntaxes...)
}

// ByType returns the entries of type t in definition order.
func (r *UIDRegistry) ByType(t UIDType) []UIDEntry {
	var entries []UIDEntry
	for _, uid := range r.order {
		if e := r.byUID[uid]; e.Type == t {
			entries = append(entries, e)
		}
	}
	return entries
}

func (r *UIDRegistry) isType(uid string, t UIDType) (UIDEntry, bool) {
	e, ok := r.byUID[uid]
	return e, ok && e.Type == t
}

// IsSupportedTransferSyntax reports whether uid is a registered Transfer
// Syntax.
func (r *UIDRegistry) IsSupportedTransferSyntax(uid string) bool {
	_, ok := r.isType(uid, TypeTransferSyntax)
	return ok
}

// IsSupportedSOPClass reports whether uid is a registered SOP Class.
func (r *UIDRegistry) IsSupportedSOPClass(uid string) bool {
	_, ok := r.isType(uid, TypeSOPClass)
	return ok
}

// IsRetiredTransferSyntax reports whether uid is a retired Transfer Syntax.
func (r *UIDRegistry) IsRetiredTransferSyntax(uid string) bool {
	e, ok := r.isType(uid, TypeTransferSyntax)
	return ok && e.Retired
}

// IsRetiredSOPClass reports whether uid is a retired SOP Class.
func (r *UIDRegistry) IsRetiredSOPClass(uid string) bool {
	e, ok := r.isType(uid, TypeSOPClass)
	return ok && e.Retired
}

// All returns every entry in definition order.
func (r *UIDRegistry) All() []UIDEntry {
	all := make([]UIDEntry, len(r.order))
	for i, uid := range r.order {
		all[i] = r.byUID[uid]
	}
	return all
}

// Len returns the number of registered UIDs.
func (r *UIDRegistry) Len() int {
	return len(r.byUID)
}
