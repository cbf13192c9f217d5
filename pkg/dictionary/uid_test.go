package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUIDs(t *testing.T) *UIDRegistry {
	t.Helper()
	src := `uids:
  - {uid: "1.2.840.10008.1.2", keyword: ImplicitVRLittleEndian, type: Transfer Syntax}
  - {uid: "1.2.840.10008.1.1", keyword: Verification, name: Verification SOP Class, type: SOP Class}
  - {uid: "1.2.840.10008.1.2.1", keyword: ExplicitVRLittleEndian, type: transfer syntax}
  - {uid: "1.2.840.10008.1.2.2", keyword: ExplicitVRBigEndian, type: Transfer Syntax, retired: true}
  - {uid: "1.2.840.10008.5.1.4.1.1.5", keyword: NuclearMedicineImageStorageRetired, type: SOP Class, retired: true}
  - {uid: "1.2.840.10008.5.1.4.1.1.2", keyword: CTImageStorage, name: CT Image Storage, type: SOP Class}
  - {uid: "1.2.840.10008.2.16.4", keyword: DCM, type: Coding Scheme}
`
	d, err := LoadBytes([]byte(src))
	require.NoError(t, err)
	require.Empty(t, d.Issues())
	return d.UIDs()
}

func keywords(entries []UIDEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Keyword
	}
	return out
}

func TestUIDRegistryViewsKeepDefinitionOrder(t *testing.T) {
	uids := testUIDs(t)

	assert.Equal(t,
		[]string{"ImplicitVRLittleEndian", "ExplicitVRLittleEndian", "ExplicitVRBigEndian"},
		keywords(uids.TransferSyntaxes()))
	assert.Equal(t,
		[]string{"Verification", "NuclearMedicineImageStorageRetired", "CTImageStorage"},
		keywords(uids.SOPClasses()))
	assert.Equal(t, []string{"DCM"}, keywords(uids.ByType(TypeCodingScheme)))
	assert.Empty(t, uids.ByType(TypeLDAPOID))
}

func TestUIDRegistryViewsAreCopies(t *testing.T) {
	uids := testUIDs(t)

	ts := uids.TransferSyntaxes()
	ts[0].Keyword = "changed"
	assert.Equal(t, "ImplicitVRLittleEndian", uids.TransferSyntaxes()[0].Keyword)
}

func TestUIDRegistryNameFor(t *testing.T) {
	uids := testUIDs(t)

	tests := []struct {
		uid       string
		appendUID bool
		want      string
	}{
		{"1.2.840.10008.1.1", false, "Verification"},
		{"1.2.840.10008.1.1", true, "Verification (1.2.840.10008.1.1)"},
		{"0.0.0.0", false, "0.0.0.0"},
		{"0.0.0.0", true, "0.0.0.0"},
		{"", false, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uids.NameFor(tt.uid, tt.appendUID), "NameFor(%q, %v)", tt.uid, tt.appendUID)
	}
}

func TestUIDRegistryMembership(t *testing.T) {
	uids := testUIDs(t)

	assert.True(t, uids.IsSupportedTransferSyntax("1.2.840.10008.1.2"))
	assert.True(t, uids.IsSupportedTransferSyntax("1.2.840.10008.1.2.1"), "type is matched case-insensitively")
	assert.False(t, uids.IsSupportedTransferSyntax("9.9.9"))
	assert.False(t, uids.IsSupportedTransferSyntax("1.2.840.10008.1.1"), "a SOP Class is not a Transfer Syntax")

	assert.True(t, uids.IsSupportedSOPClass("1.2.840.10008.1.1"))
	assert.False(t, uids.IsSupportedSOPClass("1.2.840.10008.1.2"))

	assert.True(t, uids.IsRetiredTransferSyntax("1.2.840.10008.1.2.2"))
	assert.False(t, uids.IsRetiredTransferSyntax("1.2.840.10008.1.2"))
	assert.True(t, uids.IsRetiredSOPClass("1.2.840.10008.5.1.4.1.1.5"))
	assert.False(t, uids.IsRetiredSOPClass("1.2.840.10008.5.1.4.1.1.2"))
	assert.False(t, uids.IsRetiredSOPClass("9.9.9"))
}

func TestUIDRegistryLookup(t *testing.T) {
	uids := testUIDs(t)

	e, ok := uids.Lookup("1.2.840.10008.5.1.4.1.1.2")
	require.True(t, ok)
	assert.Equal(t, "CT Image Storage", e.Name)
	assert.Equal(t, TypeSOPClass, e.Type)

	e, ok = uids.Lookup("1.2.840.10008.1.2")
	require.True(t, ok)
	assert.Equal(t, "ImplicitVRLittleEndian", e.Name)

	_, ok = uids.Lookup("9.9.9")
	assert.False(t, ok)
}

func TestDuplicateUIDKeepsFirstPosition(t *testing.T) {
	src := `uids:
  - {uid: "1.2.840.10008.1.2", keyword: ImplicitVRLittleEndian, type: Transfer Syntax}
  - {uid: "1.2.840.10008.1.2.1", keyword: ExplicitVRLittleEndian, type: Transfer Syntax}
  - {uid: "1.2.840.10008.1.2", keyword: Implicit, type: Transfer Syntax}
`
	d, err := LoadBytes([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"Implicit", "ExplicitVRLittleEndian"}, keywords(d.UIDs().TransferSyntaxes()))
}

func TestCanonicalType(t *testing.T) {
	assert.Equal(t, TypeSOPClass, canonicalType(" sop class "))
	assert.Equal(t, TypeWellKnownFrameOfReference, canonicalType("Well-known Frame of Reference"))
	assert.Equal(t, UIDType("Vendor Thing"), canonicalType("Vendor Thing"))
}
