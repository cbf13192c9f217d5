// Package dicttest provides dictionary fixtures for tests.
package dicttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
)

// Source is a small definition table covering one tag of each rule family:
// a retired tag, a repeating group, string and binary VRs, and the uids the
// validator consults.
const Source = `edition: "2024c"
tags:
  - {group: "0000", element: "0001", keyword: CommandLengthToEnd, vr: UL, vm: "1", retired: true}
  - {group: "0002", element: "0010", keyword: TransferSyntaxUID, vr: UI, vm: "1"}
  - {group: "0008", element: "0016", keyword: SOPClassUID, vr: UI, vm: "1"}
  - {group: "0008", element: "0020", keyword: StudyDate, vr: DA, vm: "1"}
  - {group: "0008", element: "0060", keyword: Modality, vr: CS, vm: "1"}
  - {group: "0010", element: "0010", keyword: PatientName, vr: PN, vm: "1"}
  - {group: "0010", element: "0020", keyword: PatientID, vr: LO, vm: "1"}
  - {group: "0028", element: "0010", keyword: Rows, vr: US, vm: "1"}
  - {group: "0028", element: "0106", keyword: SmallestImagePixelValue, vr: US/SS, vm: "1"}
  - {group: "60xx", element: "3000", keyword: OverlayData, vr: OB/OW, vm: "1"}
  - {group: "7fe0", element: "0010", keyword: PixelData, vr: OB/OW, vm: "1"}
uids:
  - {uid: "1.2.840.10008.1.1", keyword: Verification, name: Verification SOP Class, type: SOP Class}
  - {uid: "1.2.840.10008.1.2", keyword: ImplicitVRLittleEndian, name: Implicit VR Little Endian, type: Transfer Syntax}
  - {uid: "1.2.840.10008.1.2.1", keyword: ExplicitVRLittleEndian, name: Explicit VR Little Endian, type: Transfer Syntax}
  - {uid: "1.2.840.10008.1.2.2", keyword: ExplicitVRBigEndian, name: Explicit VR Big Endian, type: Transfer Syntax, retired: true}
  - {uid: "1.2.840.10008.5.1.4.1.1.2", keyword: CTImageStorage, name: CT Image Storage, type: SOP Class}
  - {uid: "1.2.840.10008.5.1.4.1.1.7", keyword: SecondaryCaptureImageStorage, name: Secondary Capture Image Storage, type: SOP Class}
  - {uid: "1.2.840.10008.5.1.4.1.2.2.1", keyword: StudyRootQueryRetrieveInformationModelFind, name: Study Root Query/Retrieve Information Model - FIND, type: SOP Class}
  - {uid: "1.2.840.10008.2.16.4", keyword: DCM, name: DICOM Controlled Terminology, type: Coding Scheme}
`

// New loads Source and fails the test if it does not load cleanly.
func New(tb testing.TB) *dictionary.Dictionary {
	tb.Helper()
	d, err := dictionary.LoadBytes([]byte(Source))
	require.NoError(tb, err)
	require.Empty(tb, d.Issues())
	return d
}

// Default returns the embedded dictionary.
func Default(tb testing.TB) *dictionary.Dictionary {
	tb.Helper()
	d, err := dictionary.Default()
	require.NoError(tb, err)
	return d
}
