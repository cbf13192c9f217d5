// Package dictionary provides the DICOM data dictionary: data element tags,
// Value Representations and registered UIDs (SOP Classes, Transfer Syntaxes
// and other registry entries).
//
// A Dictionary is built once from a definition source and is read-only
// afterwards. The compiled-in table is available through Default; an
// alternate table can be loaded with LoadFile or LoadBytes.
//
// # Definition Source Format
//
//	edition: "2024c"
//	tags:
//	  - {group: "0002", element: "0010", keyword: TransferSyntaxUID, vr: UI, vm: "1"}
//	  - {group: "0000", element: "0001", keyword: CommandLengthToEnd, vr: UL, vm: "1", retired: true}
//	uids:
//	  - {uid: "1.2.840.10008.1.1", keyword: Verification, name: Verification SOP Class, type: SOP Class}
//
// Group and element are four hex digits; 'x' marks a wildcard digit of a
// repeating group ("60xx"). Composite VRs such as "US/SS" resolve to their
// first member.
//
// # Failure Handling
//
// An absent or unparseable source fails the load with a *LoadError. A single
// bad record (missing keyword, bad tag digits, unknown VR, missing uid type)
// is skipped and listed by Dictionary.Issues. Duplicate keys are
// last-writer-wins and listed as IssueDuplicate.
//
// # Lookup Semantics
//
// Tag lookups match codes exactly, so repeating-group entries are only
// found under their literal pattern ("60xx3000"). TagRegistry.MatchRepeating
// adds pattern-aware matching for callers that want it. Unknown codes,
// keywords and uids return false; NameForUID echoes unknown uids.
package dictionary
