// Package vr models DICOM Value Representations and their length rules.
//
// The length tables reproduce the cutoffs of DICOM PS3.5 section 6.2 as used
// by the conformance validator:
//
//	FixedLength  AS AT SL UL = 4, FD DA = 8, DT = 26, SS US = 2
//	MaxLength    AE CS DS SH = 16, DA = 18, DT = 26, IS = 12, LO PN TM = 64,
//	             LT = 10240, ST = 1024
//
// A length of 0 means the VR has no fixed (or maximum) length constraint.
package vr

import "strings"

// VR is a DICOM Value Representation.
type VR uint8

// Value Representations. The zero value is Undefined and never returned
// by Parse.
const (
	Undefined VR = iota
	AE           // Application Entity
	AS           // Age String
	AT           // Attribute Tag
	CS           // Code String
	DA           // Date
	DS           // Decimal String
	DT           // Date Time
	FL           // Floating Point Single
	FD           // Floating Point Double
	IS           // Integer String
	LO           // Long String
	LT           // Long Text
	OB           // Other Byte
	OD           // Other Double
	OF           // Other Float
	OL           // Other Long
	OW           // Other Word
	PN           // Person Name
	SH           // Short String
	SL           // Signed Long
	SQ           // Sequence of Items
	SS           // Signed Short
	ST           // Short Text
	TM           // Time
	UC           // Unlimited Characters
	UI           // Unique Identifier
	UL           // Unsigned Long
	UN           // Unknown
	UR           // URI/URL
	US           // Unsigned Short
	UT           // Unlimited Text
)

var names = [...]string{
	Undefined: "",
	AE:        "AE",
	AS:        "AS",
	AT:        "AT",
	CS:        "CS",
	DA:        "DA",
	DS:        "DS",
	DT:        "DT",
	FL:        "FL",
	FD:        "FD",
	IS:        "IS",
	LO:        "LO",
	LT:        "LT",
	OB:        "OB",
	OD:        "OD",
	OF:        "OF",
	OL:        "OL",
	OW:        "OW",
	PN:        "PN",
	SH:        "SH",
	SL:        "SL",
	SQ:        "SQ",
	SS:        "SS",
	ST:        "ST",
	TM:        "TM",
	UC:        "UC",
	UI:        "UI",
	UL:        "UL",
	UN:        "UN",
	UR:        "UR",
	US:        "US",
	UT:        "UT",
}

var byName = func() map[string]VR {
	m := make(map[string]VR, len(names))
	for i, n := range names {
		if n != "" {
			m[n] = VR(i)
		}
	}
	return m
}()

// String returns the two-letter code, or an empty string for Undefined.
func (v VR) String() string {
	if int(v) < len(names) {
		return names[v]
	}
	return ""
}

// IsValid reports whether v is one of the defined Value Representations.
func (v VR) IsValid() bool {
	return v != Undefined && int(v) < len(names)
}

// All returns every defined VR in declaration order.
func All() []VR {
	all := make([]VR, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		all = append(all, VR(i))
	}
	return all
}

// Parse maps a VR code to its VR. Ambiguous composites such as "US/SS",
// "OB/OW" or "US or SS or OW" resolve to their first member. Unknown codes
// return (Undefined, false).
func Parse(s string) (VR, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Undefined, false
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	} else if i := strings.Index(s, " or "); i >= 0 {
		s = s[:i]
	}
	v, ok := byName[strings.TrimSpace(s)]
	return v, ok
}

// MustParse is like Parse but panics on an unknown code.
// It is intended for tables and tests.
func MustParse(s string) VR {
	v, ok := Parse(s)
	if !ok {
		panic("vr: unknown value representation " + s)
	}
	return v
}
