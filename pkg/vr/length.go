package vr

// fixedLengths holds the exact byte length of VRs whose value field has a
// fixed size. VRs not listed have no fixed length.
var fixedLengths = map[VR]uint32{
	AS: 4,
	AT: 4,
	DA: 8,
	DT: 26,
	FD: 8,
	SL: 4,
	SS: 2,
	UL: 4,
	US: 2,
}

// maxLengths holds the maximum byte length of VRs with a bounded value
// field. OD, OF and UT are unbounded and not listed.
var maxLengths = map[VR]uint32{
	AE: 16,
	CS: 16,
	DA: 18,
	DS: 16,
	DT: 26,
	IS: 12,
	LO: 64,
	LT: 10240,
	PN: 64,
	SH: 16,
	ST: 1024,
	TM: 64,
}

// FixedLength returns the fixed value length of v, or 0 if v is not fixed.
func FixedLength(v VR) uint32 {
	return fixedLengths[v]
}

// MaxLength returns the maximum value length of v, or 0 if v is unbounded.
func MaxLength(v VR) uint32 {
	return maxLengths[v]
}

// HasFixedLength reports whether v has a fixed value length.
func HasFixedLength(v VR) bool {
	return FixedLength(v) != 0
}

// HasMaxLength reports whether v has a maximum value length.
func HasMaxLength(v VR) bool {
	return MaxLength(v) != 0
}
