package dataset

import (
	"strings"

	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

var binarySize = map[vr.VR]uint32{
	vr.AT: 4,
	vr.FD: 8,
	vr.FL: 4,
	vr.SL: 4,
	vr.SS: 2,
	vr.UL: 4,
	vr.US: 2,
}

// ValueLength returns the encoded length of value under v: string values
// joined with backslashes and padded to even length, binary numbers by
// their width. Sequences and nil values have length 0.
func ValueLength(v vr.VR, value any) uint32 {
	if v == vr.SQ {
		return 0
	}
	if size, ok := binarySize[v]; ok {
		switch x := value.(type) {
		case nil:
			return 0
		case []int64:
			return size * uint32(len(x))
		case []float64:
			return size * uint32(len(x))
		case []string:
			return size * uint32(len(x))
		default:
			return size
		}
	}

	var n int
	switch x := value.(type) {
	case string:
		n = len(x)
	case []string:
		n = len(strings.Join(x, `\`))
	case []byte:
		n = len(x)
	}
	return uint32(n + n%2)
}
