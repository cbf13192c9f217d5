package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

func testTags(t *testing.T) *TagRegistry {
	t.Helper()
	src := `tags:
  - {group: "0000", element: "0001", keyword: CommandLengthToEnd, vr: UL, vm: "1", retired: true}
  - {group: "0010", element: "0010", keyword: PatientName, vr: PN, vm: "1"}
  - {group: "0028", element: "0106", keyword: SmallestImagePixelValue, vr: US/SS, vm: "1"}
  - {group: "60xx", element: "3000", keyword: OverlayData, vr: OB/OW, vm: "1"}
  - {group: "7FE0", element: "0010", keyword: PixelData, vr: OB/OW, vm: "1"}
  - {group: "1000", element: "xxx0", keyword: EscapeTriplet, vr: US, vm: "3", retired: true}
`
	d, err := LoadBytes([]byte(src))
	require.NoError(t, err)
	require.Empty(t, d.Issues())
	return d.Tags()
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"00080016", "00080016", false},
		{"0008,0016", "00080016", false},
		{"(0008,0016)", "00080016", false},
		{" (7FE0,0010) ", "7fe00010", false},
		{"0x00100010", "00100010", false},
		{"60xx3000", "60xx3000", false},
		{"0008001", "", true},
		{"0008,00G6", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "(0008,0016)", FormatCode("00080016"))
	assert.Equal(t, "abc", FormatCode("abc"))
}

func TestTagRegistryLookup(t *testing.T) {
	tags := testTags(t)

	name, ok := tags.NameFor("00100010")
	require.True(t, ok)
	assert.Equal(t, "PatientName", name)

	v, ok := tags.VRFor("00280106")
	require.True(t, ok)
	assert.Equal(t, vr.US, v, "composite VR resolves to its first member")

	// Codes are stored lowercase and lookups fold case.
	v, ok = tags.VRFor("7FE00010")
	require.True(t, ok)
	assert.Equal(t, vr.OB, v)

	_, ok = tags.NameFor("00091001")
	assert.False(t, ok)
	v, ok = tags.VRFor("00091001")
	assert.False(t, ok)
	assert.Equal(t, vr.Undefined, v)

	tag, ok := tags.TagFor("PatientName")
	require.True(t, ok)
	assert.Equal(t, "(0010,0010)", tag.String())
	_, ok = tags.TagFor("NoSuchKeyword")
	assert.False(t, ok)
}

func TestTagRegistryIsRetired(t *testing.T) {
	tags := testTags(t)

	assert.True(t, tags.IsRetired("00000001"))
	assert.False(t, tags.IsRetired("00100010"))
	assert.False(t, tags.IsRetired("ffffffff"))
}

func TestTagRegistryRepeatingGroups(t *testing.T) {
	tags := testTags(t)

	// Exact lookups only see the literal pattern.
	_, ok := tags.Lookup("60xx3000")
	assert.True(t, ok)
	_, ok = tags.Lookup("60003000")
	assert.False(t, ok)

	tag, ok := tags.MatchRepeating("60023000")
	require.True(t, ok)
	assert.Equal(t, "OverlayData", tag.Keyword)
	assert.True(t, tag.IsRepeating())

	tag, ok = tags.MatchRepeating("10000120")
	require.True(t, ok)
	assert.Equal(t, "EscapeTriplet", tag.Keyword)

	tag, ok = tags.MatchRepeating("00100010")
	require.True(t, ok)
	assert.Equal(t, "PatientName", tag.Keyword)
	assert.False(t, tag.IsRepeating())

	_, ok = tags.MatchRepeating("60023001")
	assert.False(t, ok)
	_, ok = tags.MatchRepeating("6002")
	assert.False(t, ok)
}

func TestTagRegistryAll(t *testing.T) {
	tags := testTags(t)

	all := tags.All()
	require.Len(t, all, tags.Len())
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code(), all[i].Code())
	}
	assert.Equal(t, "00000001", all[0].Code())
}
