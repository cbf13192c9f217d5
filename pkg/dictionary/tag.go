package dictionary

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// Tag is a data element definition.
type Tag struct {
	// Group and Element are four lowercase hex digits each. Repeating
	// groups use 'x' for wildcard digits ("60xx").
	Group   string
	Element string

	Keyword string
	// Name is the human-readable name; it defaults to Keyword.
	Name    string
	VR      vr.VR
	VM      string
	Retired bool
}

// Code returns the composite key: group followed by element ("00080016").
func (t Tag) Code() string {
	return t.Group + t.Element
}

// String returns the tag in "(gggg,eeee)" notation.
func (t Tag) String() string {
	return "(" + t.Group + "," + t.Element + ")"
}

// IsRepeating reports whether the tag denotes a repeating group or element
// pattern rather than a single data element.
func (t Tag) IsRepeating() bool {
	return strings.ContainsRune(t.Code(), 'x')
}

// ParseCode normalizes a tag written as "00080016", "0008,0016",
// "(0008,0016)" or "0x00080016" into its lowercase composite code.
func ParseCode(s string) (string, error) {
	c := strings.TrimSpace(s)
	c = strings.TrimPrefix(strings.TrimSuffix(c, ")"), "(")
	c = strings.TrimPrefix(strings.TrimPrefix(c, "0x"), "0X")
	c = strings.ReplaceAll(c, ",", "")
	c = strings.ToLower(c)

	if len(c) != 8 {
		return "", fmt.Errorf("invalid tag %q: expected 8 hex digits", s)
	}
	for i := 0; i < len(c); i++ {
		if !isHexOrWildcard(c[i]) {
			return "", fmt.Errorf("invalid tag %q: bad digit %q", s, c[i])
		}
	}
	return c, nil
}

// FormatCode renders a composite code as "(gggg,eeee)". Codes of the wrong
// length are returned unchanged.
func FormatCode(code string) string {
	if len(code) != 8 {
		return code
	}
	return "(" + code[:4] + "," + code[4:] + ")"
}

func isHexOrWildcard(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || c == 'x'
}

// TagRegistry looks up data element definitions by code and keyword.
// Lookups are exact: a repeating-group entry such as "60xx0010" is only
// found under that literal code. Use MatchRepeating for pattern lookups.
//
// A TagRegistry is immutable once built and safe for concurrent use.
type TagRegistry struct {
	byCode    map[string]Tag
	byKeyword map[string]Tag
	repeating []Tag
}

func newTagRegistry(size int) *TagRegistry {
	return &TagRegistry{
		byCode:    make(map[string]Tag, size),
		byKeyword: make(map[string]Tag, size),
	}
}

// put inserts t, replacing any entry with the same code or keyword.
// It reports whether the code was already present.
func (r *TagRegistry) put(t Tag) (replaced bool) {
	prev, replaced := r.byCode[t.Code()]
	if replaced && prev.Keyword != t.Keyword {
		if k, ok := r.byKeyword[prev.Keyword]; ok && k.Code() == prev.Code() {
			delete(r.byKeyword, prev.Keyword)
		}
	}
	r.byCode[t.Code()] = t
	r.byKeyword[t.Keyword] = t
	return replaced
}

// seal finishes construction.
func (r *TagRegistry) seal() {
	for _, t := range r.byCode {
		if t.IsRepeating() {
			r.repeating = append(r.repeating, t)
		}
	}
	slices.SortFunc(r.repeating, func(a, b Tag) int { return strings.Compare(a.Code(), b.Code()) })
}

// Lookup returns the definition for code.
func (r *TagRegistry) Lookup(code string) (Tag, bool) {
	t, ok := r.byCode[strings.ToLower(code)]
	return t, ok
}

// NameFor returns the keyword of the element identified by code.
func (r *TagRegistry) NameFor(code string) (string, bool) {
	t, ok := r.Lookup(code)
	if !ok {
		return "", false
	}
	return t.Keyword, true
}

// VRFor returns the Value Representation of the element identified by code.
func (r *TagRegistry) VRFor(code string) (vr.VR, bool) {
	t, ok := r.Lookup(code)
	if !ok {
		return vr.Undefined, false
	}
	return t.VR, true
}

// TagFor returns the definition with the given keyword.
func (r *TagRegistry) TagFor(keyword string) (Tag, bool) {
	t, ok := r.byKeyword[keyword]
	return t, ok
}

// IsRetired reports whether code identifies a retired element. Unknown
// codes are not retired.
func (r *TagRegistry) IsRetired(code string) bool {
	t, ok := r.Lookup(code)
	return ok && t.Retired
}

// MatchRepeating returns the definition for code, falling back to the first
// repeating-group pattern (in code order) whose non-wildcard digits match.
func (r *TagRegistry) MatchRepeating(code string) (Tag, bool) {
	code = strings.ToLower(code)
	if t, ok := r.byCode[code]; ok {
		return t, true
	}
	if len(code) != 8 {
		return Tag{}, false
	}
	for _, t := range r.repeating {
		if matchPattern(t.Code(), code) {
			return t, true
		}
	}
	return Tag{}, false
}

func matchPattern(pattern, code string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 'x' && pattern[i] != code[i] {
			return false
		}
	}
	return true
}

// Len returns the number of definitions.
func (r *TagRegistry) Len() int {
	return len(r.byCode)
}

// All returns every definition sorted by code.
func (r *TagRegistry) All() []Tag {
	all := make([]Tag, 0, len(r.byCode))
	for _, t := range r.byCode {
		all = append(all, t)
	}
	slices.SortFunc(all, func(a, b Tag) int { return strings.Compare(a.Code(), b.Code()) })
	return all
}
