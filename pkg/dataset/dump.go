package dataset

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// ErrEmptyDump is returned for a dump without content.
var ErrEmptyDump = errors.New("empty dataset dump")

// Location is the subject of a problem found in a dump.
type Location struct {
	Path string
	Line int
}

func (l Location) String() string {
	if l.Path != "" {
		return fmt.Sprintf("%s:%d", l.Path, l.Line)
	}
	return fmt.Sprintf("line %d", l.Line)
}

type dumpFile struct {
	Preamble bool        `yaml:"preamble"`
	Elements []yaml.Node `yaml:"elements"`
}

type dumpElement struct {
	Tag    dictionary.Scalar `yaml:"tag"`
	VR     string            `yaml:"vr"`
	Length *uint32           `yaml:"length"`
	Value  yaml.Node         `yaml:"value"`
	Items  []yaml.Node       `yaml:"items"`
}

// ReadDump parses a YAML dump of a decoded file:
//
//	preamble: true
//	elements:
//	  - {tag: "(0002,0010)", vr: UI, value: "1.2.840.10008.1.2.1"}
//	  - {tag: "0028,0010", vr: US, value: 512}
//	  - {tag: "7fe0,0010", vr: OB, length: 524288}
//	  - tag: "0008,1140"
//	    vr: SQ
//	    items:
//	      - [{tag: "0008,1150", vr: UI, value: "1.2.840.10008.5.1.4.1.1.2"}]
//
// Names come from r. A missing vr is looked up in r as an implicit VR
// decoder would, falling back to UN. A missing length is computed from the
// value.
//
// Problems a decoder would report (bad tags, unparseable VRs or values,
// declared lengths shorter than the value, duplicate elements) become the
// data set's internal validations. Only an empty or unparseable document is
// an error.
func ReadDump(data []byte, r Resolver) (*File, error) {
	return readDump(data, "", r)
}

// ReadDumpFile reads a dump from path. Internal validations cite path.
func ReadDumpFile(path string, r Resolver) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return readDump(data, path, r)
}

func readDump(data []byte, path string, r Resolver) (*File, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDump
	}
	var raw dumpFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dataset dump: %w", err)
	}

	d := &decoder{path: path, resolver: r, root: New()}
	d.decodeElements(d.root, raw.Elements)
	return NewFile(raw.Preamble, d.root), nil
}

type decoder struct {
	path     string
	resolver Resolver
	root     *DataSet
}

func (d *decoder) report(line int, sev diag.Severity, format string, args ...any) {
	d.root.AddInternal(diag.Newf(Location{Path: d.path, Line: line}, sev, format, args...))
}

func (d *decoder) decodeElements(ds *DataSet, nodes []yaml.Node) {
	seen := make(map[string]bool, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		e, ok := d.decodeElement(node)
		if !ok {
			continue
		}
		if seen[e.code] {
			d.report(node.Line, diag.SeverityWarning, "Duplicate element %s", e.Tag())
		}
		seen[e.code] = true
		ds.Add(e)
	}
}

func (d *decoder) decodeElement(node *yaml.Node) (*Element, bool) {
	var raw dumpElement
	if err := node.Decode(&raw); err != nil {
		d.report(node.Line, diag.SeverityError, "Unreadable element: %v", err)
		return nil, false
	}

	code, err := dictionary.ParseCode(string(raw.Tag))
	if err != nil {
		d.report(node.Line, diag.SeverityError, "Invalid tag %q", string(raw.Tag))
		return nil, false
	}
	tag := dictionary.FormatCode(code)

	v, ok := d.elementVR(code, raw.VR)
	if !ok {
		d.report(node.Line, diag.SeverityError, "Unparseable VR %q for element %s", raw.VR, tag)
		return nil, false
	}

	var value any
	if v == vr.SQ {
		value = d.decodeItems(raw.Items)
	} else {
		value, err = decodeValue(v, &raw.Value)
		if err != nil {
			d.report(raw.Value.Line, diag.SeverityError, "Invalid %s value for element %s: %v", v, tag, err)
			value = nil
		}
	}

	length := ValueLength(v, value)
	if raw.Length != nil {
		if *raw.Length < length {
			d.report(node.Line, diag.SeverityError,
				"Declared length %d of element %s is shorter than its value (%d)", *raw.Length, tag, length)
		}
		length = *raw.Length
	}

	return NewElement(d.resolver, code, v, length, value), true
}

func (d *decoder) elementVR(code, s string) (vr.VR, bool) {
	if s != "" {
		return vr.Parse(s)
	}
	if d.resolver != nil {
		if v, ok := d.resolver.VRForTag(code); ok {
			return v, true
		}
	}
	return vr.UN, true
}

func (d *decoder) decodeItems(nodes []yaml.Node) []*DataSet {
	items := make([]*DataSet, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		if node.Kind != yaml.SequenceNode {
			d.report(node.Line, diag.SeverityError, "Sequence item must be a list of elements")
			continue
		}
		item := New()
		d.decodeElements(item, nodeList(node))
		items = append(items, item)
	}
	return items
}

func nodeList(n *yaml.Node) []yaml.Node {
	out := make([]yaml.Node, len(n.Content))
	for i, c := range n.Content {
		out[i] = *c
	}
	return out
}

func decodeValue(v vr.VR, node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return decodeScalar(v, node.Value)
	case yaml.SequenceNode:
		return decodeMulti(v, node)
	default:
		return nil, fmt.Errorf("expected a scalar or a list")
	}
}

func decodeScalar(v vr.VR, s string) (any, error) {
	switch v {
	case vr.US, vr.SS, vr.UL, vr.SL:
		return parseInt(s)
	case vr.FL, vr.FD:
		return strconv.ParseFloat(s, 64)
	case vr.OB, vr.OW, vr.OD, vr.OF, vr.OL, vr.UN:
		return hex.DecodeString(s)
	default:
		return s, nil
	}
}

// parseInt reads a decimal integer, or a hexadecimal one with an explicit
// 0x prefix. Leading zeros stay decimal.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		n, err := strconv.ParseInt(digits[2:], 16, 64)
		if neg {
			n = -n
		}
		return n, err
	}
	return strconv.ParseInt(s, 10, 64)
}

func decodeMulti(v vr.VR, node *yaml.Node) (any, error) {
	var (
		ints   []int64
		floats []float64
		strs   []string
	)
	for _, c := range node.Content {
		if c.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: nested values are not allowed", c.Line)
		}
		x, err := decodeScalar(v, c.Value)
		if err != nil {
			return nil, err
		}
		switch x := x.(type) {
		case int64:
			ints = append(ints, x)
		case float64:
			floats = append(floats, x)
		case string:
			strs = append(strs, x)
		default:
			return nil, fmt.Errorf("%s does not take multiple values", v)
		}
	}
	switch {
	case ints != nil:
		return ints, nil
	case floats != nil:
		return floats, nil
	default:
		return strs, nil
	}
}
