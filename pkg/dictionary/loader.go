package dictionary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dcmspec/dcmspec-go/pkg/version"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// Option configures how a dictionary is built.
type Option func(*loadOptions)

type loadOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives skipped-record and duplicate-key
// warnings. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) loadOptions {
	o := loadOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load builds a dictionary from a parsed source in a single pass.
//
// A record missing a required field (group, element, keyword or a valid VR
// for tags; uid, keyword or type for uids) is skipped and reported through
// Dictionary.Issues. Duplicate keys are last-writer-wins and are reported
// as IssueDuplicate. Only a missing source or a malformed edition fails the
// load.
func Load(src *Source, opts ...Option) (*Dictionary, error) {
	if src == nil {
		return nil, &LoadError{Err: ErrEmptySource}
	}
	o := applyOptions(opts)

	var edition version.Edition
	if src.Edition != "" {
		e, err := version.ParseEdition(src.Edition)
		if err != nil {
			return nil, &LoadError{Err: err}
		}
		edition = e
	}

	d := &Dictionary{
		tags:    newTagRegistry(len(src.Tags)),
		uids:    newUIDRegistry(len(src.UIDs)),
		edition: edition,
		issues:  append([]RecordIssue(nil), src.Issues...),
	}

	for i := range src.Tags {
		t, issue := tagFromRecord(&src.Tags[i])
		if issue != nil {
			d.issues = append(d.issues, *issue)
			continue
		}
		if prev, dup := d.tags.byKeyword[t.Keyword]; dup && prev.Code() != t.Code() {
			d.issues = append(d.issues, RecordIssue{
				Kind: IssueDuplicate, Record: RecordTag, Key: t.Keyword, Line: src.Tags[i].Line,
				Reason: fmt.Sprintf("keyword also defined for %s", prev),
			})
		}
		if d.tags.put(t) {
			d.issues = append(d.issues, RecordIssue{
				Kind: IssueDuplicate, Record: RecordTag, Key: t.Code(), Line: src.Tags[i].Line,
				Reason: "code defined more than once, keeping the last definition",
			})
		}
	}

	for i := range src.UIDs {
		e, issue := uidFromRecord(&src.UIDs[i])
		if issue != nil {
			d.issues = append(d.issues, *issue)
			continue
		}
		if d.uids.put(e) {
			d.issues = append(d.issues, RecordIssue{
				Kind: IssueDuplicate, Record: RecordUID, Key: e.UID, Line: src.UIDs[i].Line,
				Reason: "uid defined more than once, keeping the last definition",
			})
		}
	}

	d.tags.seal()
	d.uids.seal()

	for _, issue := range d.issues {
		o.logger.Warn("dictionary record issue",
			slog.String("kind", string(issue.Kind)),
			slog.String("record", string(issue.Record)),
			slog.String("key", issue.Key),
			slog.Int("line", issue.Line),
			slog.String("reason", issue.Reason),
		)
	}
	o.logger.Debug("dictionary loaded",
		slog.String("edition", edition.String()),
		slog.Int("tags", d.tags.Len()),
		slog.Int("uids", d.uids.Len()),
		slog.Int("issues", len(d.issues)),
	)

	return d, nil
}

// LoadBytes parses and loads a YAML definition table.
func LoadBytes(data []byte, opts ...Option) (*Dictionary, error) {
	src, err := ParseSource(data)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return Load(src, opts...)
}

// LoadFile reads, parses and loads a YAML definition table from path.
func LoadFile(path string, opts ...Option) (*Dictionary, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	d, err := Load(src, opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return d, nil
}

func tagFromRecord(rec *TagRecord) (Tag, *RecordIssue) {
	malformed := func(key, reason string) *RecordIssue {
		return &RecordIssue{Kind: IssueMalformed, Record: RecordTag, Key: key, Line: rec.Line, Reason: reason}
	}

	group := strings.ToLower(strings.TrimSpace(string(rec.Group)))
	element := strings.ToLower(strings.TrimSpace(string(rec.Element)))
	code := group + element
	if !validHexField(group) || !validHexField(element) {
		return Tag{}, malformed(code, "group and element must be four hex digits")
	}

	keyword := strings.TrimSpace(rec.Keyword)
	if keyword == "" {
		return Tag{}, malformed(code, "missing keyword")
	}

	v, ok := vr.Parse(rec.VR)
	if !ok {
		return Tag{}, malformed(code, fmt.Sprintf("missing or unknown vr %q", rec.VR))
	}

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = keyword
	}

	return Tag{
		Group:   group,
		Element: element,
		Keyword: keyword,
		Name:    name,
		VR:      v,
		VM:      strings.TrimSpace(rec.VM),
		Retired: rec.Retired,
	}, nil
}

func uidFromRecord(rec *UIDRecord) (UIDEntry, *RecordIssue) {
	uid := strings.TrimSpace(string(rec.UID))
	malformed := func(reason string) *RecordIssue {
		return &RecordIssue{Kind: IssueMalformed, Record: RecordUID, Key: uid, Line: rec.Line, Reason: reason}
	}

	if uid == "" {
		return UIDEntry{}, malformed("missing uid")
	}
	keyword := strings.TrimSpace(rec.Keyword)
	if keyword == "" {
		return UIDEntry{}, malformed("missing keyword")
	}
	if strings.TrimSpace(rec.Type) == "" {
		return UIDEntry{}, malformed("missing type")
	}

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = keyword
	}

	return UIDEntry{
		UID:     uid,
		Keyword: keyword,
		Name:    name,
		Type:    canonicalType(rec.Type),
		Retired: rec.Retired,
	}, nil
}

func validHexField(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexOrWildcard(s[i]) {
			return false
		}
	}
	return true
}
