package rules

import (
	"strings"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
)

// RegisterFileRules registers the file-level rules.
func RegisterFileRules(registry *validate.Registry) {
	registry.Register(NewFILE001())
	registry.Register(NewFILE002())
}

// FILE001 reports a file without the 128-byte preamble and "DICM" prefix.
type FILE001 struct {
	*validate.BaseRule
}

func NewFILE001() *FILE001 {
	return &FILE001{
		BaseRule: validate.NewBaseRule("FILE-001", "Preamble present", validate.CategoryFile, diag.SeverityNotice),
	}
}

func (r *FILE001) CheckFile(f validate.File) []diag.Result {
	if f.HasPreamble() {
		return nil
	}
	return []diag.Result{r.Result(f, "No prefix header was found")}
}

// FILE002 reports a file whose data set has no usable TransferSyntaxUID.
type FILE002 struct {
	*validate.BaseRule
}

func NewFILE002() *FILE002 {
	return &FILE002{
		BaseRule: validate.NewBaseRule("FILE-002", "Transfer Syntax defined", validate.CategoryFile, diag.SeverityWarning),
	}
}

func (r *FILE002) CheckFile(f validate.File) []diag.Result {
	if ds := f.DataSet(); ds != nil {
		if ts, ok := ds.String("TransferSyntaxUID"); ok && trimUID(ts) != "" {
			return nil
		}
	}
	return []diag.Result{r.Result(f, "Undefined Transfer Syntax")}
}

// trimUID strips the space and NUL padding UI values carry to reach an even
// length.
func trimUID(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "\x00 ")
}
