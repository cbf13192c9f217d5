package rules

import (
	"fmt"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
)

// RegisterUIDRules registers the uid membership rules.
func RegisterUIDRules(registry *validate.Registry, dict Dictionary) {
	registry.Register(NewUID001(dict))
	registry.Register(NewUID002(dict))
}

// uidValue returns the UID carried by e when e is named name and holds a
// string value.
func uidValue(e validate.Element, name string) (string, bool) {
	if e.Name() != name {
		return "", false
	}
	s, ok := e.Value().(string)
	if !ok {
		return "", false
	}
	return trimUID(s), true
}

// UID001 reports a TransferSyntaxUID that is not a registered Transfer
// Syntax.
type UID001 struct {
	*validate.BaseRule
	dict Dictionary
}

func NewUID001(dict Dictionary) *UID001 {
	return &UID001{
		BaseRule: validate.NewBaseRule("UID-001", "Transfer Syntax supported", validate.CategoryUID, diag.SeverityWarning),
		dict:     dict,
	}
}

func (r *UID001) CheckElement(e validate.Element) []diag.Result {
	uid, ok := uidValue(e, "TransferSyntaxUID")
	if !ok || r.dict.IsSupportedTransferSyntax(uid) {
		return nil
	}
	return []diag.Result{r.Result(e, fmt.Sprintf("Transfer Syntax %s is not supported", uid))}
}

// UID002 reports a SOPClassUID that is not a registered SOP Class.
type UID002 struct {
	*validate.BaseRule
	dict Dictionary
}

func NewUID002(dict Dictionary) *UID002 {
	return &UID002{
		BaseRule: validate.NewBaseRule("UID-002", "SOP Class supported", validate.CategoryUID, diag.SeverityWarning),
		dict:     dict,
	}
}

func (r *UID002) CheckElement(e validate.Element) []diag.Result {
	uid, ok := uidValue(e, "SOPClassUID")
	if !ok || r.dict.IsSupportedSOPClass(uid) {
		return nil
	}
	return []diag.Result{r.Result(e, fmt.Sprintf("SOP Class %s is not supported", uid))}
}
