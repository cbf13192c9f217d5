package rules

import (
	"fmt"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
)

// RegisterTagRules registers the tag definition rules.
func RegisterTagRules(registry *validate.Registry, dict Dictionary) {
	registry.Register(NewTAG001(dict))
	registry.Register(NewTAG002(dict))
	registry.Register(NewTAG003(dict))
}

// TAG001 reports retired elements.
type TAG001 struct {
	*validate.BaseRule
	dict Dictionary
}

func NewTAG001(dict Dictionary) *TAG001 {
	return &TAG001{
		BaseRule: validate.NewBaseRule("TAG-001", "Retired tag", validate.CategoryTag, diag.SeverityNotice),
		dict:     dict,
	}
}

func (r *TAG001) CheckElement(e validate.Element) []diag.Result {
	if !r.dict.IsRetiredTag(e.TagCode()) {
		return nil
	}
	return []diag.Result{r.Result(e, fmt.Sprintf("Tag %s %s is retired", e.Tag(), e.Name()))}
}

// TAG002 reports elements whose tag the dictionary does not define,
// typically private elements.
type TAG002 struct {
	*validate.BaseRule
	dict Dictionary
}

func NewTAG002(dict Dictionary) *TAG002 {
	return &TAG002{
		BaseRule: validate.NewBaseRule("TAG-002", "Unknown tag", validate.CategoryTag, diag.SeverityNotice),
		dict:     dict,
	}
}

func (r *TAG002) CheckElement(e validate.Element) []diag.Result {
	if e.Name() != validate.UnknownName && r.dict.HasTag(e.TagCode()) {
		return nil
	}
	return []diag.Result{r.Result(e, "Unknown tag, may be private")}
}

// TAG003 reports an element encoded with a VR other than the one the
// dictionary defines. Unknown elements and tags without a dictionary VR are
// exempt.
type TAG003 struct {
	*validate.BaseRule
	dict Dictionary
}

func NewTAG003(dict Dictionary) *TAG003 {
	return &TAG003{
		BaseRule: validate.NewBaseRule("TAG-003", "VR matches dictionary", validate.CategoryTag, diag.SeverityError),
		dict:     dict,
	}
}

func (r *TAG003) CheckElement(e validate.Element) []diag.Result {
	if e.Name() == validate.UnknownName {
		return nil
	}
	want, ok := r.dict.VRForTag(e.TagCode())
	if !ok || e.VR() == want {
		return nil
	}
	return []diag.Result{r.Result(e, fmt.Sprintf("Value Representation mismatch, %s required", want))}
}
