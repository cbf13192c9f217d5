package rules

import (
	"fmt"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// RegisterLengthRules registers the VR length rules.
func RegisterLengthRules(registry *validate.Registry) {
	registry.Register(NewVR001())
	registry.Register(NewVR002())
}

// VR001 reports a value longer than the fixed length of its VR.
type VR001 struct {
	*validate.BaseRule
}

func NewVR001() *VR001 {
	return &VR001{
		BaseRule: validate.NewBaseRule("VR-001", "Fixed VR length", validate.CategoryVR, diag.SeverityError),
	}
}

func (r *VR001) CheckElement(e validate.Element) []diag.Result {
	limit := vr.FixedLength(e.VR())
	if limit == 0 || e.Length() <= limit {
		return nil
	}
	return []diag.Result{r.Result(e, fmt.Sprintf("Invalid VR length of %s element [%s] (%d > %d)",
		e.VR(), e.Name(), e.Length(), limit))}
}

// VR002 reports a value longer than the maximum length of its VR.
type VR002 struct {
	*validate.BaseRule
}

func NewVR002() *VR002 {
	return &VR002{
		BaseRule: validate.NewBaseRule("VR-002", "Maximum VR length", validate.CategoryVR, diag.SeverityWarning),
	}
}

func (r *VR002) CheckElement(e validate.Element) []diag.Result {
	limit := vr.MaxLength(e.VR())
	if limit == 0 || e.Length() <= limit {
		return nil
	}
	return []diag.Result{r.Result(e, fmt.Sprintf("Invalid max VR length of %s element [%s] (%d > %d)",
		e.VR(), e.Name(), e.Length(), limit))}
}
