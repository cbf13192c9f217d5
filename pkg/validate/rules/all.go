// Package rules holds the conformance rules applied by the validator.
package rules

import (
	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/vr"
)

// Dictionary is the part of a data dictionary the rules consult.
// *dictionary.Dictionary implements it.
type Dictionary interface {
	IsSupportedTransferSyntax(uid string) bool
	IsSupportedSOPClass(uid string) bool
	HasTag(code string) bool
	IsRetiredTag(code string) bool
	VRForTag(code string) (vr.VR, bool)
}

// RegisterAllRules registers all validation rules with the given registry.
// File rules come first, then element rules in evaluation order.
func RegisterAllRules(registry *validate.Registry, dict Dictionary) {
	RegisterFileRules(registry)
	RegisterUIDRules(registry, dict)
	RegisterLengthRules(registry)
	RegisterTagRules(registry, dict)
}

// NewDefaultRegistry creates a new registry with all rules registered.
func NewDefaultRegistry(dict Dictionary) *validate.Registry {
	registry := validate.NewRegistry()
	RegisterAllRules(registry, dict)
	return registry
}
