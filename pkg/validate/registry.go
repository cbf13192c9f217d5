package validate

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/dcmspec/dcmspec-go/pkg/diag"
)

// Registry manages validation rules.
type Registry struct {
	mu        sync.RWMutex
	rules     map[string]Rule
	enabled   map[string]bool
	severity  map[string]diag.Severity
	ruleOrder []string // registration order, for deterministic output
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:     make(map[string]Rule),
		enabled:   make(map[string]bool),
		severity:  make(map[string]diag.Severity),
		ruleOrder: make([]string, 0),
	}
}

// Register adds a rule to the registry.
// The rule is enabled by default with its default severity. Registering an
// id again replaces the rule but keeps its position.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rule.ID()
	if _, exists := r.rules[id]; !exists {
		r.ruleOrder = append(r.ruleOrder, id)
	}
	r.rules[id] = rule
	r.enabled[id] = true
	r.severity[id] = rule.DefaultSeverity()
}

// Enable enables a rule by ID.
func (r *Registry) Enable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[id]; ok {
		r.enabled[id] = true
	}
}

// Disable disables a rule by ID.
func (r *Registry) Disable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[id]; ok {
		r.enabled[id] = false
	}
}

// SetSeverity overrides the severity for a rule.
func (r *Registry) SetSeverity(id string, severity diag.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[id]; ok {
		r.severity[id] = severity
	}
}

// IsEnabled returns true if the rule is enabled.
func (r *Registry) IsEnabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[id]
}

// Severity returns the effective severity for a rule.
func (r *Registry) Severity(id string) (diag.Severity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sev, ok := r.severity[id]
	return sev, ok
}

// Rule returns a rule by ID, or nil if not found.
func (r *Registry) Rule(id string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[id]
}

// EnabledRules returns all enabled rules in registration order.
func (r *Registry) EnabledRules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []Rule
	for _, id := range r.ruleOrder {
		if r.enabled[id] {
			rules = append(rules, r.rules[id])
		}
	}
	return rules
}

// AllRules returns all registered rules in registration order.
func (r *Registry) AllRules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, len(r.ruleOrder))
	for i, id := range r.ruleOrder {
		rules[i] = r.rules[id]
	}
	return rules
}

// RulesByCategory returns all rules in a category.
func (r *Registry) RulesByCategory(category string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []Rule
	for _, id := range r.ruleOrder {
		if r.rules[id].Category() == category {
			rules = append(rules, r.rules[id])
		}
	}
	return rules
}

// Categories returns all unique categories.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catSet := make(map[string]struct{})
	for _, rule := range r.rules {
		catSet[rule.Category()] = struct{}{}
	}

	categories := make([]string, 0, len(catSet))
	for cat := range catSet {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

// RunFileRules runs every enabled FileRule against f. The results carry the
// registry's severity settings.
func (r *Registry) RunFileRules(f File) []diag.Result {
	var results []diag.Result
	for _, rule := range r.EnabledRules() {
		fr, ok := rule.(FileRule)
		if !ok {
			continue
		}
		results = r.appendWithSeverity(results, fr.ID(), fr.CheckFile(f))
	}
	return results
}

// RunElementRules runs every enabled ElementRule against e. The results
// carry the registry's severity settings.
func (r *Registry) RunElementRules(e Element) []diag.Result {
	var results []diag.Result
	for _, rule := range r.EnabledRules() {
		er, ok := rule.(ElementRule)
		if !ok {
			continue
		}
		results = r.appendWithSeverity(results, er.ID(), er.CheckElement(e))
	}
	return results
}

func (r *Registry) appendWithSeverity(dst []diag.Result, id string, results []diag.Result) []diag.Result {
	if len(results) == 0 {
		return dst
	}
	sev, ok := r.Severity(id)
	for _, res := range results {
		if ok {
			res.Severity = sev
		}
		if res.RuleID == "" {
			res.RuleID = id
		}
		dst = append(dst, res)
	}
	return dst
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// EnabledCount returns the number of enabled rules.
func (r *Registry) EnabledCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, enabled := range r.enabled {
		if enabled {
			count++
		}
	}
	return count
}

// EnableAll enables all registered rules.
func (r *Registry) EnableAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.rules {
		r.enabled[id] = true
	}
}

// DisableAll disables all registered rules.
func (r *Registry) DisableAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.rules {
		r.enabled[id] = false
	}
}

// EnableCategory enables all rules in a category.
func (r *Registry) EnableCategory(category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rule := range r.rules {
		if rule.Category() == category {
			r.enabled[id] = true
		}
	}
}

// DisableCategory disables all rules in a category.
func (r *Registry) DisableCategory(category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rule := range r.rules {
		if rule.Category() == category {
			r.enabled[id] = false
		}
	}
}

// Selection narrows a registry to a subset of its rules. Zero fields keep
// every rule enabled.
type Selection struct {
	// Categories limits validation to rules in these categories.
	Categories []string
	// SkipCategories disables every rule in these categories.
	SkipCategories []string
	// DisabledRules lists rule IDs to disable.
	DisabledRules []string
}

// Apply enables all rules and then narrows them to s. Unknown rule IDs and
// categories are rejected before anything changes.
func (r *Registry) Apply(s Selection) error {
	known := r.Categories()
	for _, c := range append(slices.Clone(s.Categories), s.SkipCategories...) {
		if !slices.Contains(known, c) {
			return fmt.Errorf("unknown rule category %q", c)
		}
	}
	for _, id := range s.DisabledRules {
		if r.Rule(id) == nil {
			return fmt.Errorf("unknown rule %q", id)
		}
	}

	r.EnableAll()
	if len(s.Categories) > 0 {
		r.DisableAll()
		for _, c := range s.Categories {
			r.EnableCategory(c)
		}
	}
	for _, c := range s.SkipCategories {
		r.DisableCategory(c)
	}
	for _, id := range s.DisabledRules {
		r.Disable(id)
	}
	return nil
}
