package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/validate/rules"
)

// RunRules lists the validation rules by category with their state after
// the selection flags are applied.
func RunRules(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(stderr)
	disable := fs.String("disable", "", "Comma-separated rule IDs to disable")
	category := fs.String("category", "", "Comma-separated rule categories to run")
	skip := fs.String("skip-category", "", "Comma-separated rule categories to skip")
	common := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitSuccess
		}
		return exitCommandError
	}

	e, err := loadEnv(stderr, common)
	if err != nil {
		return fail(stderr, err)
	}

	registry := rules.NewDefaultRegistry(e.dict)
	err = registry.Apply(validate.Selection{
		Categories:     splitList(*category),
		SkipCategories: splitList(*skip),
		DisabledRules:  splitList(*disable),
	})
	if err != nil {
		return fail(stderr, err)
	}

	for _, cat := range registry.Categories() {
		fmt.Fprintln(stdout, cat)
		for _, r := range registry.RulesByCategory(cat) {
			state := "enabled"
			if !registry.IsEnabled(r.ID()) {
				state = "disabled"
			}
			sev, _ := registry.Severity(r.ID())
			fmt.Fprintf(stdout, "  %-9s %-8s %-9s %s\n", r.ID(), sev, state, r.Name())
		}
	}
	fmt.Fprintf(stdout, "%d of %d rules enabled\n", registry.EnabledCount(), registry.Count())
	return exitSuccess
}
