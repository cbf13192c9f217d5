package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
	"github.com/dcmspec/dcmspec-go/pkg/presentation"
)

var (
	errNoTag = errors.New("tag code or keyword required")
	errNoUID = errors.New("uid required")
)

// RunTag runs the tag command.
func RunTag(args []string, stdout, stderr io.Writer) int {
	return runLookup("tag", args, stdout, stderr, showTag)
}

// RunUID runs the uid command.
func RunUID(args []string, stdout, stderr io.Writer) int {
	return runLookup("uid", args, stdout, stderr, showUID)
}

// RunSyntaxes runs the syntaxes command.
func RunSyntaxes(args []string, stdout, stderr io.Writer) int {
	return runLookup("syntaxes", args, stdout, stderr, showSyntaxes)
}

type lookupFunc func(w io.Writer, d *dictionary.Dictionary, args []string) error

func runLookup(name string, args []string, stdout, stderr io.Writer, fn lookupFunc) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
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
	if err := fn(stdout, e.dict, fs.Args()); err != nil {
		return fail(stderr, err)
	}
	return exitSuccess
}

// showTag prints the definition of a tag given by code or keyword. Codes
// that are not defined literally fall back to repeating-group patterns.
func showTag(w io.Writer, d *dictionary.Dictionary, args []string) error {
	if len(args) < 1 {
		return errNoTag
	}
	arg := args[0]

	var (
		t  dictionary.Tag
		ok bool
	)
	if code, err := dictionary.ParseCode(arg); err == nil {
		t, ok = d.Tags().MatchRepeating(code)
	}
	if !ok {
		t, ok = d.DataTag(arg)
	}
	if !ok {
		return fmt.Errorf("unknown tag %q", arg)
	}

	fmt.Fprintf(w, "Tag:     %s\n", t)
	fmt.Fprintf(w, "Keyword: %s\n", t.Keyword)
	if t.Name != t.Keyword {
		fmt.Fprintf(w, "Name:    %s\n", t.Name)
	}
	fmt.Fprintf(w, "VR:      %s\n", t.VR)
	if t.VM != "" {
		fmt.Fprintf(w, "VM:      %s\n", t.VM)
	}
	if t.Retired {
		fmt.Fprintln(w, "Retired: yes")
	}
	return nil
}

func showUID(w io.Writer, d *dictionary.Dictionary, args []string) error {
	if len(args) < 1 {
		return errNoUID
	}
	e, ok := d.UIDs().Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown uid %q", args[0])
	}

	fmt.Fprintf(w, "UID:     %s\n", e.UID)
	fmt.Fprintf(w, "Keyword: %s\n", e.Keyword)
	fmt.Fprintf(w, "Name:    %s\n", e.Name)
	fmt.Fprintf(w, "Type:    %s\n", e.Type)
	if e.Retired {
		fmt.Fprintln(w, "Retired: yes")
	}
	return nil
}

// showSyntaxes prints every presentation context, or the transfer syntaxes
// of one abstract syntax.
func showSyntaxes(w io.Writer, d *dictionary.Dictionary, args []string) error {
	table := presentation.NewTable(d.UIDs())

	if len(args) > 0 {
		ts, ok := table.TransferSyntaxes(args[0])
		if !ok {
			return fmt.Errorf("abstract syntax %s is not accepted", d.NameForUID(args[0], true))
		}
		for _, uid := range ts {
			fmt.Fprintln(w, d.NameForUID(uid, true))
		}
		return nil
	}

	for _, c := range table.Contexts() {
		fmt.Fprintln(w, d.NameForUID(c.AbstractSyntax, true))
		for _, uid := range c.TransferSyntaxes {
			fmt.Fprintf(w, "  %s\n", d.NameForUID(uid, true))
		}
	}
	return nil
}
