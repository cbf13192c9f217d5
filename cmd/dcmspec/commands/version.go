package commands

import (
	"fmt"
	"io"

	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
	"github.com/dcmspec/dcmspec-go/pkg/version"
)

// RunVersion prints the tool version and the edition of the embedded
// dictionary.
func RunVersion(args []string, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "dcmspec version %s\n", version.Current)

	d, err := dictionary.Default()
	if err != nil {
		return fail(stderr, err)
	}
	edition := d.Edition().String()
	if edition == "" {
		edition = "unknown"
	}
	fmt.Fprintf(stdout, "dictionary edition %s (%d tags, %d uids)\n", edition, d.Tags().Len(), d.UIDs().Len())
	return exitSuccess
}
