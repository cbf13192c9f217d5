// dcmspec is a CLI tool for DICOM dictionary lookups and conformance
// validation of dataset dumps.
package main

import (
	"fmt"
	"os"

	"github.com/dcmspec/dcmspec-go/cmd/dcmspec/commands"
)

const exitCommandError = 1

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "rules":
		exitCode = commands.RunRules(args, os.Stdout, os.Stderr)
	case "tag":
		exitCode = commands.RunTag(args, os.Stdout, os.Stderr)
	case "uid":
		exitCode = commands.RunUID(args, os.Stdout, os.Stderr)
	case "syntaxes":
		exitCode = commands.RunSyntaxes(args, os.Stdout, os.Stderr)
	case "report":
		exitCode = commands.RunReport(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "version", "-v", "--version":
		exitCode = commands.RunVersion(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`dcmspec - DICOM dictionary and conformance validation tool

Usage:
  dcmspec <command> [options] [args...]

Commands:
  validate   Validate dataset dumps against the conformance rules
  rules      List validation rules and their state
  tag        Show a data element definition by code or keyword
  uid        Show a registered UID
  syntaxes   List presentation contexts and their transfer syntaxes
  report     List records of a CBOR report file
  shell      Interactive lookup shell
  version    Show version information

Environment:
  DCMSPEC_DICTIONARY     Alternate YAML definition table
  DCMSPEC_LOG_LEVEL      debug, info, warn (default), error
  DCMSPEC_MIN_SEVERITY   Lowest severity to display (default notice)
  DCMSPEC_FAIL_SEVERITY  Severity that fails validation (default error)
  DCMSPEC_REPORT         Report file validation appends to

Exit status:
  0 success, 1 command error, 2 results at or above the fail severity

Examples:
  dcmspec validate ct.yaml
  dcmspec tag 0010,0010
  dcmspec uid 1.2.840.10008.1.2.1
  dcmspec report --min-severity error run.dcmr`)
}
