// Command dcmspec-gen generates Go constants for the UIDs of a dictionary
// definition table.
//
//	dcmspec-gen -source pkg/dictionary/data/dictionary.yaml -output pkg/dictionary/uids_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
)

func main() {
	sourcePath := flag.String("source", "", "Path to the YAML definition table (default: embedded table)")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkgName := flag.String("package", "dictionary", "Package name of the generated file")
	flag.Parse()

	if *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: dcmspec-gen -output <path> [-source <path>] [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*sourcePath, *outputPath, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(sourcePath, outputPath, pkgName string) error {
	var (
		d   *dictionary.Dictionary
		err error
	)
	if sourcePath != "" {
		d, err = dictionary.LoadFile(sourcePath)
	} else {
		d, err = dictionary.Default()
	}
	if err != nil {
		return err
	}
	for _, issue := range d.Issues() {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", issue)
	}

	code, err := GenerateUIDs(d, pkgName)
	if err != nil {
		return fmt.Errorf("generating uid constants: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s\n", outputPath)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the unformatted output around for debugging the generator.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
