// Package main provides the CLI entrypoint for finite-gen.
//
// finite-gen is a codegen tool that derives finite enumeration descriptors
// (finite.Enum implementations) for integer-backed Go enum types:
//   - Parses a Go package (AST + go/types) to find the named type and the
//     constants declared for it, in declaration order
//   - Rejects types that are not plain integer-backed enumerations
//   - Generates a descriptor file next to the enum's own sources
//
// Typical usage, driven by go:generate:
//
//	//go:generate go run exhaustive-map/cmd/finite-gen -type Color
//
// Batch runs are described by a YAML manifest:
//
//	finite-gen -manifest finite-gen.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"exhaustive-map/internal/analyze"
	"exhaustive-map/internal/gen"
	"exhaustive-map/internal/manifest"
)

func main() {
	var (
		typeNames    = flag.String("type", "", "comma-separated list of enum type names to derive")
		pkgPattern   = flag.String("pkg", ".", "package pattern to load")
		output       = flag.String("output", "", "output file name; default <type>_finite.go (single type only)")
		manifestPath = flag.String("manifest", "", "YAML manifest describing a batch run")
	)
	flag.Parse()

	if err := run(*typeNames, *pkgPattern, *output, *manifestPath); err != nil {
		fmt.Fprintln(os.Stderr, "finite-gen:", err)
		os.Exit(1)
	}
}

func run(typeNames, pkgPattern, output, manifestPath string) error {
	entries, err := collectEntries(typeNames, pkgPattern, output, manifestPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := deriveEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

// collectEntries normalizes flags and manifest into one work list.
func collectEntries(typeNames, pkgPattern, output, manifestPath string) ([]manifest.Entry, error) {
	if manifestPath != "" {
		if typeNames != "" || output != "" {
			return nil, fmt.Errorf("-manifest cannot be combined with -type or -output")
		}

		mf, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, err
		}

		return mf.Derive, nil
	}

	if typeNames == "" {
		return nil, fmt.Errorf("either -type or -manifest is required")
	}

	types := strings.Split(typeNames, ",")
	for i := range types {
		types[i] = strings.TrimSpace(types[i])
	}
	if output != "" && len(types) > 1 {
		return nil, fmt.Errorf("-output cannot be combined with multiple types")
	}

	return []manifest.Entry{{
		Package: pkgPattern,
		Types:   types,
		Output:  output,
	}}, nil
}

// deriveEntry runs the analyze -> validate -> generate -> write pipeline for
// every type of one entry.
func deriveEntry(entry manifest.Entry) error {
	pkg, err := analyze.LoadPackage(entry.Package)
	if err != nil {
		return err
	}

	for _, typeName := range entry.Types {
		info, err := analyze.FindEnum(pkg, typeName)
		if err != nil {
			return err
		}

		if diags := analyze.Validate(info); diags.HasErrors() {
			for _, w := range diags.Warnings {
				fmt.Fprintln(os.Stderr, w)
			}
			return diags
		}

		file, err := gen.Generate(info, gen.Config{Output: entry.Output})
		if err != nil {
			return err
		}

		if err := gen.WriteFile(file, info.Dir); err != nil {
			return err
		}

		fmt.Printf("finite-gen: wrote %s for %s (%d variants)\n",
			file.Filename, info.ID, len(info.Variants))
	}

	return nil
}
