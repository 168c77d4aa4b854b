// Package manifest loads the YAML file describing a batch finite-gen run:
// which packages to analyze, which types to derive, and where the output
// goes.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the root of a finite-gen manifest.
//
//	version: "1"
//	derive:
//	  - package: ./examples/colors
//	    types: [Color]
//	    output: color_finite.go
type File struct {
	Version string  `yaml:"version"`
	Derive  []Entry `yaml:"derive"`
}

// Entry names one package and the enum types to derive in it.
type Entry struct {
	// Package is a Go package pattern, e.g. "./examples/colors".
	Package string `yaml:"package"`
	// Types lists the enum type names; a single scalar is also accepted.
	Types StringOrList `yaml:"types"`
	// Output overrides the generated file name. Only valid with a single
	// type; empty means <type>_finite.go.
	Output string `yaml:"output,omitempty"`
}

// Load reads and parses a manifest from the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a manifest File and validates it.
func Parse(data []byte) (*File, error) {
	var mf File

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	if mf.Version == "" {
		mf.Version = "1"
	}

	if err := validate(&mf); err != nil {
		return nil, err
	}

	return &mf, nil
}

func validate(mf *File) error {
	if len(mf.Derive) == 0 {
		return errors.New("manifest has no derive entries")
	}

	for i, e := range mf.Derive {
		if e.Package == "" {
			return fmt.Errorf("derive entry %d: package is required", i)
		}
		if len(e.Types) == 0 {
			return fmt.Errorf("derive entry %d (%s): types is required", i, e.Package)
		}
		if e.Output != "" && len(e.Types) > 1 {
			return fmt.Errorf("derive entry %d (%s): output cannot be combined with multiple types", i, e.Package)
		}
	}

	return nil
}
