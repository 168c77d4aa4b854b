package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"exhaustive-map/internal/analyze"
)

// Config holds configuration for code generation.
type Config struct {
	// Output is the generated file name. Empty means <type>_finite.go.
	Output string
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "color_finite.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the Enum descriptor implementation for a validated enum.
//
// The caller is expected to have run analyze.Validate first; Generate still
// refuses non-derivable input instead of emitting a wrong bijection.
func Generate(info *analyze.EnumInfo, cfg Config) (*GeneratedFile, error) {
	if info.Shape != analyze.ShapeIntEnum {
		return nil, fmt.Errorf("cannot derive %s: shape is %s", info.ID, info.Shape)
	}
	if len(info.Variants) == 0 {
		return nil, fmt.Errorf("cannot derive %s: no variants", info.ID)
	}

	filename := cfg.Output
	if filename == "" {
		filename = defaultFilename(info.ID.Name)
	}

	data := buildTemplateData(info)

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", info.ID, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if info.Dir != "" {
			_ = writeDebugUnformatted(info.Dir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting generated code for %s: %w", info.ID, err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// defaultFilename derives the output file name from the type name.
func defaultFilename(typeName string) string {
	return strings.ToLower(typeName) + "_finite.go"
}

// buildTemplateData constructs the template data for one enum.
func buildTemplateData(info *analyze.EnumInfo) *templateData {
	names := make([]string, len(info.Variants))
	variants := make([]variantData, len(info.Variants))

	for i, v := range info.Variants {
		names[i] = v.Name
		variants[i] = variantData{
			Name:  v.Name,
			Index: v.Index,
		}
	}

	return &templateData{
		PackageName: info.PkgName,
		FinitePkg:   finiteImportPath,
		TypeName:    info.ID.Name,
		Receiver:    "_" + info.ID.Name + "Enum",
		Table:       "_" + info.ID.Name + "Values",
		Count:       len(info.Variants),
		VariantList: strings.Join(names, ", "),
		Variants:    variants,
	}
}
