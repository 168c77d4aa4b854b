package gen

import "text/template"

// finiteImportPath is where the generated descriptor's Enum interface lives.
const finiteImportPath = "exhaustive-map/finite"

// templateData holds all data needed for the enum descriptor template.
type templateData struct {
	PackageName string
	FinitePkg   string
	TypeName    string
	Receiver    string // descriptor struct name, e.g. "_ColorEnum"
	Table       string // value table name, e.g. "_ColorValues"
	Count       int
	VariantList string // comma-joined variant names for the doc comment
	Variants    []variantData
}

// variantData is one variant in declaration order.
type variantData struct {
	Name  string
	Index int
}

// The switch in ToIndex maps each variant to its declaration position, so
// the bijection is independent of the constants' actual values. ToIndex of
// a value outside the declared set returns -1.
var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by finite-gen. DO NOT EDIT.

package {{.PackageName}}

import "{{.FinitePkg}}"

// {{.TypeName}}Enum returns the finite enumeration descriptor for {{.TypeName}}.
// Variants are indexed in declaration order: {{.VariantList}}.
func {{.TypeName}}Enum() finite.Enum[{{.TypeName}}] { return {{.Receiver}}{} }

type {{.Receiver}} struct{}

var {{.Table}} = [...]{{.TypeName}}{ {{- range $i, $v := .Variants}}{{if $i}}, {{end}}{{$v.Name}}{{end}}}

func ({{.Receiver}}) Inhabitants() int { return {{.Count}} }

func ({{.Receiver}}) ToIndex(v {{.TypeName}}) int {
	switch v {
{{- range .Variants}}
	case {{.Name}}:
		return {{.Index}}
{{- end}}
	}
	return -1
}

func ({{.Receiver}}) FromIndex(i int) ({{.TypeName}}, bool) {
	if i < 0 || i >= len({{.Table}}) {
		var zero {{.TypeName}}
		return zero, false
	}
	return {{.Table}}[i], true
}
`))
