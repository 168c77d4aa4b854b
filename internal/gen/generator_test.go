package gen

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhaustive-map/internal/analyze"
)

func colorInfo() *analyze.EnumInfo {
	return &analyze.EnumInfo{
		ID:      analyze.TypeID{PkgPath: "exhaustive-map/examples/colors", Name: "Color"},
		PkgName: "colors",
		Shape:   analyze.ShapeIntEnum,
		Variants: []analyze.VariantInfo{
			{Name: "Red", Value: 0, Index: 0},
			{Name: "Green", Value: 1, Index: 1},
			{Name: "Blue", Value: 2, Index: 2},
		},
	}
}

func TestGenerateColorDescriptor(t *testing.T) {
	info := colorInfo()

	file, err := Generate(info, Config{})
	require.NoError(t, err, spew.Sdump(info))

	assert.Equal(t, "color_finite.go", file.Filename)

	content := string(file.Content)
	assert.Contains(t, content, "// Code generated by finite-gen. DO NOT EDIT.")
	assert.Contains(t, content, "package colors")
	assert.Contains(t, content, `import "exhaustive-map/finite"`)
	assert.Contains(t, content, "func ColorEnum() finite.Enum[Color] { return _ColorEnum{} }")
	assert.Contains(t, content, "var _ColorValues = [...]Color{Red, Green, Blue}")
	assert.Contains(t, content, "func (_ColorEnum) Inhabitants() int { return 3 }")
	assert.Contains(t, content, "case Green:")
	assert.Contains(t, content, "return 1")
	assert.Contains(t, content, "return _ColorValues[i], true")
}

func TestGenerateIndexesByDeclarationOrder(t *testing.T) {
	info := &analyze.EnumInfo{
		ID:      analyze.TypeID{PkgPath: "example/levels", Name: "Level"},
		PkgName: "levels",
		Shape:   analyze.ShapeIntEnum,
		Variants: []analyze.VariantInfo{
			{Name: "Low", Value: 10, Index: 0},
			{Name: "High", Value: 20, Index: 1},
		},
	}

	file, err := Generate(info, Config{})
	require.NoError(t, err, spew.Sdump(info))

	// Indices come from declaration positions, not the constant values.
	content := string(file.Content)
	assert.Contains(t, content, "case Low:\n\t\treturn 0")
	assert.Contains(t, content, "case High:\n\t\treturn 1")
}

func TestGenerateOutputOverride(t *testing.T) {
	file, err := Generate(colorInfo(), Config{Output: "custom_name.go"})
	require.NoError(t, err)

	assert.Equal(t, "custom_name.go", file.Filename)
}

func TestGenerateRefusesNonDerivableShapes(t *testing.T) {
	info := colorInfo()
	info.Shape = analyze.ShapeNonInteger

	_, err := Generate(info, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot derive")

	info = colorInfo()
	info.Variants = nil

	_, err = Generate(info, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variants")
}
