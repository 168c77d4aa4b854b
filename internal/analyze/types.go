package analyze

//go:generate go tool stringer -type=ShapeKind -output=shapekind_string.go

// ShapeKind classifies the declared shape of a candidate enum type.
// Only ShapeIntEnum is derivable; the other kinds exist so validation can
// name exactly why a type was rejected.
type ShapeKind int

const (
	ShapeUnknown    ShapeKind = iota
	ShapeIntEnum              // defined type over an integer kind with const variants
	ShapeNonInteger           // defined type over string, float, bool, complex
	ShapeComposite            // struct, interface, slice, map, chan, func, pointer
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g. "exhaustive-map/examples/colors"
	Name    string // e.g. "Color"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// EnumInfo describes a candidate enum type and its variants.
type EnumInfo struct {
	ID      TypeID
	PkgName string    // package name, used as the generated file's package clause
	Dir     string    // directory holding the package sources
	Shape   ShapeKind // declared shape of the type
	// Variants in declaration order. Position in this slice is the index the
	// generated bijection assigns, regardless of the constants' values.
	Variants []VariantInfo
}

// VariantInfo describes one constant of the enum type.
type VariantInfo struct {
	Name  string
	Value int64 // the declared constant value
	Index int   // position in declaration order
}
