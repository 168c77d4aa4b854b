package analyze

import (
	"fmt"

	"exhaustive-map/internal/diagnostic"
)

// Diagnostic codes produced by Validate.
const (
	CodeNonIntegerEnum = "non-integer-enum"
	CodeCompositeType  = "composite-type"
	CodeNoVariants     = "no-variants"
	CodeDuplicateValue = "duplicate-value"
)

// Validate checks whether a finite bijection can be derived for the enum.
// Every rejection reason is recorded, not just the first, so the author sees
// the full picture in one run.
func Validate(info *EnumInfo) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	typ := info.ID.String()

	switch info.Shape {
	case ShapeIntEnum:
		// derivable shape
	case ShapeNonInteger:
		diags.AddError(CodeNonIntegerEnum,
			"underlying type must be an integer kind; only plain integer-backed enumerations have a canonical finite bijection",
			typ, "")
		return diags
	default:
		diags.AddError(CodeCompositeType,
			fmt.Sprintf("type shape is %s, not a defined integer type; composite types cannot be derived", info.Shape),
			typ, "")
		return diags
	}

	if len(info.Variants) == 0 {
		diags.AddError(CodeNoVariants,
			"no constants of this type are declared in its package; an empty enumeration cannot be derived",
			typ, "")
		return diags
	}

	seen := make(map[int64]string, len(info.Variants))
	for _, v := range info.Variants {
		if prev, dup := seen[v.Value]; dup {
			diags.AddError(CodeDuplicateValue,
				fmt.Sprintf("constant value %d already used by %s; duplicate values make the mapping non-injective", v.Value, prev),
				typ, v.Name)
			continue
		}
		seen[v.Value] = v.Name
	}

	return diags
}
