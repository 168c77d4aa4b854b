// Package analyze loads Go packages and extracts enum declarations.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find a
// named integer-backed type together with the constants declared for it, in
// declaration order. Validate then decides whether a finite bijection can be
// derived for the result.
//
// Key types:
//   - TypeID: package import path + type name
//   - EnumInfo: shape classification plus variants in declaration order
//   - VariantInfo: constant name, value, and assigned index
package analyze
