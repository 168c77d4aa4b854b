package analyze

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// LoadPackage loads a single package by a standard Go package pattern
// (e.g. "./examples/colors", "exhaustive-map/examples/colors").
func LoadPackage(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want exactly 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors in %s: %v", pkg.PkgPath, errs)
	}

	return pkg, nil
}

// FindEnum locates the named type in pkg and extracts its enum description:
// the shape of the type and its variants in declaration order.
//
// A variant is any package-level constant declared with exactly the named
// type. Constants of a different type (including untyped and plain int
// aliases such as a Total sentinel) are excluded, as are blank names.
func FindEnum(pkg *packages.Package, typeName string) (*EnumInfo, error) {
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", typeName, pkg.PkgPath)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not a type", pkg.PkgPath, typeName)
	}

	info := &EnumInfo{
		ID: TypeID{
			PkgPath: pkg.PkgPath,
			Name:    typeName,
		},
		PkgName: pkg.Name,
		Dir:     packageDir(pkg),
		Shape:   classifyShape(tn.Type()),
	}

	// Walk the AST rather than the type-checker scope: scope names are
	// sorted alphabetically, and the bijection must follow declaration
	// order.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}

					cnst, ok := pkg.TypesInfo.Defs[name].(*types.Const)
					if !ok || !types.Identical(cnst.Type(), tn.Type()) {
						continue
					}

					// Non-integer shapes are collected by name only; the
					// value is meaningless there and Int64Val would reject
					// the constant kind.
					var value int64
					if info.Shape == ShapeIntEnum {
						var exact bool
						value, exact = constant.Int64Val(cnst.Val())
						if !exact {
							return nil, fmt.Errorf("constant %s of %s does not fit in int64",
								name.Name, info.ID)
						}
					}

					info.Variants = append(info.Variants, VariantInfo{
						Name:  name.Name,
						Value: value,
						Index: len(info.Variants),
					})
				}
			}
		}
	}

	return info, nil
}

// classifyShape maps a go/types type onto the shapes validation understands.
func classifyShape(t types.Type) ShapeKind {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if u.Info()&types.IsInteger != 0 {
			return ShapeIntEnum
		}
		return ShapeNonInteger
	default:
		return ShapeComposite
	}
}

// packageDir returns the directory holding the package sources, or "." if
// the package has no files on disk.
func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return "."
	}
	return filepath.Dir(pkg.GoFiles[0])
}
