package analyze

import (
	"context"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"builder-generator/internal/ctxlog"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts candidate record types.
type Analyzer struct {
	graph *Graph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewGraph()}
}

// LoadPackages loads the specified packages and extracts every named struct
// type into the graph. Patterns are standard Go package patterns
// (e.g., "./internal/...", "builder-generator/examples/basic").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Graph, error) {
	log := ctxlog.FromContext(ctx)

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
		log.Debug("loaded package",
			"path", pkg.PkgPath,
			"records", len(a.graph.Packages[pkg.PkgPath].Records))
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// processPackage extracts named struct types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
		Dir:  packageDir(pkg),
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		// Aliases are declarations of some other type; the builder belongs
		// next to the original declaration.
		if typeName.IsAlias() {
			a.graph.Others[typeID] = "alias"
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			a.graph.Others[typeID] = "non-struct"
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			a.graph.Others[typeID] = kindOf(named.Underlying())
			continue
		}

		info := &RecordInfo{
			ID:         typeID,
			PkgName:    pkg.Name,
			Dir:        pkgInfo.Dir,
			TypeParams: named.TypeParams().Len(),
		}
		extractFields(st, info)

		a.graph.Records[typeID] = info
		pkgInfo.Records = append(pkgInfo.Records, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// extractFields captures all fields of a struct type, exported or not;
// generated builders live in the record's own package and may assign both.
func extractFields(st *types.Struct, info *RecordInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Embedded: field.Embedded(),
			Index:    i,
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
		})
	}
}

// packageDir returns the source directory of a loaded package.
func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}

// kindOf returns a short description of a non-struct underlying type.
func kindOf(t types.Type) string {
	switch t.(type) {
	case *types.Basic:
		return "basic"
	case *types.Interface:
		return "interface"
	case *types.Map:
		return "map"
	case *types.Slice:
		return "slice"
	case *types.Signature:
		return "func"
	case *types.Pointer:
		return "pointer"
	case *types.Chan:
		return "chan"
	default:
		return "non-struct"
	}
}
