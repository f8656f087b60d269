package gen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
)

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the underscored record name to form the
	// generated filename, e.g. "server" + "_builder.go".
	Suffix string
	// Coercion enables the Into bridge and the setter From variants.
	Coercion bool
	// Header is the header comment of every generated file.
	Header string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix:   "_builder.go",
		Coercion: true,
		Header:   "Code generated by builder-generator. DO NOT EDIT.",
	}
}

// Generator synthesizes builder source files from encoded plans.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package source directory the file belongs in.
	Dir string
	// Filename is the base name, e.g. "server_builder.go".
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Generate produces one builder file per plan plus one bridge file per output
// package. A failing record is reported as a diagnostic and skipped whole;
// the remaining records still generate. Output order is deterministic.
func (g *Generator) Generate(plans []*plan.BuilderPlan, diags *diagnostic.Diagnostics) []GeneratedFile {
	sorted := make([]*plan.BuilderPlan, len(plans))
	copy(sorted, plans)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Record, sorted[j].Record
		if a.PkgPath != b.PkgPath {
			return a.PkgPath < b.PkgPath
		}

		return a.Name < b.Name
	})

	var files []GeneratedFile

	// Packages that ended up with at least one generated record, in
	// encounter (sorted) order. Each gets a single bridge file.
	type pkgOut struct {
		path, name, dir string
	}

	var bridgePkgs []pkgOut
	seenPkg := make(map[string]bool)

	for _, p := range sorted {
		rec := p.Record

		file, err := g.generateRecord(p)
		if err != nil {
			diags.AddError(diagnostic.CodeSchemaShape, err.Error(), rec.String(), "")
			continue
		}

		files = append(files, *file)

		if g.config.Coercion && !seenPkg[rec.PkgPath] {
			seenPkg[rec.PkgPath] = true
			bridgePkgs = append(bridgePkgs, pkgOut{path: rec.PkgPath, name: rec.PkgName, dir: rec.Dir})
		}
	}

	for _, pkg := range bridgePkgs {
		file, err := g.generateBridge(pkg.path, pkg.name, pkg.dir)
		if err != nil {
			diags.AddError(diagnostic.CodeSchemaShape, err.Error(), pkg.path, "")
			continue
		}

		files = append(files, *file)
	}

	return files
}

// generateRecord renders the builder file for a single record.
func (g *Generator) generateRecord(p *plan.BuilderPlan) (*GeneratedFile, error) {
	rec := p.Record

	f := jen.NewFilePathName(rec.PkgPath, rec.PkgName)
	f.HeaderComment(g.config.Header)

	if err := g.emitRecord(f, p); err != nil {
		return nil, fmt.Errorf("generating %s: %w", rec, err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", rec, err)
	}

	return &GeneratedFile{
		Dir:      rec.Dir,
		Filename: inflect.Underscore(rec.Name) + g.config.Suffix,
		Content:  buf.Bytes(),
	}, nil
}

// generateBridge renders the per-package coercion bridge file.
func (g *Generator) generateBridge(pkgPath, pkgName, dir string) (*GeneratedFile, error) {
	f := jen.NewFilePathName(pkgPath, pkgName)
	f.HeaderComment(g.config.Header)
	g.emitBridge(f)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering bridge for %s: %w", pkgPath, err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: BridgeFilename,
		Content:  buf.Bytes(),
	}, nil
}
