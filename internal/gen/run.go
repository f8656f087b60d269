package gen

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/ctxlog"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
)

// Result is the outcome of a full generator run.
type Result struct {
	// Files are the generated sources, not yet written to disk.
	Files []GeneratedFile
	// Plans are the encoded builder plans, one per accepted record.
	Plans []*plan.BuilderPlan
	// Diagnostics accumulates everything worth telling the user. Any error
	// in here means at least one record was aborted whole.
	Diagnostics diagnostic.Diagnostics
}

// Run executes the whole pipeline: load packages, select records, classify,
// encode, and synthesize. It does not write files; see WriteFiles.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	log := ctxlog.FromContext(ctx)

	graph, err := analyze.NewAnalyzer().LoadPackages(ctx, cfg.Packages...)
	if err != nil {
		return nil, err
	}

	res := &Result{}

	for _, id := range selectRecords(graph, cfg, &res.Diagnostics) {
		rec, diags := schema.Classify(graph.GetRecord(id))
		res.Diagnostics.Merge(*diags)

		if rec == nil {
			log.Warn("record aborted", "record", id.String())
			continue
		}

		res.Plans = append(res.Plans, plan.Encode(rec))
	}

	g := NewGenerator(Config{
		Suffix:   cfg.Output.Suffix,
		Coercion: cfg.CoercionEnabled(),
		Header:   DefaultConfig().Header,
	})

	res.Files = g.Generate(res.Plans, &res.Diagnostics)

	log.Info("generation finished",
		"records", len(res.Plans),
		"files", len(res.Files),
		"errors", len(res.Diagnostics.Errors))

	return res, nil
}

// selectRecords resolves the configured selection against the graph:
// tag-discovered records plus explicitly named ones, sorted for determinism.
func selectRecords(graph *analyze.Graph, cfg *config.Config, diags *diagnostic.Diagnostics) []analyze.TypeID {
	set := make(map[analyze.TypeID]bool)

	if cfg.DiscoverEnabled() {
		for id, rec := range graph.Records {
			if rec.Tagged(schema.TagKey) {
				set[id] = true
			}
		}
	}

	for _, sel := range cfg.Records {
		matches := resolveSelector(graph, sel)

		switch len(matches) {
		case 1:
			set[matches[0]] = true
		case 0:
			if kind, ok := lookupOther(graph, sel); ok {
				diags.AddError(diagnostic.CodeSchemaShape,
					fmt.Sprintf("type is %s, not a field-based struct", kind), sel, "")
			} else {
				diags.AddError(diagnostic.CodeSchemaShape,
					fmt.Sprintf("record %q not found in loaded packages", sel), sel, "")
			}
		default:
			diags.AddError(diagnostic.CodeSchemaShape,
				fmt.Sprintf("record selector %q is ambiguous (%d matches)", sel, len(matches)), sel, "")
		}
	}

	ids := make([]analyze.TypeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].PkgPath != ids[j].PkgPath {
			return ids[i].PkgPath < ids[j].PkgPath
		}

		return ids[i].Name < ids[j].Name
	})

	return ids
}

// resolveSelector matches "Type", "pkg.Type", or "import/path.Type" against
// the records in the graph.
func resolveSelector(graph *analyze.Graph, sel string) []analyze.TypeID {
	pkgSel, name := splitSelector(sel)

	var out []analyze.TypeID

	for id := range graph.Records {
		if id.Name == name && pkgMatches(id.PkgPath, pkgSel) {
			out = append(out, id)
		}
	}

	return out
}

// lookupOther reports whether the selector names a known non-struct type.
func lookupOther(graph *analyze.Graph, sel string) (string, bool) {
	pkgSel, name := splitSelector(sel)

	for id, kind := range graph.Others {
		if id.Name == name && pkgMatches(id.PkgPath, pkgSel) {
			return kind, true
		}
	}

	return "", false
}

// splitSelector splits a record selector at its last dot.
func splitSelector(sel string) (pkg, name string) {
	if i := strings.LastIndex(sel, "."); i >= 0 {
		return sel[:i], sel[i+1:]
	}

	return "", sel
}

// pkgMatches accepts an exact import path, a path suffix, or a bare package
// name; an empty selector matches any package.
func pkgMatches(pkgPath, pkgSel string) bool {
	if pkgSel == "" {
		return true
	}

	return pkgPath == pkgSel ||
		strings.HasSuffix(pkgPath, "/"+pkgSel) ||
		path.Base(pkgPath) == pkgSel
}
