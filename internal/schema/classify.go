package schema

import (
	"fmt"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// Classify validates the shape of a discovered record and derives every
// field's classification from its builder tag.
//
// Any error diagnostic is fatal for the whole record: Classify then returns
// a nil Record and no partial schema is ever handed to the encoder.
func Classify(info *analyze.RecordInfo) (*Record, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	recName := info.ID.String()

	if info.TypeParams > 0 {
		diags.AddError(diagnostic.CodeSchemaShape,
			"generic record types are not supported", recName, "")
		return nil, diags
	}

	if len(info.Fields) == 0 {
		diags.AddError(diagnostic.CodeSchemaShape,
			"record has no fields to build", recName, "")
		return nil, diags
	}

	rec := &Record{
		PkgPath: info.ID.PkgPath,
		PkgName: info.PkgName,
		Dir:     info.Dir,
		Name:    info.ID.Name,
	}

	for i := range info.Fields {
		fi := &info.Fields[i]

		field := Field{
			Name:  fi.Name,
			Index: fi.Index,
			Type:  fi.Type,
			Tag:   fi.Tag,
		}

		// Absent tag and empty tag both mean Required.
		if value, ok := fi.LookupTag(TagKey); ok {
			class, expr, err := ParseTag(value)
			if err != nil {
				diags.AddError(diagnostic.CodeAttribute, err.Error(), recName, fi.Name)
				continue
			}

			field.Classification = class
			field.Default = expr
		}

		rec.Fields = append(rec.Fields, field)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	if rec.RequiredCount() == 0 {
		diags.AddInfo(diagnostic.CodeAttribute,
			fmt.Sprintf("all %d fields are optional; the finalizer is always reachable", len(rec.Fields)),
			recName, "")
	}

	return rec, diags
}
