package schema

import (
	"go/types"
	"reflect"
)

//go:generate go tool stringer -type=Classification -output=classification_string.go

// Classification describes how a field participates in builder construction.
type Classification int

const (
	// Required - the field has no builder tag; the finalizer is unreachable
	// until its setter has been called.
	Required Classification = iota
	// OptionalZero - `builder:"default"`; an omitted field keeps its type's
	// zero value.
	OptionalZero
	// OptionalDefault - `builder:"default=<expr>"`; an omitted field is
	// assigned the verbatim expression, evaluated at finalization.
	OptionalDefault
)

// Record is the normalized schema of one record type: an ordered list of
// classified fields. Field order only affects the order of emitted
// declarations, never correctness.
type Record struct {
	// PkgPath is the import path of the package defining the record.
	PkgPath string
	// PkgName is the package name (last identifier, not the path).
	PkgName string
	// Dir is the package source directory; generated files are placed there.
	Dir string
	// Name is the record type name.
	Name string
	// Fields holds the classified fields in declaration order.
	Fields []Field
}

// Field is a single classified record field.
type Field struct {
	// Name is the Go field name.
	Name string
	// Index is the field's position in the struct declaration.
	Index int
	// Type is the declared field type.
	Type types.Type
	// Tag is the raw struct tag, kept for diagnostics.
	Tag reflect.StructTag
	// Classification is fixed at classification time and never mutated.
	Classification Classification
	// Default is the verbatim default expression for OptionalDefault fields.
	// It is spliced uninterpreted into the finalizer and evaluated there,
	// only when the field was never set.
	Default string
}

// Optional returns true for fields that may be omitted before finalization.
func (f *Field) Optional() bool {
	return f.Classification != Required
}

// RequiredCount returns the number of required fields.
func (r *Record) RequiredCount() int {
	n := 0

	for i := range r.Fields {
		if r.Fields[i].Classification == Required {
			n++
		}
	}

	return n
}

// String returns the fully qualified record name.
func (r *Record) String() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}
