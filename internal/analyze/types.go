package analyze

import (
	"go/types"
	"reflect"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "builder-generator/examples/basic"
	Name    string // e.g., "Server"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// RecordInfo describes a named struct type found in a loaded package,
// with everything the classifier needs: field names, declared types, and
// raw struct tags.
type RecordInfo struct {
	ID TypeID
	// PkgName is the package name (not the import path).
	PkgName string
	// Dir is the directory holding the package's source files.
	Dir string
	// TypeParams is the number of type parameters on the type declaration.
	// Generic records are rejected downstream.
	TypeParams int
	// Fields lists the struct fields in declaration order.
	Fields []FieldInfo
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Type     types.Type        // Declared field type
	Tag      reflect.StructTag // Raw struct tag
}

// LookupTag returns the value of the given tag key and whether it was present.
func (f *FieldInfo) LookupTag(key string) (string, bool) {
	return f.Tag.Lookup(key)
}

// Tagged returns true if any field carries the given tag key.
// Used by discovery mode to find builder-annotated records.
func (r *RecordInfo) Tagged(key string) bool {
	for i := range r.Fields {
		if _, ok := r.Fields[i].LookupTag(key); ok {
			return true
		}
	}

	return false
}

// Graph holds all records extracted from the loaded packages.
type Graph struct {
	// Records maps TypeID to RecordInfo for all named struct types.
	Records map[TypeID]*RecordInfo
	// Others maps non-struct named types to a short kind description, so
	// explicit requests for them can be rejected with a precise message.
	Others map[TypeID]string
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Records:  make(map[TypeID]*RecordInfo),
		Others:   make(map[TypeID]string),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetRecord returns the RecordInfo for a given TypeID, or nil if not found.
func (g *Graph) GetRecord(id TypeID) *RecordInfo {
	return g.Records[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Dir     string   // Source directory
	Records []TypeID // Named struct types defined in this package
}
