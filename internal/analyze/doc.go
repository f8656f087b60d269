// Package analyze provides package loading and record extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory view of every named struct type in the requested packages,
// including raw struct tags, which the classifier interprets.
//
// Key types:
//   - TypeID: package import path + type name
//   - RecordInfo: a named struct with its fields and tags
//   - FieldInfo: field name, declared type, tag, and embedding
package analyze
