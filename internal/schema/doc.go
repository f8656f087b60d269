// Package schema provides the normalized record model and the field
// classifier.
//
// A Record is an ordered list of Fields, each classified from its `builder`
// struct tag:
//
//   - no tag / `builder:"required"` -> Required
//   - `builder:"default"`           -> OptionalZero (type's zero value)
//   - `builder:"default=<expr>"`    -> OptionalDefault (verbatim expression,
//     evaluated lazily at finalization)
//
// Classification is decided once, here, and never reinterpreted downstream.
// Default expressions are stored as opaque text; their type correctness is
// checked by the Go compiler at the generated splice site.
package schema
