// Package gen synthesizes builder source files from encoded plans and
// orchestrates the whole pipeline (Run).
//
// Emission is declaration-level via github.com/dave/jennifer: per record it
// produces the marker types, the generic builder struct, the zero-state
// constructor, one marked-transition setter per field (plus a coercion
// variant), and the finalizer; per package it produces the Into bridge.
// All output is deterministic and gofmt-clean.
package gen
