// Package diagnostic provides structured, coded errors and warnings for
// the builder generator, anchored to record and field names.
//
// A fatal diagnostic (schema shape, attribute) aborts generation for the
// enclosing record as a whole; no partial builder is ever emitted.
package diagnostic
