// Package plan provides the type-state encoder: it turns a classified record
// into a BuilderPlan naming every generated declaration.
//
// Each field owns a private marker pair (Unset/Set) plus a constraint
// interface covering exactly those two markers. The generated builder type is
// generic over one marker slot per field; setters and the finalizer select
// their valid instantiations by pinning slots in their parameter types, so
// double-set and missing-required misuse fails to type-check in the caller's
// code with no runtime path behind it.
package plan
