package plan

import (
	"builder-generator/internal/schema"
)

// BuilderPlan is the encoded type-state layout for one record: the names of
// every generated declaration and one Slot per field. It is consumed by the
// synthesizers in internal/gen.
type BuilderPlan struct {
	// Record is the classified schema this plan was encoded from.
	Record *schema.Record
	// BuilderName is the generated builder type, e.g. "ServerBuilder".
	BuilderName string
	// ConstructorName is the zero-state entry point, e.g. "NewServerBuilder".
	ConstructorName string
	// FinalizerName is the finalizing operation, e.g. "ServerBuild".
	FinalizerName string
	// BridgeName is the coercion bridge interface emitted once per package.
	BridgeName string
	// Slots holds one entry per field, in field order. The builder type is
	// generic over exactly one marker parameter per slot.
	Slots []Slot
}

// Slot is one field's position in the builder's type-parameter vector.
//
// Markers are keyed on field identity (record + field name, uniquified by
// index on collision), never on the declared type: two fields sharing a type
// still get distinct marker pairs.
type Slot struct {
	// Field is the classified field this slot tracks.
	Field *schema.Field
	// Index is the slot position, equal to the field's declaration order.
	Index int
	// Fragment is the exported, uniquified name fragment, e.g. "Host".
	Fragment string
	// Param is the type-parameter name in generated signatures, e.g. "PHost".
	Param string
	// Unset and Set are the marker type names for this slot.
	Unset string
	Set   string
	// State is the constraint interface satisfied by exactly Unset and Set.
	State string
	// Storage is the builder struct field holding the value, e.g. "vHost".
	Storage string
	// Flag is the set-flag field guarding a default splice, e.g. "hasHost".
	// Empty unless the field is OptionalDefault: an untouched OptionalZero
	// slot already holds the zero value, so no flag is needed.
	Flag string
	// SetterName is the marked-transition setter, e.g. "ServerSetHost".
	SetterName string
	// FromSetterName is the coercion variant, e.g. "ServerSetHostFrom".
	FromSetterName string
}

// Optional returns true if the slot's field may stay Unset at finalization.
func (s *Slot) Optional() bool {
	return s.Field.Optional()
}

// NeedsFlag returns true if the builder must track whether this slot was set.
func (s *Slot) NeedsFlag() bool {
	return s.Flag != ""
}

// UnsetMarkers returns every slot's Unset marker, in slot order. This is the
// instantiation produced by the constructor: the all-Unset state vector.
func (p *BuilderPlan) UnsetMarkers() []string {
	out := make([]string, len(p.Slots))
	for i := range p.Slots {
		out[i] = p.Slots[i].Unset
	}

	return out
}

// FreeSlots returns the slots left generic in a setter for slot except:
// every slot but the one being transitioned.
func (p *BuilderPlan) FreeSlots(except int) []Slot {
	out := make([]Slot, 0, len(p.Slots)-1)

	for i := range p.Slots {
		if i != except {
			out = append(out, p.Slots[i])
		}
	}

	return out
}

// OptionalSlots returns the slots left generic in the finalizer signature.
// Required slots are pinned to their Set marker there, which is what makes
// an incomplete chain fail to compile.
func (p *BuilderPlan) OptionalSlots() []Slot {
	var out []Slot

	for i := range p.Slots {
		if p.Slots[i].Optional() {
			out = append(out, p.Slots[i])
		}
	}

	return out
}

// RequiredSlots returns the slots the finalizer pins to Set.
func (p *BuilderPlan) RequiredSlots() []Slot {
	var out []Slot

	for i := range p.Slots {
		if !p.Slots[i].Optional() {
			out = append(out, p.Slots[i])
		}
	}

	return out
}
