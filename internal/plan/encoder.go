package plan

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"

	"builder-generator/internal/schema"
)

// BridgeName is the name of the coercion bridge interface emitted once per
// output package.
const BridgeName = "Into"

// Encode assigns every field of the record a slot in the builder's
// type-parameter vector and names its marker pair, state constraint, storage
// slot, and setters.
//
// The encoding realizes a per-field {Unset, Set} state machine at the type
// level: the constructor instantiates every slot with its Unset marker, each
// setter is defined only where its own slot is Unset and returns the
// instantiation with that slot flipped to Set, and the finalizer pins every
// required slot to Set. Calling a setter twice, or finalizing with a required
// slot still Unset, matches no generated signature. Transitions are one-way;
// 2^N state combinations are never enumerated, the compiler instantiates only
// those reached by real call chains.
func Encode(rec *schema.Record) *BuilderPlan {
	p := &BuilderPlan{
		Record:          rec,
		BuilderName:     rec.Name + "Builder",
		ConstructorName: "New" + rec.Name + "Builder",
		FinalizerName:   rec.Name + "Build",
		BridgeName:      BridgeName,
	}

	base := downFirst(rec.Name)
	seen := make(map[string]bool, len(rec.Fields))

	for i := range rec.Fields {
		field := &rec.Fields[i]

		// Fragment must be unique per field, not per declared type, or two
		// fields would share one set-status. Case-folding collisions (e.g.
		// fields "x" and "X") are disambiguated by field index.
		fragment := inflect.Capitalize(field.Name)
		if seen[fragment] {
			fragment += strconv.Itoa(field.Index)
		}
		seen[fragment] = true

		slot := Slot{
			Field:          field,
			Index:          i,
			Fragment:       fragment,
			Param:          "P" + fragment,
			Unset:          base + fragment + "Unset",
			Set:            base + fragment + "Set",
			State:          base + fragment + "State",
			Storage:        "v" + fragment,
			SetterName:     rec.Name + "Set" + fragment,
			FromSetterName: rec.Name + "Set" + fragment + "From",
		}

		if field.Classification == schema.OptionalDefault {
			slot.Flag = "has" + fragment
		}

		p.Slots = append(p.Slots, slot)
	}

	return p
}

// downFirst lowers the first rune of an identifier, yielding the unexported
// marker name prefix for a record.
func downFirst(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}
