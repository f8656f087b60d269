package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"builder-generator/internal/plan"
)

// emitRecord writes every declaration for one record into f: markers, the
// builder type, the zero-state constructor, per-field setters, and the
// finalizer.
func (g *Generator) emitRecord(f *jen.File, p *plan.BuilderPlan) error {
	g.emitMarkers(f, p)

	if err := g.emitBuilderType(f, p); err != nil {
		return err
	}

	g.emitConstructor(f, p)

	for i := range p.Slots {
		if err := g.emitSetter(f, p, i); err != nil {
			return err
		}

		if g.config.Coercion {
			if err := g.emitFromSetter(f, p, i); err != nil {
				return err
			}
		}
	}

	return g.emitFinalizer(f, p)
}

// emitMarkers writes the per-field marker pairs and state constraints.
// Markers carry no data; they exist only to pin slots in signatures.
func (g *Generator) emitMarkers(f *jen.File, p *plan.BuilderPlan) {
	f.Commentf("Per-field set/unset markers for %s. Callers never name these;", p.BuilderName)
	f.Comment("type inference carries them through setter chains.")

	for i := range p.Slots {
		s := &p.Slots[i]

		f.Type().Id(s.Unset).Struct()
		f.Type().Id(s.Set).Struct()
		f.Type().Id(s.State).Interface(jen.Union(jen.Id(s.Unset), jen.Id(s.Set)))
	}
}

// emitBuilderType writes the builder struct, generic over one marker slot per
// field, with one storage slot per field plus set-flags for fields that need
// a default splice guard.
func (g *Generator) emitBuilderType(f *jen.File, p *plan.BuilderPlan) error {
	rec := p.Record

	params := make([]jen.Code, 0, len(p.Slots))
	fields := make([]jen.Code, 0, len(p.Slots))

	for i := range p.Slots {
		s := &p.Slots[i]
		params = append(params, jen.Id(s.Param).Id(s.State))

		ft, err := typeExpr(s.Field.Type, rec.PkgPath)
		if err != nil {
			return fmt.Errorf("field %s: %w", s.Field.Name, err)
		}

		fields = append(fields, jen.Id(s.Storage).Add(ft))
		if s.NeedsFlag() {
			fields = append(fields, jen.Id(s.Flag).Bool())
		}
	}

	f.Commentf("%s assembles a %s value field by field. Every setter returns a", p.BuilderName, rec.Name)
	f.Comment("new builder value whose type records which fields are set; a builder is")
	f.Commentf("single-use and consumed by %s.", p.FinalizerName)
	f.Type().Id(p.BuilderName).Types(params...).Struct(fields...)

	return nil
}

// emitConstructor writes the zero-argument entry point returning the all-Unset
// instantiation with every storage slot empty.
func (g *Generator) emitConstructor(f *jen.File, p *plan.BuilderPlan) {
	f.Commentf("%s returns an empty builder for %s: every slot starts Unset.", p.ConstructorName, p.Record.Name)
	f.Func().Id(p.ConstructorName).Params().
		Add(instantiate(p.BuilderName, markerArgs(p.UnsetMarkers()))).
		Block(
			jen.Return(instantiate(p.BuilderName, markerArgs(p.UnsetMarkers())).Values()),
		)
}

// emitSetter writes the marked-transition setter for slot i: defined only
// where slot i is Unset, returning the instantiation with slot i flipped to
// Set and every other slot carried over unchanged.
func (g *Generator) emitSetter(f *jen.File, p *plan.BuilderPlan, i int) error {
	s := &p.Slots[i]

	ft, err := typeExpr(s.Field.Type, p.Record.PkgPath)
	if err != nil {
		return fmt.Errorf("field %s: %w", s.Field.Name, err)
	}

	f.Commentf("%s sets the %s field.", s.SetterName, s.Field.Name)
	fn := f.Func().Id(s.SetterName)

	if free := p.FreeSlots(i); len(free) > 0 {
		fn = fn.Types(stateParams(free)...)
	}

	fn.Params(
		jen.Id("b").Add(instantiate(p.BuilderName, setterArgs(p, i, false))),
		jen.Id("v").Add(ft),
	).
		Add(instantiate(p.BuilderName, setterArgs(p, i, true))).
		Block(
			jen.Return(instantiate(p.BuilderName, setterArgs(p, i, true)).Values(setterDict(p, i))),
		)

	return nil
}

// emitFromSetter writes the coercion variant: same transition as the plain
// setter, accepting any value that converts itself into the field's type.
func (g *Generator) emitFromSetter(f *jen.File, p *plan.BuilderPlan, i int) error {
	s := &p.Slots[i]

	ft, err := typeExpr(s.Field.Type, p.Record.PkgPath)
	if err != nil {
		return fmt.Errorf("field %s: %w", s.Field.Name, err)
	}

	params := stateParams(p.FreeSlots(i))
	params = append(params, jen.Id("V").Id(p.BridgeName).Index(ft))

	f.Commentf("%s sets %s from any value convertible to its type.", s.FromSetterName, s.Field.Name)
	f.Func().Id(s.FromSetterName).Types(params...).
		Params(
			jen.Id("b").Add(instantiate(p.BuilderName, setterArgs(p, i, false))),
			jen.Id("v").Id("V"),
		).
		Add(instantiate(p.BuilderName, setterArgs(p, i, true))).
		Block(
			jen.Return(jen.Id(s.SetterName).Call(jen.Id("b"), jen.Id("v").Dot(p.BridgeName).Call())),
		)

	return nil
}

// instantiate renders name[args...].
func instantiate(name string, args []jen.Code) *jen.Statement {
	return jen.Id(name).Index(jen.List(args...))
}

// markerArgs turns marker type names into instantiation arguments.
func markerArgs(names []string) []jen.Code {
	out := make([]jen.Code, len(names))
	for i, n := range names {
		out[i] = jen.Id(n)
	}

	return out
}

// stateParams renders the free type-parameter list for the given slots.
func stateParams(slots []plan.Slot) []jen.Code {
	out := make([]jen.Code, len(slots))
	for i := range slots {
		out[i] = jen.Id(slots[i].Param).Id(slots[i].State)
	}

	return out
}

// setterArgs renders the builder instantiation for a setter of slot i: slot i
// pinned to its Unset (or, for the result, Set) marker and every other slot
// left to its free parameter.
func setterArgs(p *plan.BuilderPlan, i int, after bool) []jen.Code {
	out := make([]jen.Code, len(p.Slots))

	for j := range p.Slots {
		s := &p.Slots[j]

		switch {
		case j != i:
			out[j] = jen.Id(s.Param)
		case after:
			out[j] = jen.Id(s.Set)
		default:
			out[j] = jen.Id(s.Unset)
		}
	}

	return out
}

// setterDict builds the composite literal carrying every slot into the next
// builder value, with slot i replaced by the incoming value.
func setterDict(p *plan.BuilderPlan, i int) jen.Dict {
	d := jen.Dict{}

	for j := range p.Slots {
		s := &p.Slots[j]

		if j == i {
			d[jen.Id(s.Storage)] = jen.Id("v")
			if s.NeedsFlag() {
				d[jen.Id(s.Flag)] = jen.True()
			}

			continue
		}

		d[jen.Id(s.Storage)] = jen.Id("b").Dot(s.Storage)
		if s.NeedsFlag() {
			d[jen.Id(s.Flag)] = jen.Id("b").Dot(s.Flag)
		}
	}

	return d
}
