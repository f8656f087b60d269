package gen

import (
	"github.com/dave/jennifer/jen"

	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
)

// emitFinalizer writes the finalizing operation. Its parameter type pins
// every required slot to that slot's Set marker and leaves optional slots
// generic, so an instantiation missing a required field matches no signature:
// a compile error in the caller, with no runtime path behind it.
//
// Unset optional slots cost nothing here: a zero-default slot already holds
// its type's zero value, and an expression default is spliced verbatim into
// the Unset branch, evaluated only now, never earlier.
func (g *Generator) emitFinalizer(f *jen.File, p *plan.BuilderPlan) error {
	rec := p.Record

	f.Commentf("%s consumes the builder and produces the %s. It is reachable only", p.FinalizerName, rec.Name)
	f.Comment("when every required field has been set; an incomplete chain fails to")
	f.Comment("compile. Unset optional fields receive their zero value or default here.")

	fn := f.Func().Id(p.FinalizerName)

	if optional := p.OptionalSlots(); len(optional) > 0 {
		fn = fn.Types(stateParams(optional)...)
	}

	fn.Params(jen.Id("b").Add(instantiate(p.BuilderName, finalizerArgs(p)))).
		Id(rec.Name).
		BlockFunc(func(body *jen.Group) {
			body.Id("out").Op(":=").Id(rec.Name).Values(movedDict(p))

			for i := range p.Slots {
				s := &p.Slots[i]
				if s.Field.Classification != schema.OptionalDefault {
					continue
				}

				body.If(jen.Id("b").Dot(s.Flag)).Block(
					jen.Id("out").Dot(s.Field.Name).Op("=").Id("b").Dot(s.Storage),
				).Else().Block(
					jen.Id("out").Dot(s.Field.Name).Op("=").Add(rawExpr(s.Field.Default)),
				)
			}

			body.Return(jen.Id("out"))
		})

	return nil
}

// finalizerArgs renders the builder instantiation the finalizer accepts:
// required slots pinned to Set, optional slots free.
func finalizerArgs(p *plan.BuilderPlan) []jen.Code {
	out := make([]jen.Code, len(p.Slots))

	for i := range p.Slots {
		s := &p.Slots[i]

		if s.Optional() {
			out[i] = jen.Id(s.Param)
		} else {
			out[i] = jen.Id(s.Set)
		}
	}

	return out
}

// movedDict builds the result literal for fields moved unconditionally:
// required fields (always set when the finalizer is reachable) and
// zero-default fields (an untouched slot already holds the zero value).
// Expression defaults are handled by guarded assignments after the literal.
func movedDict(p *plan.BuilderPlan) jen.Dict {
	d := jen.Dict{}

	for i := range p.Slots {
		s := &p.Slots[i]

		if s.Field.Classification == schema.OptionalDefault {
			continue
		}

		d[jen.Id(s.Field.Name)] = jen.Id("b").Dot(s.Storage)
	}

	return d
}

// rawExpr splices verbatim default expression text into the generated code.
// The expression is deliberately uninterpreted: its type correctness is
// checked by the compiler at this site, attributable to the field above.
func rawExpr(expr string) *jen.Statement {
	return jen.Id(expr)
}
