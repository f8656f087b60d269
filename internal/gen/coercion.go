package gen

import (
	"github.com/dave/jennifer/jen"

	"builder-generator/internal/plan"
)

// BridgeFilename is the per-package file holding the coercion bridge.
const BridgeFilename = "builder_into.go"

// emitBridge writes the coercion bridge interface, emitted once per output
// package. It is the only declaration shared between records: setter From
// variants constrain their value parameter with it and delegate to the
// value's own conversion, nothing more.
func (g *Generator) emitBridge(f *jen.File) {
	f.Commentf("%s is implemented by values that can convert themselves into T.", plan.BridgeName)
	f.Comment("Setter From variants accept any such value for a field of type T.")
	f.Type().Id(plan.BridgeName).Types(jen.Id("T").Any()).Interface(
		jen.Id(plan.BridgeName).Params().Id("T"),
	)
}
