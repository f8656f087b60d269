package gen

import (
	"bytes"
	"go/token"
	"go/types"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// render declares a variable of the rendered type inside a throwaway file, so
// import qualification is exercised the same way real generation does it.
func render(t *testing.T, typ types.Type, samePkg string) string {
	t.Helper()

	expr, err := typeExpr(typ, samePkg)
	require.NoError(t, err)

	f := jen.NewFilePathName("example.com/out", "out")
	f.Var().Id("x").Add(expr)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))

	return buf.String()
}

func namedType(pkgPath, pkgName, name string, underlying types.Type) *types.Named {
	pkg := types.NewPackage(pkgPath, pkgName)
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)

	return types.NewNamed(obj, underlying, nil)
}

func TestTypeExpr(t *testing.T) {
	duration := namedType("time", "time", "Duration", types.Typ[types.Int64])

	tests := []struct {
		name string
		typ  types.Type
		want string
	}{
		{"basic", types.Typ[types.Int], "var x int"},
		{"slice", types.NewSlice(types.Typ[types.String]), "var x []string"},
		{"array", types.NewArray(types.Typ[types.Byte], 4), "var x [4]byte"},
		{"map", types.NewMap(types.Typ[types.String], types.Typ[types.Int]), "var x map[string]int"},
		{"pointer", types.NewPointer(duration), "var x *time.Duration"},
		{"chan", types.NewChan(types.SendRecv, types.Typ[types.Int]), "var x chan int"},
		{"recv chan", types.NewChan(types.RecvOnly, types.Typ[types.Int]), "var x <-chan int"},
		{"send chan", types.NewChan(types.SendOnly, types.Typ[types.Int]), "var x chan<- int"},
		{"empty interface", types.NewInterfaceType(nil, nil).Complete(), "var x any"},
		{"universe error", types.Universe.Lookup("error").Type(), "var x error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, render(t, tt.typ, "example.com/out"), tt.want)
		})
	}
}

func TestTypeExprQualification(t *testing.T) {
	widget := namedType("example.com/out", "out", "Widget", types.Typ[types.Int])

	// Same-package types stay unqualified and pull no import.
	src := render(t, widget, "example.com/out")
	assert.Contains(t, src, "var x Widget")
	assert.NotContains(t, src, "import")

	// Foreign types get both the selector and the import.
	dur := namedType("time", "time", "Duration", types.Typ[types.Int64])
	src = render(t, dur, "example.com/out")
	assert.Contains(t, src, "var x time.Duration")
	assert.Contains(t, src, `"time"`)
}

func TestTypeExprRejectsAnonymous(t *testing.T) {
	_, err := typeExpr(types.NewStruct(nil, nil), "example.com/out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anonymous struct")
}
