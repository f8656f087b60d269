package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsAccumulate(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeSchemaShape, "nothing required", "pkg.Rec", "")
	d.AddWarning(CodeAttribute, "odd tag", "pkg.Rec", "A")
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())

	d.AddError(CodeAttribute, "unknown option", "pkg.Rec", "B")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())

	require.Len(t, d.ErrorsFor("pkg.Rec"), 1)
	assert.Empty(t, d.ErrorsFor("pkg.Other"))

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option")
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeSchemaShape, "one", "R1", "")
	b.AddError(CodeAttribute, "two", "R2", "F")
	b.AddInfo(CodeSchemaShape, "note", "R2", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     CodeAttribute,
		Message:  `unknown option "foo"`,
		Record:   "pkg.Rec",
		Field:    "A",
	}

	assert.Equal(t, `[pkg.Rec] A: [attribute] unknown option "foo"`, d.String())

	bare := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", bare.String())

	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
}
