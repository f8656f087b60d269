package gen

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/config"
)

// TestRunExamples runs the full pipeline over the examples tree and checks
// that the output agrees with the builder files committed there.
func TestRunExamples(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join("..", "..", "builder.yaml"))
	require.NoError(t, err)

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), "%v", res.Diagnostics.Errors)

	var names []string
	for _, p := range res.Plans {
		names = append(names, p.Record.Name)
	}

	// Package-path order: basic, defaults, points.
	assert.Equal(t, []string{"Server", "Job", "Point"}, names)

	// One builder per record plus one bridge per package.
	require.Len(t, res.Files, 6)

	fset := token.NewFileSet()
	for _, f := range res.Files {
		_, err := parser.ParseFile(fset, f.Filename, f.Content, parser.ParseComments)
		assert.NoError(t, err, "%s must parse", f.Filename)

		// Every generated file targets a path that is committed in the tree.
		_, err = os.Stat(filepath.Join(f.Dir, f.Filename))
		assert.NoError(t, err, "%s/%s should already exist", f.Dir, f.Filename)
	}
}

func TestRunExplicitSelector(t *testing.T) {
	off := false
	cfg := &config.Config{
		Version:  "1",
		Packages: []string{"builder-generator/examples/points"},
		Records:  []string{"points.Point"},
		Discover: &off,
		Output:   config.Output{Suffix: "_builder.go"},
	}

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors())
	require.Len(t, res.Plans, 1)
	assert.Equal(t, "Point", res.Plans[0].Record.Name)
}

func TestRunSelectorNotFound(t *testing.T) {
	cfg := &config.Config{
		Version:  "1",
		Packages: []string{"builder-generator/examples/points"},
		Records:  []string{"points.Missing"},
		Output:   config.Output{Suffix: "_builder.go"},
	}

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, res.Diagnostics.HasErrors())
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "not found")
}

func TestRunSelectorNamesNonStruct(t *testing.T) {
	cfg := &config.Config{
		Version:  "1",
		Packages: []string{"builder-generator/examples/basic"},
		Records:  []string{"basic.HostName"},
		Output:   config.Output{Suffix: "_builder.go"},
	}

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, res.Diagnostics.HasErrors())
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "not a field-based struct")
}
