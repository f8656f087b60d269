package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{
		{Dir: filepath.Join(dir, "points"), Filename: "point_builder.go", Content: []byte("package points\n")},
		{Dir: filepath.Join(dir, "points"), Filename: "builder_into.go", Content: []byte("package points\n")},
	}

	require.NoError(t, WriteFiles(files))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(f.Dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)
	}
}

func TestWriteFilesUnwritableDir(t *testing.T) {
	files := []GeneratedFile{
		{Dir: filepath.Join(t.TempDir(), "taken"), Filename: "x.go", Content: []byte("package x\n")},
	}

	// Occupy the directory path with a regular file.
	require.NoError(t, os.WriteFile(files[0].Dir, []byte{}, 0o644))

	err := WriteFiles(files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}
