package classgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/classgen"
)

func TestGenerateWritesOneFilePerTopLevelSchema(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, classgen.Generate(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	_, err = os.Stat(filepath.Join(dir, "actors.go"))
	assert.NoError(t, err)
}

func TestGenerateEmitsValidGoSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, classgen.Generate(dir))

	data, err := os.ReadFile(filepath.Join(dir, "actors.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package rpgtypes")
	assert.Contains(t, string(data), "type Actors struct")
}
