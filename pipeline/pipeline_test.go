package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/schema"
)

func TestFilePathSingleFileJoinsDataRoot(t *testing.T) {
	fs := schema.SingleFileSchema{Path: "Actors.rxdata"}
	assert.Equal(t, filepath.Join("/root/Data", "Actors.rxdata"), filePath(fs, "/root/Data"))
}

func TestFilePathMultipleFilesIsTheDataRootItself(t *testing.T) {
	fs := schema.MultipleFilesSchema{Pattern: `Map(\d{3})\.rxdata`}
	assert.Equal(t, "/root/Data", filePath(fs, "/root/Data"))
}

func TestWriteGeneratedScriptsWritesBothFiles(t *testing.T) {
	dbRoot := t.TempDir()
	require.NoError(t, writeGeneratedScripts(dbRoot, "CREATE TABLE t (id INTEGER);", "INSERT INTO t (id) VALUES (1);"))

	schemaBytes, err := readFile(filepath.Join(dbRoot, schemaFileName))
	require.NoError(t, err)
	assert.Contains(t, schemaBytes, "CREATE TABLE t")

	dataBytes, err := readFile(filepath.Join(dbRoot, dataFileName))
	require.NoError(t, err)
	assert.Contains(t, dataBytes, "INSERT INTO t")
}

func TestLoadDatabaseRunsSchemaThenData(t *testing.T) {
	dbRoot := t.TempDir()
	db, err := loadDatabase(dbRoot,
		`CREATE TABLE widget (id INTEGER PRIMARY KEY, name TEXT NOT NULL) STRICT;`,
		`INSERT INTO widget (id, name) VALUES (1, 'sword');`,
	)
	require.NoError(t, err)
	defer db.Close()

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM widget WHERE id = 1`).Scan(&name))
	assert.Equal(t, "sword", name)
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
