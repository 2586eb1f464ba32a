package sqlitedb_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/sqlitedb"
)

func TestOpenCreatesDBRootAndFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "dbdir")

	db, err := sqlitedb.Open(root)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())
}

func TestRunScriptAndCleanForeignKeyReport(t *testing.T) {
	db, err := sqlitedb.Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, sqlitedb.RunScript(db, `
CREATE TABLE parent (id INTEGER PRIMARY KEY, name TEXT NOT NULL) STRICT;
CREATE TABLE child (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL REFERENCES parent(id)) STRICT;
INSERT INTO parent (id, name) VALUES (1, 'widget');
INSERT INTO child (id, parent_id) VALUES (1, 1);
`))

	report, err := sqlitedb.ForeignKeyReport(db)
	require.NoError(t, err)
	assert.Equal(t, "No foreign key constraint violations found.", report)
}

func TestForeignKeyReportDescribesViolation(t *testing.T) {
	db, err := sqlitedb.Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, sqlitedb.RunScript(db, `
CREATE TABLE parent (id INTEGER PRIMARY KEY, name TEXT NOT NULL) STRICT;
CREATE TABLE child (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL REFERENCES parent(id)) STRICT;
PRAGMA foreign_keys = OFF;
INSERT INTO child (id, parent_id) VALUES (1, 99);
PRAGMA foreign_keys = ON;
`))

	report, err := sqlitedb.ForeignKeyReport(db)
	require.NoError(t, err)
	assert.Contains(t, report, "child row 1 references missing parent")
	assert.Contains(t, report, "(parent_id) = (99)")
	assert.Contains(t, report, "primary key is (id)")
}

func TestGetInfoReportsActiveDriver(t *testing.T) {
	info := sqlitedb.GetInfo()
	assert.NotEmpty(t, info.Driver)
	assert.NotEmpty(t, info.Type)
	assert.NotEmpty(t, info.Package)
}
