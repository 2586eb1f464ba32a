package ddl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/ddl"
	"github.com/andrewfoote/rpgxp-go/schema"
)

func lowerFiles(t *testing.T) *ddl.Schema {
	t.Helper()
	s, err := ddl.Lower(schema.Files)
	require.NoError(t, err)
	return s
}

func TestLowerSchemaFilesSucceeds(t *testing.T) {
	s := lowerFiles(t)
	assert.NotEmpty(t, s.Tables)
}

func TestNoDuplicateTableNames(t *testing.T) {
	s := lowerFiles(t)
	seen := map[string]bool{}
	for _, table := range s.Tables {
		assert.Falsef(t, seen[table.Name], "duplicate table name %q", table.Name)
		seen[table.Name] = true
	}
}

// Scenario 4: the direction lookup table is seeded with exactly the four
// compass directions RGSS actually stores, nothing else.
func TestDirectionEnumSeededExactly(t *testing.T) {
	s := lowerFiles(t)

	table := s.Table("direction")
	require.NotNil(t, table)
	names := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"id", "name"}, names)

	var seeds []string
	for _, seed := range s.Seeds {
		if strings.HasPrefix(seed, "INSERT INTO direction ") {
			seeds = append(seeds, seed)
		}
	}
	assert.ElementsMatch(t, []string{
		"INSERT INTO direction (id, name) VALUES (2, 'DOWN');",
		"INSERT INTO direction (id, name) VALUES (4, 'LEFT');",
		"INSERT INTO direction (id, name) VALUES (6, 'RIGHT');",
		"INSERT INTO direction (id, name) VALUES (8, 'UP');",
	}, seeds)
}

// Scenario 3: a discriminated event command (code 111, conditional
// branch) with a Complex sub-discriminant (switch, code 0) lowers to a
// base command table plus two levels of sibling variant tables, sharing
// the base table's primary key unchanged.
func TestConditionalBranchSwitchTableNaming(t *testing.T) {
	s := lowerFiles(t)

	base := s.Table("common_event_command")
	require.NotNil(t, base)
	assert.Equal(t, []string{"common_event_id", "index"}, base.PKColumns)

	branch := s.Table("common_event_command_conditional_branch")
	require.NotNil(t, branch)
	assert.Equal(t, base.PKColumns, branch.PKColumns)

	sw := s.Table("common_event_command_conditional_branch_switch")
	require.NotNil(t, sw)
	assert.Equal(t, base.PKColumns, sw.PKColumns)

	var colNames []string
	for _, c := range sw.Columns {
		colNames = append(colNames, c.Name)
	}
	assert.Contains(t, colNames, "switch_id")
	assert.Contains(t, colNames, "state")
}

func TestEnumLookupTableIsSeededOnlyOnce(t *testing.T) {
	s := lowerFiles(t)

	count := 0
	for _, table := range s.Tables {
		if table.Name == "direction" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTableStringIsStrictWithoutRowID(t *testing.T) {
	s := lowerFiles(t)
	table := s.Table("actor")
	require.NotNil(t, table)
	rendered := table.String()
	assert.Contains(t, rendered, "STRICT")
	assert.NotContains(t, rendered, "WITHOUT ROWID")
}
