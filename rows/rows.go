// Package rows lowers a schema-driven decoder's decode.Value tree into
// the row data that has to land in the tables ddl.Lower describes: one
// row per List/Set/Dict/Variant-sibling table, formatted as literal SQL
// text ready to concatenate into an import script.
//
// Grounded on original_source/rpgxp/generate_db_data.py in full: this
// package mirrors ddl's traversal (same table names, same primary-key
// propagation/sharing rules) but carries a decoded value and an
// accumulating parent-key map instead of a schema-only type, and its
// output is literal rows rather than column declarations.
package rows

import (
	"fmt"
	"strings"

	"github.com/andrewfoote/rpgxp-go/decode"
	"github.com/andrewfoote/rpgxp-go/schema"
)

// Table is one output table's accumulated insert data: column names in
// the order first observed, and one literal-formatted row per record.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

func (t *Table) statements() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	// DELETE FROM first makes a re-run of the same import idempotent: a
	// table this run touches is fully replaced, never appended to.
	stmts := make([]string, 0, len(t.Rows)+1)
	stmts = append(stmts, fmt.Sprintf("DELETE FROM %s;", t.Name))
	cols := strings.Join(t.Columns, ", ")
	for _, row := range t.Rows {
		stmts = append(stmts, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", t.Name, cols, strings.Join(row, ", ")))
	}
	return stmts
}

// Script is Lower's full output: every touched table's DELETE FROM and
// INSERT statements, in the order each table was first populated.
type Script struct {
	Tables []*Table
}

// String renders the whole script as one statement per line, the
// data.sql companion to ddl.Schema's schema.sql.
func (s *Script) String() string {
	var all []string
	for _, t := range s.Tables {
		all = append(all, t.statements()...)
	}
	return strings.Join(all, "\n")
}

// Table looks up one accumulated table by name, for tests.
func (s *Script) Table(name string) *Table {
	for _, t := range s.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (s *Script) table(name string) *Table {
	if t := s.Table(name); t != nil {
		return t
	}
	t := &Table{Name: name}
	s.Tables = append(s.Tables, t)
	return t
}

// FileValue pairs one top-level file schema with the value DecodeFile
// produced from decoding it.
type FileValue struct {
	File  schema.FileSchema
	Value *decode.Value
}
