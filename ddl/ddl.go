// Package ddl lowers the schema algebra into the output relational
// shape: STRICT SQLite tables, columns, constraints, and enum lookup
// seed data (spec §4.3). This is the *output* table representation,
// distinct from schema.TableSchema, the *input* algebra node it's
// derived from.
//
// Grounded on original_source/rpgxp/db_schema_v2.py in full, with the
// WITHOUT ROWID omission recorded in DESIGN.md.
package ddl

import (
	"fmt"
	"strings"
)

// Column is one output column.
type Column struct {
	Name    string
	Type    string // INTEGER, REAL, TEXT, or BLOB
	NotNull bool
	// PK marks a column as the table's sole primary-key column, rendered
	// as an inline "PRIMARY KEY" modifier rather than a table-level
	// clause. Only set when the table's whole PK is this one column.
	PK bool
	// Check, if non-empty, is a complete boolean expression (column name
	// included) rendered as an inline CHECK(...).
	Check string
	// Default, if non-empty, is a literal SQL default expression.
	Default string
	// Generated, if non-empty, is the expression of a generated column
	// (spec's "generated columns bound to the literal type/subtype").
	Generated string
	// FK, if set, renders an inline single-column REFERENCES modifier.
	FK *ColumnFK
}

// ColumnFK is an inline, single-column foreign key.
type ColumnFK struct {
	RefTable  string
	RefColumn string
}

func (c *Column) render(b *strings.Builder) {
	fmt.Fprintf(b, "  %s %s", c.Name, c.Type)
	if c.Generated != "" {
		fmt.Fprintf(b, " GENERATED ALWAYS AS (%s) STORED", c.Generated)
		return
	}
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.Default != "" {
		fmt.Fprintf(b, " DEFAULT %s", c.Default)
	}
	if c.PK {
		b.WriteString(" PRIMARY KEY")
	}
	if c.Check != "" {
		fmt.Fprintf(b, " CHECK (%s)", c.Check)
	}
	if c.FK != nil {
		fmt.Fprintf(b, " REFERENCES %s(%s)", c.FK.RefTable, c.FK.RefColumn)
	}
}

// TableFK is a multi-column foreign key, hoisted to a table-level clause
// because SQLite has no inline syntax for a composite REFERENCES.
type TableFK struct {
	Columns    []string
	RefTable   string
	RefColumns []string
}

// Table is one output CREATE TABLE, columns in declaration order.
type Table struct {
	Name        string
	Columns     []*Column
	PKColumns   []string // may name a single inline-PK column or several
	ForeignKeys []*TableFK
}

func (t *Table) column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// singlePK reports whether the table's primary key is exactly one
// column, already marked PK on that Column (and so renders inline
// rather than as a table-level clause).
func (t *Table) singlePK() bool {
	return len(t.PKColumns) == 1 && t.column(t.PKColumns[0]) != nil && t.column(t.PKColumns[0]).PK
}

// String renders the table's CREATE TABLE statement. Column order is
// declaration order; PK/FK clauses are collapsed inline for the
// single-column case and hoisted to the end otherwise (spec §4.3
// "Serialization"). Every table is STRICT; WITHOUT ROWID is
// deliberately never emitted (DESIGN.md).
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", t.Name)

	var lines []string
	for _, c := range t.Columns {
		var cb strings.Builder
		c.render(&cb)
		lines = append(lines, cb.String())
	}
	if !t.singlePK() && len(t.PKColumns) > 0 {
		lines = append(lines, "  PRIMARY KEY ("+strings.Join(t.PKColumns, ", ")+")")
	}
	for _, fk := range t.ForeignKeys {
		lines = append(lines, fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
			strings.Join(fk.Columns, ", "), fk.RefTable, strings.Join(fk.RefColumns, ", ")))
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n) STRICT;")
	return b.String()
}

// Schema is the DDL lowering's full output: every table in declaration
// (traversal) order, plus the enum lookup tables' seed INSERT
// statements in the order their enums were first encountered.
type Schema struct {
	Tables []*Table
	Seeds  []string
}

// String concatenates every CREATE TABLE followed by every seed INSERT,
// the script spec §4.3 calls schema.sql.
func (s *Schema) String() string {
	var stmts []string
	for _, t := range s.Tables {
		stmts = append(stmts, t.String())
	}
	stmts = append(stmts, s.Seeds...)
	return strings.Join(stmts, "\n\n")
}

// Table looks up a table by name, for tests and for the row lowering.
func (s *Schema) Table(name string) *Table {
	for _, t := range s.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}
