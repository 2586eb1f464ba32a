package material

import (
	"fmt"
	"strings"
)

// Schema is the material catalogue's static DDL: the two lookup tables
// (material_type, material_subtype), the material and material_file
// tables ddl's MaterialRefSchema lowering's composite foreign key
// targets, and the material_best_file view that resolves the
// priority/extension tie-break at query time (original_source's own
// SCHEMA string, spec §3.3). ddl never declares these tables itself
// (component 6's DESIGN.md entry); pipeline concatenates this with
// ddl.Schema.String() into one schema.sql.
//
// The material table's primary key column order (stem, type, subtype)
// matches the composite foreign key ddl.Lower's enforced MaterialRefSchema
// columns reference, so the two packages agree on column order without
// either importing the other.
func Schema() string {
	return strings.Join([]string{
		createMaterialType,
		createMaterialSubtype,
		seedMaterialSubtype(),
		createMaterial,
		createMaterialSource,
		seedMaterialSource,
		createMaterialFile,
		createMaterialBestFileView,
	}, "\n\n")
}

const createMaterialType = `CREATE TABLE material_type (
  name TEXT PRIMARY KEY
) STRICT;`

const createMaterialSubtype = `CREATE TABLE material_subtype (
  type TEXT NOT NULL REFERENCES material_type(name),
  name TEXT NOT NULL,
  PRIMARY KEY (type, name)
) STRICT;`

func seedMaterialSubtype() string {
	var stmts []string
	stmts = append(stmts, fmt.Sprintf("INSERT INTO material_type (name) VALUES (%s), (%s);",
		quoteText(Types[0]), quoteText(Types[1])))
	for _, typ := range Types {
		for _, subtype := range Subtypes[typ] {
			stmts = append(stmts, fmt.Sprintf("INSERT INTO material_subtype (type, name) VALUES (%s, %s);",
				quoteText(typ), quoteText(subtype)))
		}
	}
	return strings.Join(stmts, "\n")
}

const createMaterial = `CREATE TABLE material (
  stem TEXT NOT NULL,
  type TEXT NOT NULL,
  subtype TEXT NOT NULL,
  PRIMARY KEY (stem, type, subtype),
  FOREIGN KEY (type, subtype) REFERENCES material_subtype(type, name)
) STRICT;`

const createMaterialSource = `CREATE TABLE material_source (
  name TEXT PRIMARY KEY,
  priority INTEGER NOT NULL UNIQUE
) STRICT;`

const seedMaterialSource = `INSERT INTO material_source (name, priority) VALUES ('game', 0), ('rtp', -1);`

const createMaterialFile = `CREATE TABLE material_file (
  stem TEXT NOT NULL,
  type TEXT NOT NULL,
  subtype TEXT NOT NULL,
  source TEXT NOT NULL REFERENCES material_source(name),
  extension TEXT NOT NULL,
  PRIMARY KEY (stem, type, subtype, source, extension),
  FOREIGN KEY (type, subtype) REFERENCES material_subtype(type, name),
  FOREIGN KEY (stem, type, subtype) REFERENCES material(stem, type, subtype)
) STRICT;`

// createMaterialBestFileView mirrors original_source/rpgxp/material.py's
// own correlated-NOT-EXISTS formulation exactly: a file is best if no
// other file of the same material beats it on (priority, then
// extension).
const createMaterialBestFileView = `CREATE VIEW material_best_file (stem, type, subtype, source, extension) AS
SELECT m.stem, m.type, m.subtype, m.source, m.extension
FROM material_file m
JOIN material_source s ON s.name = m.source
WHERE NOT EXISTS (
  SELECT * FROM material_file m2
  JOIN material_source s2 ON s2.name = m2.source
  WHERE m2.stem = m.stem AND m2.type = m.type AND m2.subtype = m.subtype
  AND (
    s2.priority > s.priority
    OR (s2.priority = s.priority AND m2.extension < m.extension)
  )
);`

// String renders the scanned inventory's data as an idempotent
// DELETE-then-INSERT script, the material-package counterpart to
// rows.Script.String().
func (inv *Inventory) String() string {
	var stmts []string
	stmts = append(stmts, "DELETE FROM material_file;", "DELETE FROM material;")
	for _, k := range inv.order {
		stmts = append(stmts, fmt.Sprintf("INSERT INTO material (stem, type, subtype) VALUES (%s, %s, %s);",
			quoteText(k.Name), quoteText(k.Type), quoteText(k.Subtype)))
	}
	for _, f := range inv.Files {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO material_file (stem, type, subtype, source, extension) VALUES (%s, %s, %s, %s, %s);",
			quoteText(f.Name), quoteText(f.Type), quoteText(f.Subtype), quoteText(f.Source), quoteText(f.Extension)))
	}
	return strings.Join(stmts, "\n")
}

func quoteText(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
