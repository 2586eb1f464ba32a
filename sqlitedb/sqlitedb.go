package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Info describes the SQLite driver this build links against.
type Info struct {
	Driver  string
	Type    string
	Package string
}

// GetInfo returns the active driver's Info.
func GetInfo() Info {
	return Info{Driver: driverName, Type: driverType, Package: driverPackage}
}

const dbFileName = "db.sqlite"

// Open creates dbRoot if it doesn't already exist and opens (creating
// if necessary) the SQLite database file inside it, with foreign key
// enforcement turned on. Mirrors original_source/rpgxp/db.py's connect.
func Open(dbRoot string) (*sql.DB, error) {
	if err := os.MkdirAll(dbRoot, 0o755); err != nil {
		return nil, fmt.Errorf("sqlitedb: creating %s: %w", dbRoot, err)
	}

	path := filepath.Join(dbRoot, dbFileName)
	db, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitedb: connecting to %s: %w", path, err)
	}
	return db, nil
}

// RunScript executes a (possibly multi-statement) SQL script against
// db, such as the combined schema or data-loading script assembled by
// the pipeline package. Mirrors db.py's run_script.
func RunScript(db *sql.DB, script string) error {
	if _, err := db.Exec(script); err != nil {
		return fmt.Errorf("sqlitedb: running script: %w", err)
	}
	return nil
}

type fkViolation struct {
	table  string
	rowID  sql.NullInt64
	parent string
	fkid   int64
}

type fkColumn struct {
	from, to string
}

// ForeignKeyReport runs PRAGMA foreign_key_check and, for every
// violation found, resolves the violating row's foreign key column
// values and the referenced table's primary key columns into a
// human-readable report. Returns a fixed "no violations" message when
// the database is clean. Mirrors db.py's foreign_key_report.
func ForeignKeyReport(db *sql.DB) (string, error) {
	violations, err := foreignKeyViolations(db)
	if err != nil {
		return "", err
	}
	if len(violations) == 0 {
		return "No foreign key constraint violations found.", nil
	}

	var report strings.Builder
	for _, v := range violations {
		line, err := describeViolation(db, v)
		if err != nil {
			return "", err
		}
		report.WriteString(line)
		report.WriteByte('\n')
	}
	return strings.TrimRight(report.String(), "\n"), nil
}

func foreignKeyViolations(db *sql.DB) ([]fkViolation, error) {
	rows, err := db.Query(`PRAGMA foreign_key_check;`)
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: running foreign_key_check: %w", err)
	}
	defer rows.Close()

	var violations []fkViolation
	for rows.Next() {
		var v fkViolation
		if err := rows.Scan(&v.table, &v.rowID, &v.parent, &v.fkid); err != nil {
			return nil, fmt.Errorf("sqlitedb: scanning foreign_key_check row: %w", err)
		}
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitedb: reading foreign_key_check: %w", err)
	}
	return violations, nil
}

func describeViolation(db *sql.DB, v fkViolation) (string, error) {
	cols, err := foreignKeyColumns(db, v.table, v.fkid)
	if err != nil {
		return "", err
	}

	fromCols := make([]string, len(cols))
	for i, c := range cols {
		fromCols[i] = c.from
	}

	childVals, err := rowValues(db, v.table, v.rowID, fromCols)
	if err != nil {
		return "", err
	}
	pkCols, err := primaryKeyColumns(db, v.parent)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%s row %s references missing %s (%s) = (%s); %s primary key is (%s)",
		v.table, rowIDString(v.rowID), v.parent,
		strings.Join(fromCols, ", "), strings.Join(childVals, ", "),
		v.parent, strings.Join(pkCols, ", "),
	), nil
}

func rowIDString(rowID sql.NullInt64) string {
	if !rowID.Valid {
		return "(without rowid)"
	}
	return fmt.Sprintf("%d", rowID.Int64)
}

// foreignKeyColumns returns the from/to column pairs making up
// foreign key fkid on table, in declaration order.
func foreignKeyColumns(db *sql.DB, table string, fkid int64) ([]fkColumn, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT "from", "to", seq FROM pragma_foreign_key_list(%s) WHERE id = ?`, quoteText(table)), fkid)
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: listing foreign keys for %s: %w", table, err)
	}
	defer rows.Close()

	type seqCol struct {
		fkColumn
		seq int
	}
	var cols []seqCol
	for rows.Next() {
		var c seqCol
		if err := rows.Scan(&c.from, &c.to, &c.seq); err != nil {
			return nil, fmt.Errorf("sqlitedb: scanning foreign_key_list row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitedb: reading foreign_key_list: %w", err)
	}

	sort.Slice(cols, func(i, j int) bool { return cols[i].seq < cols[j].seq })
	out := make([]fkColumn, len(cols))
	for i, c := range cols {
		out[i] = c.fkColumn
	}
	return out, nil
}

// primaryKeyColumns returns table's primary key column names in
// key-position order.
func primaryKeyColumns(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT name, pk FROM pragma_table_info(%s) WHERE pk > 0`, quoteText(table)))
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: listing columns for %s: %w", table, err)
	}
	defer rows.Close()

	type pkCol struct {
		name string
		pos  int
	}
	var cols []pkCol
	for rows.Next() {
		var c pkCol
		if err := rows.Scan(&c.name, &c.pos); err != nil {
			return nil, fmt.Errorf("sqlitedb: scanning table_info row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitedb: reading table_info: %w", err)
	}

	sort.Slice(cols, func(i, j int) bool { return cols[i].pos < cols[j].pos })
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names, nil
}

// rowValues reads cols from the row identified by rowid in table. A
// WITHOUT ROWID table can't be located this way; foreign_key_check
// then reports rowid as NULL, and there's nothing to look up.
func rowValues(db *sql.DB, table string, rowID sql.NullInt64, cols []string) ([]string, error) {
	if !rowID.Valid {
		vals := make([]string, len(cols))
		for i := range vals {
			vals[i] = "?"
		}
		return vals, nil
	}

	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE rowid = ?", strings.Join(quoted, ", "), quoteIdent(table))

	dest := make([]sql.NullString, len(cols))
	scanArgs := make([]any, len(cols))
	for i := range dest {
		scanArgs[i] = &dest[i]
	}
	if err := db.QueryRow(query, rowID.Int64).Scan(scanArgs...); err != nil {
		return nil, fmt.Errorf("sqlitedb: reading violating row from %s: %w", table, err)
	}

	vals := make([]string, len(cols))
	for i, d := range dest {
		if d.Valid {
			vals[i] = d.String
		} else {
			vals[i] = "NULL"
		}
	}
	return vals, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteText(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
