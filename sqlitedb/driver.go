// Package sqlitedb opens the generated RPG Maker XP database and runs
// the generated schema/data scripts against it, plus the post-import
// foreign-key violation report (spec §7).
//
// Grounded on original_source/rpgxp/db.py in full (connect, run_script,
// foreign_key_report); the dual pure-Go/CGO driver selection is carried
// from FocuswithJustin-JuniperBible's core/sqlite package (same
// build-tag split, same DriverName/DriverType accessors), since the
// teacher (syssam-velox) only ever drives SQLite through ent's own
// dialect/sql layer and never exposes a raw *sql.DB of its own.
package sqlitedb

// DriverName returns the database/sql driver name this build registers.
func DriverName() string { return driverName }

// DriverType identifies the underlying implementation: "purego" for
// modernc.org/sqlite (the default) or "cgo" for mattn/go-sqlite3
// (behind -tags cgo_sqlite).
func DriverType() string { return driverType }

// IsCGO reports whether the CGO driver is compiled in.
func IsCGO() bool { return driverType == "cgo" }
