// Package pipeline drives the whole import end to end: decode every
// configured game data file, lower the schema algebra to DDL and the
// decoded values to row data, load both into SQLite alongside the
// scanned material inventory, and copy the winning material files to
// the site root.
//
// Grounded on original_source/rpgxp/generate_db_data.py's run()/
// generate_script() top-level driver: same overall shape (derive the
// schema once, decode+lower every schema.Files entry into one script,
// execute it inside the target database) adapted from that single
// rxdata-only script into one that also drives the config, sqlitedb,
// and material packages this rework adds.
package pipeline

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andrewfoote/rpgxp-go/config"
	"github.com/andrewfoote/rpgxp-go/ddl"
	"github.com/andrewfoote/rpgxp-go/decode"
	"github.com/andrewfoote/rpgxp-go/material"
	"github.com/andrewfoote/rpgxp-go/rows"
	"github.com/andrewfoote/rpgxp-go/schema"
	"github.com/andrewfoote/rpgxp-go/sqlitedb"
)

const (
	schemaFileName = "schema.sql"
	dataFileName   = "data.sql"
)

// Run executes the full import described by cfg, writing progress
// lines to progress as it goes.
func Run(cfg *config.Config, progress io.Writer) error {
	dataRoot := filepath.Join(cfg.GameRoot, "Data")

	fmt.Fprintln(progress, "deriving schema")
	ddlSchema, err := ddl.Lower(schema.Files)
	if err != nil {
		return fmt.Errorf("pipeline: deriving schema: %w", err)
	}

	fmt.Fprintln(progress, "decoding game data files")
	fileValues, err := decodeFiles(dataRoot, progress)
	if err != nil {
		return err
	}

	fmt.Fprintln(progress, "lowering decoded values to rows")
	rowScript, err := rows.Lower(fileValues)
	if err != nil {
		return fmt.Errorf("pipeline: lowering rows: %w", err)
	}

	fmt.Fprintln(progress, "scanning material files")
	inventory := material.NewInventory()
	if err := inventory.Scan(cfg.RTPRoot, "rtp"); err != nil {
		return fmt.Errorf("pipeline: scanning RTP materials: %w", err)
	}
	if err := inventory.Scan(cfg.GameRoot, "game"); err != nil {
		return fmt.Errorf("pipeline: scanning game materials: %w", err)
	}

	schemaSQL := ddlSchema.String() + "\n\n" + material.Schema() + "\n"
	dataSQL := rowScript.String() + "\n\n" + inventory.String() + "\n"

	if err := writeGeneratedScripts(cfg.DBRoot, schemaSQL, dataSQL); err != nil {
		return err
	}

	fmt.Fprintln(progress, "loading database")
	db, err := loadDatabase(cfg.DBRoot, schemaSQL, dataSQL)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(progress, "checking foreign keys")
	report, err := sqlitedb.ForeignKeyReport(db)
	if err != nil {
		return fmt.Errorf("pipeline: checking foreign keys: %w", err)
	}
	fmt.Fprintln(progress, report)

	fmt.Fprintln(progress, "copying material files to site root")
	if err := inventory.CopyBestFiles(cfg.GameRoot, cfg.RTPRoot, cfg.SiteRoot); err != nil {
		return fmt.Errorf("pipeline: copying material files: %w", err)
	}

	return nil
}

func decodeFiles(dataRoot string, progress io.Writer) ([]rows.FileValue, error) {
	fvs := make([]rows.FileValue, 0, len(schema.Files))
	for _, fs := range schema.Files {
		path := filePath(fs, dataRoot)
		fmt.Fprintf(progress, "  decoding %s\n", path)

		val, err := decode.DecodeFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("pipeline: decoding %s: %w", path, err)
		}
		fvs = append(fvs, rows.FileValue{File: fs, Value: val})
	}
	return fvs, nil
}

func filePath(fs schema.FileSchema, dataRoot string) string {
	if s, ok := fs.(schema.SingleFileSchema); ok {
		return filepath.Join(dataRoot, s.Path)
	}
	return dataRoot
}

func writeGeneratedScripts(dbRoot, schemaSQL, dataSQL string) error {
	if err := os.MkdirAll(dbRoot, 0o755); err != nil {
		return fmt.Errorf("pipeline: creating %s: %w", dbRoot, err)
	}
	if err := os.WriteFile(filepath.Join(dbRoot, schemaFileName), []byte(schemaSQL), 0o644); err != nil {
		return fmt.Errorf("pipeline: writing %s: %w", schemaFileName, err)
	}
	if err := os.WriteFile(filepath.Join(dbRoot, dataFileName), []byte(dataSQL), 0o644); err != nil {
		return fmt.Errorf("pipeline: writing %s: %w", dataFileName, err)
	}
	return nil
}

func loadDatabase(dbRoot, schemaSQL, dataSQL string) (*sql.DB, error) {
	db, err := sqlitedb.Open(dbRoot)
	if err != nil {
		return nil, fmt.Errorf("pipeline: opening database: %w", err)
	}
	if err := sqlitedb.RunScript(db, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("pipeline: loading schema: %w", err)
	}
	if err := sqlitedb.RunScript(db, dataSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("pipeline: loading data: %w", err)
	}
	return db, nil
}
