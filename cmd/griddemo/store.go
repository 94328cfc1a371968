package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tekugo/gridkit/table"
)

// openStore opens (creating if absent) a SQLite-backed cell store at
// path, grounded on the teacher's cmd/dbu database utility (same
// sql.Open("sqlite3", ...) pattern, same blank driver import).
func openStore(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cells (
		col  INTEGER NOT NULL,
		row  INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (col, row)
	)`); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// loadTable populates t's non-empty cells from db, silently dropping any
// stored coordinate that no longer fits t's current dimensions.
func loadTable(db *sql.DB, t *table.Table) error {
	rows, err := db.Query(`SELECT col, row, text FROM cells`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var col, row int
		var text string
		if err := rows.Scan(&col, &row, &text); err != nil {
			return err
		}
		if col < 0 || col >= t.ColCount() || row < 0 || row >= t.RowCount() {
			continue
		}
		if err := t.SetCell(col, row, table.Patch{Mask: table.PatchText, Text: table.Owned(text)}); err != nil {
			return err
		}
	}
	return rows.Err()
}

// saveTable replaces db's contents with every non-empty cell of t. Runs
// inside a transaction so a crash mid-save leaves the prior snapshot
// intact rather than a half-written one.
func saveTable(db *sql.DB, t *table.Table) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM cells`); err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO cells (col, row, text) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for row := 0; row < t.RowCount(); row++ {
		for col := 0; col < t.ColCount(); col++ {
			cell, err := t.GetCell(col, row, table.PatchText)
			if err != nil {
				continue
			}
			text := cell.Text.String()
			if text == "" {
				continue
			}
			if _, err := stmt.Exec(col, row, text); err != nil {
				tx.Rollback()
				return err
			}
		}
	}
	return tx.Commit()
}
