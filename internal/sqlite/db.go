package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/fettersdev/fetters/pkg/types"
)

// DB wraps the SQLite handle and hands out per-table stores. A command
// invocation opens one DB, runs operations sequentially, and closes it.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file at path, enables
// foreign keys, and runs migrations. The parent directory is created if it
// does not exist.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrStoreConnection, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreConnection, err)
	}

	// One writer at a time; the CLI is a short-lived single-threaded
	// process, so a single connection avoids SQLITE_BUSY entirely.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", types.ErrStoreConnection, err)
	}

	d := &DB{db: db}
	if err := d.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Migrate applies the fixed, ordered schema statements inside one
// transaction. Idempotent; failure surfaces as ErrMigration.
func (d *DB) Migrate() error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrMigration, err)
	}
	defer tx.Rollback()

	for _, stmt := range migrations {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%w: %v", types.ErrMigration, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMigration, err)
	}
	return nil
}

// Close releases the underlying SQLite handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Store accessors. Each store owns write access to one table.

func (d *DB) Sprints() *SprintStore { return &SprintStore{db: d.db} }
func (d *DB) Statuses() *StatusStore { return &StatusStore{db: d.db} }
func (d *DB) Titles() *TitleStore   { return &TitleStore{db: d.db} }
func (d *DB) Jobs() *JobStore       { return &JobStore{db: d.db} }
func (d *DB) Stages() *StageStore   { return &StageStore{db: d.db} }

// execer is the subset of *sql.DB and *sql.Tx the counter helpers need,
// so sprint counter updates can run inside a job transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}
