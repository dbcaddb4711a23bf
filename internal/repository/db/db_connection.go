package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryPath keeps the activity log for the lifetime of the process only.
const MemoryPath = ":memory:"

// InitDB opens/creates the SQLite activity log and ensures tables exist.
// An empty path falls back to MemoryPath.
func InitDB(path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// A single connection is required for :memory: (each connection would
	// otherwise see its own empty database) and is enough for a log.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range pragmasFor(path) {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

func pragmasFor(path string) []string {
	pragmas := []string{"PRAGMA busy_timeout = 5000;"}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL;")
	}
	return pragmas
}

const schemaFridgeEvents = `
CREATE TABLE IF NOT EXISTS fridge_events (
    id TEXT PRIMARY KEY,
    occurred_at TEXT NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexFridgeEventsTime = `
CREATE INDEX IF NOT EXISTS idx_fridge_events_occurred_at ON fridge_events (occurred_at);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaFridgeEvents,
		indexFridgeEventsTime,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
