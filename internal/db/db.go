package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// pragmas run on every connection open. WAL keeps a second terminal reading
// the log while the TUI writes.
var pragmas = []struct{ name, stmt string }{
	{"WAL mode", "PRAGMA journal_mode = WAL"},
	{"busy timeout", "PRAGMA busy_timeout = 5000"},
}

// OpenDB opens the SQLite file backing the storage slots and applies
// migrations. ":memory:" opens a private in-memory database, limited to a
// single connection so every query sees the same schema.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting %s: %w", p.name, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
