package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/kbtrack/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

// NewFileTestDB opens a database file under dir, so a test can close it and
// open the same file again to check what actually reached disk.
func NewFileTestDB(t *testing.T, dir string) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(dir, "kbtrack.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("failed to open test database %s: %v", path, err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
