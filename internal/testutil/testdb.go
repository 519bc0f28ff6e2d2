package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/wellow/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// InsertSnapshot adds a bare snapshot header row so child rows can
// reference it.
func InsertSnapshot(t *testing.T, database *sql.DB, id string) {
	t.Helper()
	_, err := database.Exec(
		`INSERT INTO snapshots (id, started_at, exported_at) VALUES (?, '2025-06-15T09:00:00Z', '2025-06-15T09:05:00Z')`, id)
	if err != nil {
		t.Fatalf("inserting snapshot %s: %v", id, err)
	}
}
