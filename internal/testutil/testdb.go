package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/malla/internal/db"
)

// NewTestDB returns a migrated in-memory progress database that lives for
// the duration of t.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
