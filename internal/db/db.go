package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath selects a private in-memory database.
const MemoryPath = ":memory:"

// connPragmas run on every new pooled connection of a file database.
var connPragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// startupPragmas run once after the pool is opened.
var startupPragmas = []struct {
	stmt string
	desc string
}{
	{"PRAGMA journal_mode = WAL", "journal mode"},
	{"PRAGMA foreign_keys = ON", "foreign keys"},
}

// OpenDB opens the progress database at path, creating its directory when
// needed, and brings the schema up to date. MemoryPath yields a throwaway
// database bound to a single connection.
func OpenDB(path string) (*sql.DB, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		q := url.Values{}
		for _, p := range connPragmas {
			q.Add("_pragma", p)
		}
		dsn = path + "?" + q.Encode()
	}

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if path == MemoryPath {
		database.SetMaxOpenConns(1)
	}

	for _, p := range startupPragmas {
		if _, err := database.Exec(p.stmt); err != nil {
			database.Close()
			return nil, fmt.Errorf("set %s: %w", p.desc, err)
		}
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return database, nil
}
