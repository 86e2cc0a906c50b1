package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS approved_courses (
		course_id   TEXT PRIMARY KEY,
		approved_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS custom_names (
		course_id  TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(name != ''),
		updated_at TEXT NOT NULL
	)`,

	// A row here means the course's evaluation list has been initialized,
	// even if every evaluation was later removed.
	`CREATE TABLE IF NOT EXISTS grade_courses (
		course_id  TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS evaluations (
		id         TEXT PRIMARY KEY,
		course_id  TEXT NOT NULL REFERENCES grade_courses(course_id) ON DELETE CASCADE,
		position   INTEGER NOT NULL DEFAULT 0,
		name       TEXT NOT NULL,
		grade      REAL CHECK(grade IS NULL OR (grade >= 1.0 AND grade <= 7.0)),
		weight     REAL NOT NULL DEFAULT 0 CHECK(weight >= 0 AND weight <= 100),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_evaluations_course ON evaluations(course_id, position)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
