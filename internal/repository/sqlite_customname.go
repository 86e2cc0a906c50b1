package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/malla/internal/db"
)

// SQLiteCustomNameRepo implements CustomNameRepo using a SQLite database.
type SQLiteCustomNameRepo struct {
	db db.DBTX
}

// NewSQLiteCustomNameRepo creates a new SQLiteCustomNameRepo.
func NewSQLiteCustomNameRepo(conn db.DBTX) *SQLiteCustomNameRepo {
	return &SQLiteCustomNameRepo{db: conn}
}

func (r *SQLiteCustomNameRepo) Set(ctx context.Context, courseID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_names (course_id, name, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(course_id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at`,
		courseID, name, nowUTC())
	if err != nil {
		return fmt.Errorf("setting custom name for %s: %w", courseID, err)
	}
	return nil
}

func (r *SQLiteCustomNameRepo) Delete(ctx context.Context, courseID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM custom_names WHERE course_id = ?`, courseID); err != nil {
		return fmt.Errorf("deleting custom name for %s: %w", courseID, err)
	}
	return nil
}

func (r *SQLiteCustomNameRepo) Get(ctx context.Context, courseID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM custom_names WHERE course_id = ?`, courseID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("custom name for %s: %w", courseID, ErrNotFound)
		}
		return "", fmt.Errorf("scanning custom name: %w", err)
	}
	return name, nil
}

func (r *SQLiteCustomNameRepo) List(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT course_id, name FROM custom_names`)
	if err != nil {
		return nil, fmt.Errorf("listing custom names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning custom name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
