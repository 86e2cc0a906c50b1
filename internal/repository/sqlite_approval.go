package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/malla/internal/db"
)

// SQLiteApprovalRepo implements ApprovalRepo using a SQLite database.
type SQLiteApprovalRepo struct {
	db db.DBTX
}

// NewSQLiteApprovalRepo creates a new SQLiteApprovalRepo.
func NewSQLiteApprovalRepo(conn db.DBTX) *SQLiteApprovalRepo {
	return &SQLiteApprovalRepo{db: conn}
}

func (r *SQLiteApprovalRepo) Approve(ctx context.Context, courseID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO approved_courses (course_id, approved_at) VALUES (?, ?)`,
		courseID, nowUTC())
	if err != nil {
		return fmt.Errorf("approving course %s: %w", courseID, err)
	}
	return nil
}

func (r *SQLiteApprovalRepo) Unapprove(ctx context.Context, courseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM approved_courses WHERE course_id = ?`, courseID)
	if err != nil {
		return fmt.Errorf("unapproving course %s: %w", courseID, err)
	}
	return nil
}

func (r *SQLiteApprovalRepo) IsApproved(ctx context.Context, courseID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM approved_courses WHERE course_id = ?`, courseID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking approval of %s: %w", courseID, err)
	}
	return count > 0, nil
}

// List returns approved ids in the order they were approved.
func (r *SQLiteApprovalRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id FROM approved_courses ORDER BY approved_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing approved courses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning approved course: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteApprovalRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM approved_courses`); err != nil {
		return fmt.Errorf("clearing approved courses: %w", err)
	}
	return nil
}
