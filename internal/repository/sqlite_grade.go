package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/malla/internal/db"
	"github.com/alexanderramin/malla/internal/grades"
)

// SQLiteGradeRepo implements GradeRepo using a SQLite database.
type SQLiteGradeRepo struct {
	db db.DBTX
}

// NewSQLiteGradeRepo creates a new SQLiteGradeRepo.
func NewSQLiteGradeRepo(conn db.DBTX) *SQLiteGradeRepo {
	return &SQLiteGradeRepo{db: conn}
}

func (r *SQLiteGradeRepo) IsInitialized(ctx context.Context, courseID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM grade_courses WHERE course_id = ?`, courseID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking grade course %s: %w", courseID, err)
	}
	return count > 0, nil
}

func (r *SQLiteGradeRepo) Initialize(ctx context.Context, courseID string, evals []grades.Evaluation) error {
	now := nowUTC()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO grade_courses (course_id, created_at) VALUES (?, ?)`, courseID, now); err != nil {
		return fmt.Errorf("initializing grade course %s: %w", courseID, err)
	}
	for i, e := range evals {
		if err := r.insert(ctx, courseID, i, &e, now); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteGradeRepo) ListEvaluations(ctx context.Context, courseID string) ([]grades.Evaluation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, grade, weight FROM evaluations
		WHERE course_id = ? ORDER BY position, created_at`, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations for %s: %w", courseID, err)
	}
	defer rows.Close()

	var evals []grades.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evals = append(evals, *e)
	}
	return evals, rows.Err()
}

func (r *SQLiteGradeRepo) GetEvaluation(ctx context.Context, courseID, evalID string) (*grades.Evaluation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, grade, weight FROM evaluations WHERE course_id = ? AND id = ?`,
		courseID, evalID)
	e, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("evaluation %s: %w", evalID, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteGradeRepo) AddEvaluation(ctx context.Context, courseID string, e *grades.Evaluation) error {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM evaluations WHERE course_id = ?`, courseID).Scan(&next)
	if err != nil {
		return fmt.Errorf("computing evaluation position: %w", err)
	}
	return r.insert(ctx, courseID, next, e, nowUTC())
}

func (r *SQLiteGradeRepo) UpdateEvaluation(ctx context.Context, courseID string, e *grades.Evaluation) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE evaluations SET name = ?, grade = ?, weight = ?, updated_at = ?
		WHERE course_id = ? AND id = ?`,
		e.Name, nullableFloatToValue(e.Grade), e.Weight, nowUTC(), courseID, e.ID)
	if err != nil {
		return fmt.Errorf("updating evaluation %s: %w", e.ID, err)
	}
	return requireAffected(res, "evaluation "+e.ID)
}

func (r *SQLiteGradeRepo) DeleteEvaluation(ctx context.Context, courseID, evalID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM evaluations WHERE course_id = ? AND id = ?`, courseID, evalID)
	if err != nil {
		return fmt.Errorf("deleting evaluation %s: %w", evalID, err)
	}
	return requireAffected(res, "evaluation "+evalID)
}

func (r *SQLiteGradeRepo) ListInitializedCourses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT course_id FROM grade_courses ORDER BY course_id`)
	if err != nil {
		return nil, fmt.Errorf("listing grade courses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning grade course: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ResetCourse forgets the course's evaluations; the next access re-initializes it.
func (r *SQLiteGradeRepo) ResetCourse(ctx context.Context, courseID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evaluations WHERE course_id = ?`, courseID); err != nil {
		return fmt.Errorf("resetting evaluations for %s: %w", courseID, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM grade_courses WHERE course_id = ?`, courseID); err != nil {
		return fmt.Errorf("resetting grades for %s: %w", courseID, err)
	}
	return nil
}

func (r *SQLiteGradeRepo) insert(ctx context.Context, courseID string, position int, e *grades.Evaluation, now string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluations (id, course_id, position, name, grade, weight, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, courseID, position, e.Name, nullableFloatToValue(e.Grade), e.Weight, now, now)
	if err != nil {
		return fmt.Errorf("inserting evaluation %s: %w", e.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(s scanner) (*grades.Evaluation, error) {
	var e grades.Evaluation
	var grade sql.NullFloat64
	if err := s.Scan(&e.ID, &e.Name, &grade, &e.Weight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning evaluation: %w", err)
	}
	e.Grade = parseNullableFloat(grade)
	return &e, nil
}
