package repository

import (
	"context"

	"github.com/alexanderramin/malla/internal/grades"
)

// ApprovalRepo persists the set of approved course ids.
type ApprovalRepo interface {
	// Approve and Unapprove are idempotent.
	Approve(ctx context.Context, courseID string) error
	Unapprove(ctx context.Context, courseID string) error
	IsApproved(ctx context.Context, courseID string) (bool, error)
	List(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// CustomNameRepo persists user-chosen names for elective placeholders.
type CustomNameRepo interface {
	Set(ctx context.Context, courseID, name string) error
	Delete(ctx context.Context, courseID string) error
	Get(ctx context.Context, courseID string) (string, error)
	List(ctx context.Context) (map[string]string, error)
}

// GradeRepo persists per-course evaluation lists for the grade simulator.
type GradeRepo interface {
	IsInitialized(ctx context.Context, courseID string) (bool, error)
	// Initialize marks the course as initialized and stores evals in order.
	Initialize(ctx context.Context, courseID string, evals []grades.Evaluation) error
	ListEvaluations(ctx context.Context, courseID string) ([]grades.Evaluation, error)
	GetEvaluation(ctx context.Context, courseID, evalID string) (*grades.Evaluation, error)
	// AddEvaluation appends e after the course's last evaluation.
	AddEvaluation(ctx context.Context, courseID string, e *grades.Evaluation) error
	UpdateEvaluation(ctx context.Context, courseID string, e *grades.Evaluation) error
	DeleteEvaluation(ctx context.Context, courseID, evalID string) error
	ListInitializedCourses(ctx context.Context) ([]string, error)
	ResetCourse(ctx context.Context, courseID string) error
}

// PreferenceRepo is a small key/value store for user settings.
type PreferenceRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
