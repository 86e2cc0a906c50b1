package service

import (
	"context"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/grades"
)

type CatalogService interface {
	// List returns courses in catalog order, optionally narrowed to one
	// semester (0 means all) and a case-insensitive name query.
	List(semester int, query string) []domain.Course
	Detail(id string) (*app.CourseDetail, error)
	Graph() *curriculum.Graph
}

type ProgressService interface {
	Approve(ctx context.Context, ids ...string) error
	Unapprove(ctx context.Context, ids ...string) error
	// Toggle flips the approval of id and returns the new state.
	Toggle(ctx context.Context, id string) (bool, error)
	Approved(ctx context.Context) (curriculum.ApprovedSet, error)
	Reset(ctx context.Context) error
	Progress(ctx context.Context) (*app.ProgressView, error)
	Board(ctx context.Context) (*app.BoardView, error)
	// SetCustomName renames an elective; an empty name clears it.
	SetCustomName(ctx context.Context, id, name string) error
	CustomNames(ctx context.Context) (map[string]string, error)
}

type MencionService interface {
	List() []domain.Mencion
	Select(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	// Selected returns nil when no track has been chosen.
	Selected(ctx context.Context) (*domain.Mencion, error)
}

type GradeService interface {
	// Evaluations returns the course's evaluations, creating the default
	// layout the first time a course is accessed.
	Evaluations(ctx context.Context, courseID string) ([]grades.Evaluation, error)
	CourseGrades(ctx context.Context, courseID string) (*app.CourseGrades, error)
	SemesterGrades(ctx context.Context, semester int) (*app.SemesterGrades, error)
	SetGrade(ctx context.Context, courseID, evalID string, grade *float64) error
	SetWeight(ctx context.Context, courseID, evalID string, weight float64) error
	Rename(ctx context.Context, courseID, evalID, name string) error
	AddEvaluation(ctx context.Context, courseID string) (*grades.Evaluation, error)
	RemoveEvaluation(ctx context.Context, courseID, evalID string) error
	ResetCourse(ctx context.Context, courseID string) error
}

type AssistantService interface {
	Greeting() string
	CoursesWithPrerequisites() string
	Describe(id string) (string, error)
	FilterCourses(query string) []domain.Course
}
