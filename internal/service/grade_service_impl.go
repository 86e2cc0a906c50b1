package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/db"
	"github.com/alexanderramin/malla/internal/grades"
	"github.com/alexanderramin/malla/internal/repository"
	"github.com/google/uuid"
)

type gradeService struct {
	graph    *curriculum.Graph
	grades   repository.GradeRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGradeService(graph *curriculum.Graph, gradeRepo repository.GradeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) GradeService {
	return &gradeService{
		graph:    graph,
		grades:   gradeRepo,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *gradeService) Evaluations(ctx context.Context, courseID string) ([]grades.Evaluation, error) {
	if _, err := s.graph.Catalog().Lookup(courseID); err != nil {
		return nil, err
	}
	var evals []grades.Evaluation
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGrades := repository.NewSQLiteGradeRepo(tx)
		if err := ensureInitialized(ctx, txGrades, courseID); err != nil {
			return err
		}
		var err error
		evals, err = txGrades.ListEvaluations(ctx, courseID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading evaluations for %s: %w", courseID, err)
	}
	return evals, nil
}

func ensureInitialized(ctx context.Context, repo repository.GradeRepo, courseID string) error {
	ok, err := repo.IsInitialized(ctx, courseID)
	if err != nil || ok {
		return err
	}
	evals := grades.DefaultEvaluations()
	for i := range evals {
		evals[i].ID = uuid.New().String()
	}
	return repo.Initialize(ctx, courseID, evals)
}

func (s *gradeService) CourseGrades(ctx context.Context, courseID string) (*app.CourseGrades, error) {
	evals, err := s.Evaluations(ctx, courseID)
	if err != nil {
		return nil, err
	}
	course, _ := s.graph.Course(courseID)
	return buildCourseGrades(courseID, course.Name, evals), nil
}

func buildCourseGrades(courseID, name string, evals []grades.Evaluation) *app.CourseGrades {
	cg := &app.CourseGrades{
		CourseID:    courseID,
		CourseName:  name,
		Evaluations: evals,
		TotalWeight: grades.TotalWeight(evals),
	}
	if cg.Evaluations == nil {
		cg.Evaluations = []grades.Evaluation{}
	}
	if avg, ok := grades.WeightedAverage(evals); ok {
		cg.Average = &avg
	}
	return cg
}

// SemesterGrades reads without initializing, so courses never opened in the
// simulator simply have no average.
func (s *gradeService) SemesterGrades(ctx context.Context, semester int) (*app.SemesterGrades, error) {
	courses := s.graph.Catalog().BySemester(semester)
	out := &app.SemesterGrades{Semester: semester, Courses: []app.CourseGrades{}}

	var averages []float64
	for _, c := range courses {
		evals, err := s.grades.ListEvaluations(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("loading evaluations for %s: %w", c.ID, err)
		}
		cg := buildCourseGrades(c.ID, c.Name, evals)
		out.Courses = append(out.Courses, *cg)
		if cg.Average != nil {
			averages = append(averages, *cg.Average)
		}
	}
	if avg, ok := grades.SemesterAverage(averages); ok {
		out.Average = &avg
	}
	return out, nil
}

// updateEvaluation loads one evaluation, applies mutate and writes it back in
// a single transaction.
func (s *gradeService) updateEvaluation(ctx context.Context, courseID, evalID string, mutate func(*grades.Evaluation)) error {
	if _, err := s.graph.Catalog().Lookup(courseID); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGrades := repository.NewSQLiteGradeRepo(tx)
		if err := ensureInitialized(ctx, txGrades, courseID); err != nil {
			return err
		}
		e, err := txGrades.GetEvaluation(ctx, courseID, evalID)
		if err != nil {
			return err
		}
		mutate(e)
		return txGrades.UpdateEvaluation(ctx, courseID, e)
	})
}

func (s *gradeService) SetGrade(ctx context.Context, courseID, evalID string, grade *float64) (err error) {
	defer observe(ctx, s.observer, "set-grade", map[string]any{"course": courseID, "evaluation": evalID})(&err)

	var value *float64
	if grade != nil {
		if !isFinite(*grade) {
			return fmt.Errorf("%w: grade must be a number", ErrInvalidInput)
		}
		g := grades.ClampGrade(*grade)
		value = &g
	}
	return s.updateEvaluation(ctx, courseID, evalID, func(e *grades.Evaluation) {
		e.Grade = value
	})
}

func (s *gradeService) SetWeight(ctx context.Context, courseID, evalID string, weight float64) (err error) {
	defer observe(ctx, s.observer, "set-weight", map[string]any{"course": courseID, "evaluation": evalID})(&err)

	if !isFinite(weight) {
		return fmt.Errorf("%w: weight must be a number", ErrInvalidInput)
	}
	w := grades.ClampWeight(weight)
	return s.updateEvaluation(ctx, courseID, evalID, func(e *grades.Evaluation) {
		e.Weight = w
	})
}

func (s *gradeService) Rename(ctx context.Context, courseID, evalID, name string) (err error) {
	defer observe(ctx, s.observer, "rename-evaluation", map[string]any{"course": courseID, "evaluation": evalID})(&err)

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: evaluation name is required", ErrInvalidInput)
	}
	return s.updateEvaluation(ctx, courseID, evalID, func(e *grades.Evaluation) {
		e.Name = name
	})
}

func (s *gradeService) AddEvaluation(ctx context.Context, courseID string) (added *grades.Evaluation, err error) {
	defer observe(ctx, s.observer, "add-evaluation", map[string]any{"course": courseID})(&err)

	if _, err := s.graph.Catalog().Lookup(courseID); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGrades := repository.NewSQLiteGradeRepo(tx)
		if err := ensureInitialized(ctx, txGrades, courseID); err != nil {
			return err
		}
		evals, err := txGrades.ListEvaluations(ctx, courseID)
		if err != nil {
			return err
		}
		e := &grades.Evaluation{
			ID:   uuid.New().String(),
			Name: grades.NextEvaluationName(len(evals)),
		}
		if err := txGrades.AddEvaluation(ctx, courseID, e); err != nil {
			return err
		}
		added = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *gradeService) RemoveEvaluation(ctx context.Context, courseID, evalID string) (err error) {
	defer observe(ctx, s.observer, "remove-evaluation", map[string]any{"course": courseID, "evaluation": evalID})(&err)

	if _, err := s.graph.Catalog().Lookup(courseID); err != nil {
		return err
	}
	return s.grades.DeleteEvaluation(ctx, courseID, evalID)
}

func (s *gradeService) ResetCourse(ctx context.Context, courseID string) (err error) {
	defer observe(ctx, s.observer, "reset-grades", map[string]any{"course": courseID})(&err)

	if _, err := s.graph.Catalog().Lookup(courseID); err != nil {
		return err
	}
	return s.grades.ResetCourse(ctx, courseID)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
