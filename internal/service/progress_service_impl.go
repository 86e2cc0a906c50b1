package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/db"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/repository"
)

type progressService struct {
	graph     *curriculum.Graph
	approvals repository.ApprovalRepo
	names     repository.CustomNameRepo
	prefs     repository.PreferenceRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewProgressService(
	graph *curriculum.Graph,
	approvals repository.ApprovalRepo,
	names repository.CustomNameRepo,
	prefs repository.PreferenceRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		graph:     graph,
		approvals: approvals,
		names:     names,
		prefs:     prefs,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) requireCourses(ids []string) error {
	for _, id := range ids {
		if _, err := s.graph.Catalog().Lookup(id); err != nil {
			return err
		}
	}
	return nil
}

// Approve records every id in one transaction; an unknown id aborts all of them.
func (s *progressService) Approve(ctx context.Context, ids ...string) (err error) {
	defer observe(ctx, s.observer, "approve", map[string]any{"courses": strings.Join(ids, ",")})(&err)

	if err := s.requireCourses(ids); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txApprovals := repository.NewSQLiteApprovalRepo(tx)
		for _, id := range ids {
			if err := txApprovals.Approve(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// Unapprove accepts ids that are no longer in the catalog so stale rows can
// be removed.
func (s *progressService) Unapprove(ctx context.Context, ids ...string) (err error) {
	defer observe(ctx, s.observer, "unapprove", map[string]any{"courses": strings.Join(ids, ",")})(&err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txApprovals := repository.NewSQLiteApprovalRepo(tx)
		for _, id := range ids {
			if err := txApprovals.Unapprove(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *progressService) Toggle(ctx context.Context, id string) (approved bool, err error) {
	defer observe(ctx, s.observer, "toggle", map[string]any{"course": id})(&err)

	if err := s.requireCourses([]string{id}); err != nil {
		return false, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txApprovals := repository.NewSQLiteApprovalRepo(tx)
		was, err := txApprovals.IsApproved(ctx, id)
		if err != nil {
			return err
		}
		if was {
			approved = false
			return txApprovals.Unapprove(ctx, id)
		}
		approved = true
		return txApprovals.Approve(ctx, id)
	})
	return approved, err
}

func (s *progressService) Approved(ctx context.Context) (curriculum.ApprovedSet, error) {
	ids, err := s.approvals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading approved courses: %w", err)
	}
	return curriculum.NewApprovedSet(ids...), nil
}

func (s *progressService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset", nil)(&err)
	return s.approvals.Clear(ctx)
}

func (s *progressService) Progress(ctx context.Context) (*app.ProgressView, error) {
	approved, err := s.Approved(ctx)
	if err != nil {
		return nil, err
	}
	view := BuildProgressView(s.graph, approved)
	return &view, nil
}

// BuildProgressView aggregates completion for an arbitrary approved set.
func BuildProgressView(g *curriculum.Graph, approved curriculum.ApprovedSet) app.ProgressView {
	c := g.Catalog()
	return app.ProgressView{
		CompletionPercentage: curriculum.CompletionPercentage(c, approved),
		Approved:             c.Len() - curriculum.Remaining(c, approved),
		Remaining:            curriculum.Remaining(c, approved),
		Total:                c.Len(),
		Semesters:            curriculum.SemesterStats(g, approved),
	}
}

// BuildEligibilityView lists locked and available ids for an approved set.
func BuildEligibilityView(g *curriculum.Graph, approved curriculum.ApprovedSet) app.EligibilityView {
	view := app.EligibilityView{
		Locked:    curriculum.LockedIDs(g, approved),
		Available: []string{},
	}
	if view.Locked == nil {
		view.Locked = []string{}
	}
	for _, c := range curriculum.Available(g, approved) {
		view.Available = append(view.Available, c.ID)
	}
	return view
}

func (s *progressService) Board(ctx context.Context) (*app.BoardView, error) {
	approved, err := s.Approved(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.names.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading custom names: %w", err)
	}
	mencionID, err := selectedMencionID(ctx, s.prefs)
	if err != nil {
		return nil, err
	}

	progress := BuildProgressView(s.graph, approved)
	view := &app.BoardView{Progress: progress}
	if m, ok := domain.FindMencion(mencionID); ok {
		view.Mencion = &m
	}

	bySemester := make(map[int][]app.BoardCourse)
	for _, st := range curriculum.Evaluate(s.graph, approved) {
		c := st.Course
		bySemester[c.Semester] = append(bySemester[c.Semester], app.BoardCourse{
			ID:          c.ID,
			Name:        c.Name,
			DisplayName: domain.DisplayName(c, names, mencionID),
			Semester:    c.Semester,
			Category:    c.Category.OrDefault(),
			Approved:    st.Approved,
			Locked:      st.Locked,
			Missing:     st.Missing,
			Dependents:  len(s.graph.DependentIDs(c.ID)),
		})
	}
	for _, stat := range progress.Semesters {
		courses := bySemester[stat.Semester]
		if len(courses) == 0 {
			continue
		}
		view.Semesters = append(view.Semesters, app.BoardSemester{
			Semester: stat.Semester,
			Courses:  courses,
			Stat:     stat,
		})
	}
	return view, nil
}

func (s *progressService) SetCustomName(ctx context.Context, id, name string) (err error) {
	defer observe(ctx, s.observer, "rename-course", map[string]any{"course": id})(&err)

	if _, err := s.graph.Catalog().Lookup(id); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return s.names.Delete(ctx, id)
	}
	return s.names.Set(ctx, id, name)
}

func (s *progressService) CustomNames(ctx context.Context) (map[string]string, error) {
	return s.names.List(ctx)
}
