package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/db"
	"github.com/alexanderramin/malla/internal/repository"
	"github.com/alexanderramin/malla/internal/testutil"
)

type testEnv struct {
	db        *sql.DB
	graph     *curriculum.Graph
	approvals *repository.SQLiteApprovalRepo
	names     *repository.SQLiteCustomNameRepo
	prefs     *repository.SQLitePreferenceRepo
	grades    *repository.SQLiteGradeRepo
	uow       db.UnitOfWork
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		graph:     testutil.NewSampleGraph(t),
		approvals: repository.NewSQLiteApprovalRepo(database),
		names:     repository.NewSQLiteCustomNameRepo(database),
		prefs:     repository.NewSQLitePreferenceRepo(database),
		grades:    repository.NewSQLiteGradeRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}

func (e *testEnv) progress() ProgressService {
	return NewProgressService(e.graph, e.approvals, e.names, e.prefs, e.uow)
}

func (e *testEnv) gradeService() GradeService {
	return NewGradeService(e.graph, e.grades, e.uow)
}
