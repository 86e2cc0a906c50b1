package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_ApproveAndProgress(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	ctx := context.Background()

	require.NoError(t, svc.Approve(ctx, "MAT101", "FIS101"))

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Total)
	assert.Equal(t, 2, p.Approved)
	assert.Equal(t, 5, p.Remaining)
	assert.Equal(t, 29, p.CompletionPercentage) // round(200/7)
	require.Len(t, p.Semesters, domain.MaxSemester)
	assert.Equal(t, 100, p.Semesters[0].Percentage)
}

func TestProgressService_ApproveUnknownIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	ctx := context.Background()

	err := svc.Approve(ctx, "MAT101", "NOPE")
	require.ErrorIs(t, err, catalog.ErrCourseNotFound)

	approved, err := svc.Approved(ctx)
	require.NoError(t, err)
	assert.Zero(t, approved.Len())
}

func TestProgressService_ApproveRollsBackOnWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: errors.New("disk full")}
	svc := NewProgressService(env.graph, env.approvals, env.names, env.prefs, uow)
	ctx := context.Background()

	err := svc.Approve(ctx, "MAT101", "FIS101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	ids, err := env.approvals.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "first approval must be rolled back")
}

func TestProgressService_Toggle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "MAT101")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = svc.Toggle(ctx, "MAT101")
	require.NoError(t, err)
	assert.False(t, on)

	_, err = svc.Toggle(ctx, "NOPE")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)
}

func TestProgressService_UnapproveAcceptsStaleIDs(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	ctx := context.Background()

	// Row left over from an older catalog.
	require.NoError(t, env.approvals.Approve(ctx, "OLD999"))
	require.NoError(t, svc.Unapprove(ctx, "OLD999"))

	ids, err := env.approvals.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProgressService_Reset(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	ctx := context.Background()

	require.NoError(t, svc.Approve(ctx, "MAT101", "MAT201"))
	require.NoError(t, svc.Reset(ctx))

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Zero(t, p.CompletionPercentage)
	assert.Equal(t, 7, p.Remaining)
}

func findBoardCourse(t *testing.T, svc ProgressService, id string) (name string, approved, locked bool) {
	t.Helper()
	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	for _, sem := range board.Semesters {
		for _, c := range sem.Courses {
			if c.ID == id {
				return c.DisplayName, c.Approved, c.Locked
			}
		}
	}
	t.Fatalf("course %s not on board", id)
	return "", false, false
}

func TestProgressService_BoardLockState(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	ctx := context.Background()

	_, _, locked := findBoardCourse(t, svc, "MAT201")
	assert.True(t, locked)

	require.NoError(t, svc.Approve(ctx, "MAT101"))
	_, _, locked = findBoardCourse(t, svc, "MAT201")
	assert.False(t, locked)
	_, _, locked = findBoardCourse(t, svc, "FIS201")
	assert.True(t, locked, "FIS101 still missing")

	_, approved, _ := findBoardCourse(t, svc, "MAT101")
	assert.True(t, approved)
}

func TestProgressService_BoardSemesters(t *testing.T) {
	env := newTestEnv(t)
	board, err := env.progress().Board(context.Background())
	require.NoError(t, err)

	// Empty semesters are omitted.
	require.Len(t, board.Semesters, 4)
	assert.Equal(t, 1, board.Semesters[0].Semester)
	assert.Len(t, board.Semesters[0].Courses, 2)
	assert.Equal(t, 2, board.Semesters[0].Stat.Available)
	assert.Nil(t, board.Mencion)
}

func TestProgressService_DisplayNamePrecedence(t *testing.T) {
	env := newTestEnv(t)
	svc := env.progress()
	mencion := NewMencionService(env.prefs)
	ctx := context.Background()

	name, _, _ := findBoardCourse(t, svc, domain.MencionCourse1)
	assert.Equal(t, "Curso de Mención I", name)

	require.NoError(t, svc.SetCustomName(ctx, domain.MencionCourse1, "  Taller de Geometría "))
	name, _, _ = findBoardCourse(t, svc, domain.MencionCourse1)
	assert.Equal(t, "Taller de Geometría", name)

	// A selected mención wins over the custom name.
	require.NoError(t, mencion.Select(ctx, "matematica"))
	name, _, _ = findBoardCourse(t, svc, domain.MencionCourse1)
	assert.Equal(t, "Probabilidad y Estadística", name)

	board, err := svc.Board(ctx)
	require.NoError(t, err)
	require.NotNil(t, board.Mencion)
	assert.Equal(t, "matematica", board.Mencion.ID)

	// Clearing the mención falls back to the custom name; clearing that
	// falls back to the catalog name.
	require.NoError(t, mencion.Clear(ctx))
	name, _, _ = findBoardCourse(t, svc, domain.MencionCourse1)
	assert.Equal(t, "Taller de Geometría", name)

	require.NoError(t, svc.SetCustomName(ctx, domain.MencionCourse1, ""))
	name, _, _ = findBoardCourse(t, svc, domain.MencionCourse1)
	assert.Equal(t, "Curso de Mención I", name)
}

func TestProgressService_SetCustomNameUnknownCourse(t *testing.T) {
	env := newTestEnv(t)
	err := env.progress().SetCustomName(context.Background(), "NOPE", "x")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)
}

func TestBuildEligibilityView(t *testing.T) {
	g := testutil.NewSampleGraph(t)

	view := BuildEligibilityView(g, nil)
	assert.Equal(t, []string{"MAT201", "FIS201", "MAT301", domain.MencionDidactic}, view.Locked)
	assert.Equal(t, []string{"MAT101", "FIS101", domain.MencionCourse1}, view.Available)
}
