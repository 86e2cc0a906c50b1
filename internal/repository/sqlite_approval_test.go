package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/malla/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalRepo_ApproveAndList(t *testing.T) {
	repo := NewSQLiteApprovalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Approve(ctx, "MAT101"))
	require.NoError(t, repo.Approve(ctx, "FIS101"))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"MAT101", "FIS101"}, ids)

	ok, err := repo.IsApproved(ctx, "MAT101")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApprovalRepo_ApproveIsIdempotent(t *testing.T) {
	repo := NewSQLiteApprovalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Approve(ctx, "MAT101"))
	require.NoError(t, repo.Approve(ctx, "MAT101"))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MAT101"}, ids)
}

func TestApprovalRepo_Unapprove(t *testing.T) {
	repo := NewSQLiteApprovalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Approve(ctx, "MAT101"))
	require.NoError(t, repo.Unapprove(ctx, "MAT101"))
	// Unapproving something never approved is not an error.
	require.NoError(t, repo.Unapprove(ctx, "QUI101"))

	ok, err := repo.IsApproved(ctx, "MAT101")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApprovalRepo_Clear(t *testing.T) {
	repo := NewSQLiteApprovalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Approve(ctx, "MAT101"))
	require.NoError(t, repo.Approve(ctx, "FIS101"))
	require.NoError(t, repo.Clear(ctx))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
