package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/malla/internal/db"
)

// FailOnNthExecUoW runs work in a real transaction but makes the FailOn-th
// write (1-based) return Err, so tests can check that earlier writes in the
// same operation are rolled back. Reads are never intercepted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyTx{DBTX: tx, remaining: u.FailOn, err: u.Err})
	})
}

// faultyTx counts down writes and trips once remaining reaches zero.
// A transaction is used by one goroutine, so no locking is needed.
type faultyTx struct {
	db.DBTX
	remaining int32
	err       error
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.remaining--
	if f.remaining == 0 {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
