package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/kbtrack/internal/db"
)

// FailOnNthExec wraps a DBTX and returns Err from the Nth ExecContext call
// (counted from 1). Reads pass through untouched. FailOn <= 0 never fails.
type FailOnNthExec struct {
	db.DBTX
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FailOnNthExecUoW is a UnitOfWork whose transaction fails on the Nth write,
// for checking that multi-slot writes roll back together.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &FailOnNthExec{DBTX: tx, FailOn: u.FailOn, Err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}
