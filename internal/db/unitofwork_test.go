package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSlots(t *testing.T, uow *SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.db.QueryRow(`SELECT COUNT(*) FROM storage_slots`).Scan(&n))
	return n
}

func insertSlot(ctx context.Context, tx DBTX, key string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO storage_slots (key, value, updated_at) VALUES (?, '[]', '2024-01-01T00:00:00Z')`, key)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := NewSQLiteUnitOfWork(openTestDB(t))
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := insertSlot(ctx, tx, "a"); err != nil {
			return err
		}
		return insertSlot(ctx, tx, "b")
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countSlots(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := NewSQLiteUnitOfWork(openTestDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertSlot(ctx, tx, "a"))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countSlots(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := NewSQLiteUnitOfWork(openTestDB(t))
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertSlot(ctx, tx, "a"))
			panic("boom")
		})
	})
	assert.Equal(t, 0, countSlots(t, uow))
}
