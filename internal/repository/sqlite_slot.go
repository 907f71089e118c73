package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/db"
)

// SQLiteSlotRepo implements SlotRepo on the storage_slots table.
type SQLiteSlotRepo struct {
	db db.DBTX
}

func NewSQLiteSlotRepo(conn db.DBTX) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: conn}
}

func (r *SQLiteSlotRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM storage_slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("slot %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading slot %q: %w", key, err)
	}
	return value, nil
}

// Put overwrites the slot with value, creating it if needed.
func (r *SQLiteSlotRepo) Put(ctx context.Context, key, value string) error {
	now := nowUTC()
	query := `INSERT INTO storage_slots (key, value, updated_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, now, now); err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteSlotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM storage_slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}
