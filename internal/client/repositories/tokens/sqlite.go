package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookapp/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, kind Kind) (string, bool, error) {
	key, err := kind.Key()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get token[%s]: %w", key, err)
	}
	return value, value != "", nil
}

func (r *SQLiteRepository) Set(ctx context.Context, kind Kind, value string) error {
	return set(ctx, r.db, kind, value)
}

func (r *SQLiteRepository) SetPair(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, Access, access); err != nil {
			return err
		}
		return set(ctx, tx, Refresh, refresh)
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, kind Kind) error {
	key, err := kind.Key()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete token[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tokens`); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

func set(ctx context.Context, q dbx.DBTX, kind Kind, value string) error {
	key, err := kind.Key()
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO tokens (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set token[%s]: %w", key, err)
	}
	return nil
}
