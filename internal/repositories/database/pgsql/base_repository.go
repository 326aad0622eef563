package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared state-slot access every repository is
// built on. Each slot is one row in app_state; a slot is always rewritten as
// a whole, so readers never observe a partially applied batch.
type BaseRepository struct {
	pool *pgxpool.Pool
}

// getState unmarshals the JSONB value stored under key into dest.
// Returns apperrors.ErrNotFound when the slot has never been written.
func (r *BaseRepository) getState(ctx context.Context, key string, dest any) error {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: state slot %q", apperrors.ErrNotFound, key)
		}
		return fmt.Errorf("failed to read state slot %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode state slot %q: %w", key, err)
	}
	return nil
}

// setState upserts value as the JSONB payload of key in a single statement.
func (r *BaseRepository) setState(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state slot %q: %w", key, err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();
	`, key, raw)
	if err != nil {
		return fmt.Errorf("failed to write state slot %q: %w", key, err)
	}
	return nil
}

// deleteState removes the slot entirely. Missing slots are not an error.
func (r *BaseRepository) deleteState(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state slot %q: %w", key, err)
	}
	return nil
}
