package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction. A failure here is a connection
// problem, not a data problem, so it carries ErrStoreUnavailable and the
// caller may retry with the same idempotency key.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to begin transaction", fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err))
	}
	return tx, nil
}

// Commit commits a transaction. Constraint violations surface at statement
// execution; an error here means the connection or the server went away.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(503, "failed to commit transaction", fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err))
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}
