package repository

import (
	"context"
	"time"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES (@key, @user_id, @endpoint, @request_hash, 'processing', @expires_at)
ON CONFLICT (key, user_id) DO NOTHING`

	completeIdempotencyKeySQL = `
UPDATE idempotency_keys
SET status = 'completed',
    response_body_hash = @response_body_hash,
    result_reservation_id = @result_reservation_id,
    updated_at = now()
WHERE key = @key AND user_id = @user_id`

	// Only a key that has already expired can be taken over by a new request.
	claimExpiredIdempotencyKeySQL = `
UPDATE idempotency_keys
SET status = 'processing',
    request_hash = @request_hash,
    response_body_hash = NULL,
    result_reservation_id = NULL,
    expires_at = @expires_at,
    updated_at = now()
WHERE key = @key AND user_id = @user_id AND expires_at <= now()`

	releaseIdempotencyKeySQL = `
DELETE FROM idempotency_keys
WHERE key = @key AND user_id = @user_id AND status = 'processing'`

	deleteExpiredIdempotencyKeysSQL = `DELETE FROM idempotency_keys WHERE expires_at <= @now`
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert reports false when the key already exists for the user.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	args := pgx.NamedArgs{
		"key":          key,
		"user_id":      userID,
		"endpoint":     endpoint,
		"request_hash": requestHash,
		"expires_at":   expiresAt,
	}

	tag, err := tx.Exec(ctx, tryInsertIdempotencyKeySQL, args)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error {
	args := pgx.NamedArgs{
		"key":                   key,
		"user_id":               userID,
		"response_body_hash":    responseBodyHash,
		"result_reservation_id": resultReservationID,
	}

	if _, err := tx.Exec(ctx, completeIdempotencyKeySQL, args); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

// ClaimExpired reports how many rows were taken over; zero means the key is still live.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	args := pgx.NamedArgs{
		"key":          key,
		"user_id":      userID,
		"request_hash": requestHash,
		"expires_at":   expiresAt,
	}

	tag, err := tx.Exec(ctx, claimExpiredIdempotencyKeySQL, args)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}

	return tag.RowsAffected(), nil
}

// Release drops a key whose request failed so the client can retry with it.
func (r *IdempotencyRepository) Release(ctx context.Context, tx db.DBTX, key, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, releaseIdempotencyKeySQL, pgx.NamedArgs{"key": key, "user_id": userID}); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL, pgx.NamedArgs{"now": now})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return tag.RowsAffected(), nil
}
