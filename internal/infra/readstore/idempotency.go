package readstore

import (
	"context"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getIdempotencyKeySQL = `
SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
FROM idempotency_keys
WHERE key = @key AND user_id = @user_id`

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(db db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: db}
}

// Get returns expired records too; callers decide whether to take them over.
func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		rec    shared.IdempotencyRecord
		result pgtype.UUID
	)
	err := r.db.QueryRow(ctx, getIdempotencyKeySQL, pgx.NamedArgs{"key": key, "user_id": userID}).
		Scan(&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &result, &rec.ExpiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	rec.ResultReservationID = pgconv.UUIDPtrFromPgtype(result)
	return &rec, nil
}
