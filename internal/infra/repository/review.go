package repository

import (
	"context"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createReviewSQL = `
INSERT INTO reviews (id, reservation_id, user_id, vehicle_id, rating, comment, created_at)
VALUES (@id, @reservation_id, @user_id, @vehicle_id, @rating, @comment, @created_at)
RETURNING id`

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts the review. A second review for the same reservation
// surfaces as infra.KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	args := pgx.NamedArgs{
		"id":             rev.ID(),
		"reservation_id": rev.ReservationID(),
		"user_id":        rev.UserID(),
		"vehicle_id":     rev.VehicleID(),
		"rating":         rev.Rating().Value(),
		"comment":        rev.Comment().String(),
		"created_at":     rev.CreatedAt(),
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, createReviewSQL, args).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}
