package repository

import (
	"context"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createReservationSQL = `
INSERT INTO reservations (
    id, vehicle_id, user_id, starts_at, ends_at, total_cost,
    campaign_id, pickup_location_id, dropoff_location_id, created_at
) VALUES (
    @id, @vehicle_id, @user_id, @starts_at, @ends_at, @total_cost::numeric,
    @campaign_id, @pickup_location_id, @dropoff_location_id, @created_at
)
RETURNING id`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation. An overlap with another reservation on the
// same vehicle surfaces as infra.KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	args := pgx.NamedArgs{
		"id":                  res.ID(),
		"vehicle_id":          res.VehicleID(),
		"user_id":             res.UserID(),
		"starts_at":           res.Interval().Start(),
		"ends_at":             res.Interval().End(),
		"total_cost":          res.TotalCost().Decimal().String(),
		"campaign_id":         res.CampaignID(),
		"pickup_location_id":  res.PickupLocationID(),
		"dropoff_location_id": res.DropoffLocationID(),
		"created_at":          res.CreatedAt(),
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, createReservationSQL, args).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}
