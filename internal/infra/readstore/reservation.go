package readstore

import (
	"context"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const findReservationSQL = reservationsBaseSQL + ` WHERE r.id = @id`

const reservationViewBaseSQL = `
SELECT r.id, r.vehicle_id, v.brand || ' ' || v.model, r.starts_at, r.ends_at, r.total_cost,
       r.campaign_id, c.title,
       r.pickup_location_id, pl.name, r.dropoff_location_id, dl.name, r.created_at,
       rv.id, COALESCE(u.first_name || ' ' || u.last_name, ''), rv.rating, rv.comment, rv.created_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
JOIN locations pl ON pl.id = r.pickup_location_id
JOIN locations dl ON dl.id = r.dropoff_location_id
LEFT JOIN campaigns c ON c.id = r.campaign_id
LEFT JOIN reviews rv ON rv.reservation_id = r.id
LEFT JOIN users u ON u.id = rv.user_id
WHERE r.user_id = @user_id`

const reservationsByUserFirstPageSQL = reservationViewBaseSQL + `
ORDER BY r.created_at DESC, r.id DESC
LIMIT @limit`

const reservationsByUserKeysetSQL = reservationViewBaseSQL + `
  AND (r.created_at, r.id) < (@last_created_at::timestamptz, @last_id::uuid)
ORDER BY r.created_at DESC, r.id DESC
LIMIT @limit`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	rows, err := s.db.Query(ctx, findReservationSQL, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	found, err := collectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}
	if len(found) == 0 {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &found[0], nil
}

func (s *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	args := pgx.NamedArgs{"user_id": userID, "limit": limit}
	return s.findViews(ctx, reservationsByUserFirstPageSQL, args)
}

func (s *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, after queries.KeysetPosition, limit int32) ([]*queries.ReservationView, error) {
	args := pgx.NamedArgs{
		"user_id":         userID,
		"last_created_at": after.CreatedAt,
		"last_id":         after.ID,
		"limit":           limit,
	}
	return s.findViews(ctx, reservationsByUserKeysetSQL, args)
}

func (s *ReservationReadStore) findViews(ctx context.Context, query string, args pgx.NamedArgs) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, query, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := []*queries.ReservationView{}
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v             queries.ReservationView
		cost          pgtype.Numeric
		campaignID    pgtype.UUID
		campaignTitle pgtype.Text
		reviewID      pgtype.UUID
		reviewer      string
		rating        pgtype.Int4
		comment       pgtype.Text
		reviewedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.VehicleID, &v.VehicleName, &v.StartsAt, &v.EndsAt, &cost,
		&campaignID, &campaignTitle,
		&v.PickupLocationID, &v.PickupLocationName, &v.DropoffLocationID, &v.DropoffLocationName, &v.CreatedAt,
		&reviewID, &reviewer, &rating, &comment, &reviewedAt); err != nil {
		return nil, err
	}

	total, err := pgconv.DecimalFromNumeric(cost)
	if err != nil {
		return nil, err
	}
	v.TotalCost = total
	v.CampaignID = pgconv.UUIDPtrFromPgtype(campaignID)
	v.CampaignTitle = pgconv.StringPtrFromPgtype(campaignTitle)

	if reviewID.Valid {
		v.Review = &queries.ReviewView{
			ID:            uuid.UUID(reviewID.Bytes),
			ReservationID: v.ID,
			Reviewer:      reviewer,
			Rating:        int(rating.Int32),
			Comment:       comment.String,
			CreatedAt:     reviewedAt.Time,
		}
	}
	return &v, nil
}
