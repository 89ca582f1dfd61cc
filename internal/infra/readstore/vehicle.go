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
	"github.com/shopspring/decimal"
)

const vehicleColumns = `v.id, v.brand, v.model, v.year, v.color, v.license_plate, v.image_url, v.description, v.status, v.daily_price`

const (
	findVehicleSQL = `SELECT ` + vehicleColumns + ` FROM vehicles v WHERE v.id = @id`
	lockVehicleSQL = findVehicleSQL + ` FOR UPDATE`
)

// A NULL parameter disables its condition.
const listVehiclesSQL = `SELECT ` + vehicleColumns + `
FROM vehicles v
WHERE (@min_price::numeric IS NULL OR v.daily_price >= @min_price::numeric)
  AND (@max_price::numeric IS NULL OR v.daily_price <= @max_price::numeric)
  AND (@year::int IS NULL OR v.year = @year::int)
  AND (@color::text IS NULL OR lower(v.color) = lower(@color::text))
  AND (@status::text IS NULL OR v.status = @status::text)
ORDER BY v.brand, v.model, v.id`

const listColorsSQL = `SELECT DISTINCT v.color FROM vehicles v WHERE v.color <> '' ORDER BY v.color`

const reservationsBaseSQL = `
SELECT r.id, r.vehicle_id, r.user_id, r.starts_at, r.ends_at, r.total_cost, r.campaign_id,
       r.pickup_location_id, r.dropoff_location_id, r.created_at,
       rv.id, rv.user_id, COALESCE(u.first_name || ' ' || u.last_name, ''), rv.rating, rv.comment, rv.created_at
FROM reservations r
LEFT JOIN reviews rv ON rv.reservation_id = r.id
LEFT JOIN users u ON u.id = rv.user_id`

const (
	vehicleReservationsSQL  = reservationsBaseSQL + ` WHERE r.vehicle_id = @vehicle_id ORDER BY r.starts_at`
	vehiclesReservationsSQL = reservationsBaseSQL + ` WHERE r.vehicle_id = ANY(@vehicle_ids::uuid[]) ORDER BY r.vehicle_id, r.starts_at`
)

// VehicleReadStore loads vehicles together with their reservation history.
type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(db db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

func (s *VehicleReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	return s.findSnapshot(ctx, findVehicleSQL, id)
}

// LockSnapshot must run inside a transaction: the vehicle row stays locked
// until it ends, serializing bookings for the same vehicle.
func (s *VehicleReadStore) LockSnapshot(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	return s.findSnapshot(ctx, lockVehicleSQL, id)
}

func (s *VehicleReadStore) findSnapshot(ctx context.Context, query string, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	snap, err := scanVehicle(s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}

	rows, err := s.db.Query(ctx, vehicleReservationsSQL, pgx.NamedArgs{"vehicle_id": id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load vehicle reservations", err)
	}
	held, err := collectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan vehicle reservations", err)
	}
	snap.Reservations = held
	return snap, nil
}

func (s *VehicleReadStore) FindSnapshots(ctx context.Context, filter queries.VehicleFilter) ([]*shared.VehicleSnapshot, error) {
	rows, err := s.db.Query(ctx, listVehiclesSQL, vehicleFilterArgs(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	snaps := []*shared.VehicleSnapshot{}
	ids := []uuid.UUID{}
	byID := map[uuid.UUID]*shared.VehicleSnapshot{}
	for rows.Next() {
		snap, err := scanVehicle(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle", err)
		}
		snaps = append(snaps, snap)
		ids = append(ids, snap.ID)
		byID[snap.ID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicles", err)
	}
	if len(snaps) == 0 {
		return snaps, nil
	}

	resRows, err := s.db.Query(ctx, vehiclesReservationsSQL, pgx.NamedArgs{"vehicle_ids": ids})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservations", err)
	}
	held, err := collectReservations(resRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	for _, r := range held {
		if snap, ok := byID[r.VehicleID]; ok {
			snap.Reservations = append(snap.Reservations, r)
		}
	}
	return snaps, nil
}

func (s *VehicleReadStore) ListColors(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, listColorsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicle colors", err)
	}
	defer rows.Close()

	colors := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle color", err)
		}
		colors = append(colors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle colors", err)
	}
	return colors, nil
}

func vehicleFilterArgs(f queries.VehicleFilter) pgx.NamedArgs {
	args := pgx.NamedArgs{
		"min_price": decimalArg(f.MinDailyPrice),
		"max_price": decimalArg(f.MaxDailyPrice),
		"year":      toPgInt4(f.Year),
		"color":     pgtype.Text{},
		"status":    pgtype.Text{},
	}
	if f.Color != nil {
		args["color"] = pgtype.Text{String: *f.Color, Valid: true}
	}
	if f.Status != nil {
		args["status"] = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	return args
}

// decimalArg sends a price as text so the ::numeric cast keeps every digit.
func decimalArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

func scanVehicle(row pgx.Row) (*shared.VehicleSnapshot, error) {
	var (
		snap  shared.VehicleSnapshot
		price pgtype.Numeric
	)
	if err := row.Scan(&snap.ID, &snap.Brand, &snap.Model, &snap.Year, &snap.Color,
		&snap.LicensePlate, &snap.ImageURL, &snap.Description, &snap.Status, &price); err != nil {
		return nil, err
	}

	dailyPrice, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, err
	}
	snap.DailyPrice = dailyPrice
	snap.Reservations = []shared.ReservationSnapshot{}
	return &snap, nil
}

func collectReservations(rows pgx.Rows) ([]shared.ReservationSnapshot, error) {
	defer rows.Close()

	var out []shared.ReservationSnapshot
	for rows.Next() {
		var (
			r          shared.ReservationSnapshot
			cost       pgtype.Numeric
			campaignID pgtype.UUID
			reviewID   pgtype.UUID
			reviewerID pgtype.UUID
			reviewer   string
			rating     pgtype.Int4
			comment    pgtype.Text
			reviewedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&r.ID, &r.VehicleID, &r.UserID, &r.StartsAt, &r.EndsAt, &cost, &campaignID,
			&r.PickupLocationID, &r.DropoffLocationID, &r.CreatedAt,
			&reviewID, &reviewerID, &reviewer, &rating, &comment, &reviewedAt); err != nil {
			return nil, err
		}

		total, err := pgconv.DecimalFromNumeric(cost)
		if err != nil {
			return nil, err
		}
		r.TotalCost = total
		r.CampaignID = pgconv.UUIDPtrFromPgtype(campaignID)

		if reviewID.Valid {
			r.Review = &shared.ReviewSnapshot{
				ID:           uuid.UUID(reviewID.Bytes),
				UserID:       uuid.UUID(reviewerID.Bytes),
				ReviewerName: reviewer,
				Rating:       int(rating.Int32),
				Comment:      comment.String,
				CreatedAt:    reviewedAt.Time,
			}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
