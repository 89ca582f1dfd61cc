package queries

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock
type ReservationQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type ReservationReadStore interface {
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, after KeysetPosition, limit int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	engine *booking.Engine
	clock  clock.Clock
}

func NewReservationQueries(store ReservationReadStore, engine *booking.Engine, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, engine: engine, clock: clk}
}

// ListMine returns the user's reservations newest first, flagging which of
// them can still be reviewed.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReservationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		pos, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, pos, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	for _, row := range rows {
		if err := q.annotate(row, now); err != nil {
			return nil, nil, err
		}
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) annotate(row *ReservationView, now time.Time) error {
	snap := shared.ReservationSnapshot{
		ID:                row.ID,
		VehicleID:         row.VehicleID,
		StartsAt:          row.StartsAt,
		EndsAt:            row.EndsAt,
		TotalCost:         row.TotalCost,
		CampaignID:        row.CampaignID,
		PickupLocationID:  row.PickupLocationID,
		DropoffLocationID: row.DropoffLocationID,
		CreatedAt:         row.CreatedAt,
	}
	if row.Review != nil {
		snap.Review = &shared.ReviewSnapshot{ID: row.Review.ID, Rating: row.Review.Rating, Comment: row.Review.Comment, CreatedAt: row.Review.CreatedAt}
	}

	r, err := snap.ToDomain()
	if err != nil {
		return err
	}
	status := q.engine.ReviewStatus(r, now)
	row.Completed = status.Completed
	row.Reviewable = status.Reviewable
	return nil
}
