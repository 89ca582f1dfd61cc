package queries

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReviewListItem is one entry of the public review feed.
type ReviewListItem struct {
	ID                uuid.UUID `json:"id"`
	ReservationID     uuid.UUID `json:"reservationId"`
	VehicleID         uuid.UUID `json:"vehicleId"`
	VehicleName       string    `json:"vehicleName"`
	ReviewerFirstName string    `json:"reviewerFirstName"`
	ReviewerLastName  string    `json:"reviewerLastName"`
	Rating            int       `json:"rating"`
	Comment           string    `json:"comment"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ReviewFilters narrows the feed; nil fields do not filter. Rating bounds are
// inclusive.
type ReviewFilters struct {
	VehicleID *uuid.UUID
	MinRating *int
	MaxRating *int
}

func (f ReviewFilters) Validate() error {
	for _, r := range []*int{f.MinRating, f.MaxRating} {
		if r != nil && (*r < review.MinRating || *r > review.MaxRating) {
			return errs.Wrapf(ErrInvalidReviewFilter, "rating %d outside %d..%d", *r, review.MinRating, review.MaxRating)
		}
	}
	if f.MinRating != nil && f.MaxRating != nil && *f.MinRating > *f.MaxRating {
		return errs.Wrap(ErrInvalidReviewFilter, "minRating exceeds maxRating")
	}
	return nil
}

type ReviewReadStore interface {
	FindFirstPage(ctx context.Context, filters ReviewFilters, limit int32) ([]*ReviewListItem, error)
	FindKeyset(ctx context.Context, filters ReviewFilters, after KeysetPosition, limit int32) ([]*ReviewListItem, error)
}

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock
type ReviewQueries interface {
	List(ctx context.Context, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

// List returns reviews newest first.
func (q *reviewQueriesImpl) List(ctx context.Context, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	if err := filters.Validate(); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, filters, int32(limit+1))
	} else {
		pos, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindKeyset(ctx, filters, pos, int32(limit+1))
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
	return rows, next, nil
}
