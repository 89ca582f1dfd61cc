package readstore

import (
	"context"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const reviewFeedBaseSQL = `
SELECT rv.id, rv.reservation_id, r.vehicle_id, v.brand || ' ' || v.model,
       u.first_name, u.last_name, rv.rating, rv.comment, rv.created_at
FROM reviews rv
JOIN reservations r ON r.id = rv.reservation_id
JOIN vehicles v ON v.id = r.vehicle_id
JOIN users u ON u.id = rv.user_id
WHERE (@vehicle_id::uuid IS NULL OR r.vehicle_id = @vehicle_id::uuid)
  AND (@min_rating::int IS NULL OR rv.rating >= @min_rating::int)
  AND (@max_rating::int IS NULL OR rv.rating <= @max_rating::int)`

const reviewsFirstPageSQL = reviewFeedBaseSQL + `
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT @limit`

const reviewsKeysetSQL = reviewFeedBaseSQL + `
  AND (rv.created_at, rv.id) < (@last_created_at::timestamptz, @last_id::uuid)
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT @limit`

// ReviewReadStore serves the public review feed.
type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (s *ReviewReadStore) FindFirstPage(ctx context.Context, filters queries.ReviewFilters, limit int32) ([]*queries.ReviewListItem, error) {
	args := reviewFilterArgs(filters)
	args["limit"] = limit
	return s.find(ctx, reviewsFirstPageSQL, args)
}

func (s *ReviewReadStore) FindKeyset(ctx context.Context, filters queries.ReviewFilters, after queries.KeysetPosition, limit int32) ([]*queries.ReviewListItem, error) {
	args := reviewFilterArgs(filters)
	args["last_created_at"] = after.CreatedAt
	args["last_id"] = after.ID
	args["limit"] = limit
	return s.find(ctx, reviewsKeysetSQL, args)
}

func (s *ReviewReadStore) find(ctx context.Context, query string, args pgx.NamedArgs) ([]*queries.ReviewListItem, error) {
	rows, err := s.db.Query(ctx, query, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	items := []*queries.ReviewListItem{}
	for rows.Next() {
		var it queries.ReviewListItem
		if err := rows.Scan(&it.ID, &it.ReservationID, &it.VehicleID, &it.VehicleName,
			&it.ReviewerFirstName, &it.ReviewerLastName, &it.Rating, &it.Comment, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return items, nil
}

func reviewFilterArgs(f queries.ReviewFilters) pgx.NamedArgs {
	return pgx.NamedArgs{
		"vehicle_id": pgconv.UUIDPtrToPgtype(f.VehicleID),
		"min_rating": toPgInt4(f.MinRating),
		"max_rating": toPgInt4(f.MaxRating),
	}
}
