//go:build unit || e2e

package builder

import (
	"time"

	domreview "vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ReviewerName  string
	VehicleID     uuid.UUID
	ReservationID uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ReviewerName:  "Ayşe Yılmaz",
		VehicleID:     uuid.New(),
		ReservationID: uuid.New(),
		Rating:        5,
		Comment:       "Clean car, smooth pickup.",
		CreatedAt:     time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ID, r.UserID, r.VehicleID, r.ReservationID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:           r.ID,
		UserID:       r.UserID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}
