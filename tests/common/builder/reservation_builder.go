//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID                uuid.UUID
	VehicleID         uuid.UUID
	UserID            uuid.UUID
	StartsAt          time.Time
	EndsAt            time.Time
	TotalCost         decimal.Decimal
	CampaignID        *uuid.UUID
	PickupLocationID  uuid.UUID
	DropoffLocationID uuid.UUID
	CreatedAt         time.Time
	Review            *ReviewBuilder
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:                uuid.New(),
		VehicleID:         uuid.New(),
		UserID:            uuid.New(),
		StartsAt:          start,
		EndsAt:            start.Add(3 * reservation.Day),
		TotalCost:         decimal.NewFromInt(300),
		PickupLocationID:  uuid.New(),
		DropoffLocationID: uuid.New(),
		CreatedAt:         start.Add(-7 * reservation.Day),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// WithReview attaches a review written by the booking user.
func (b *ReservationBuilder) WithReview(rating int) *ReservationBuilder {
	b.Review = NewReviewBuilder().With(func(r *ReviewBuilder) {
		r.UserID = b.UserID
		r.VehicleID = b.VehicleID
		r.ReservationID = b.ID
		r.Rating = rating
	})
	return b
}

func (b *ReservationBuilder) Interval() reservation.DateInterval {
	interval, err := reservation.NewDateInterval(b.StartsAt, b.EndsAt)
	if err != nil {
		panic(err)
	}
	return interval
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	snap := b.BuildSnapshot()
	r, err := snap.ToDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildSnapshot() shared.ReservationSnapshot {
	snap := shared.ReservationSnapshot{
		ID:                b.ID,
		VehicleID:         b.VehicleID,
		UserID:            b.UserID,
		StartsAt:          b.StartsAt,
		EndsAt:            b.EndsAt,
		TotalCost:         b.TotalCost,
		CampaignID:        b.CampaignID,
		PickupLocationID:  b.PickupLocationID,
		DropoffLocationID: b.DropoffLocationID,
		CreatedAt:         b.CreatedAt,
	}
	if b.Review != nil {
		snap.Review = b.Review.BuildSnapshot()
	}
	return snap
}
