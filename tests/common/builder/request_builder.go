//go:build unit || e2e

package builder

import (
	"time"

	reqdto "vehicle-rental/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CreateReservationBuilder struct {
	VehicleID         uuid.UUID
	StartsAt          time.Time
	EndsAt            time.Time
	PickupLocationID  uuid.UUID
	DropoffLocationID *uuid.UUID
	CampaignID        *uuid.UUID
}

func NewCreateReservationBuilder() *CreateReservationBuilder {
	start := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	return &CreateReservationBuilder{
		VehicleID:        uuid.New(),
		StartsAt:         start,
		EndsAt:           start.Add(72 * time.Hour),
		PickupLocationID: uuid.New(),
	}
}

func (b *CreateReservationBuilder) With(mutate func(*CreateReservationBuilder)) *CreateReservationBuilder {
	mutate(b)
	return b
}

func (b *CreateReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		VehicleID:         b.VehicleID,
		StartsAt:          b.StartsAt,
		EndsAt:            b.EndsAt,
		PickupLocationID:  b.PickupLocationID,
		DropoffLocationID: b.DropoffLocationID,
		CampaignID:        b.CampaignID,
	}
}

type CreateReviewBuilder struct {
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

func NewCreateReviewBuilder() *CreateReviewBuilder {
	return &CreateReviewBuilder{
		ReservationID: uuid.New(),
		Rating:        4,
		Comment:       "Clean car, smooth pickup.",
	}
}

func (b *CreateReviewBuilder) With(mutate func(*CreateReviewBuilder)) *CreateReviewBuilder {
	mutate(b)
	return b
}

func (b *CreateReviewBuilder) BuildDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReservationID: b.ReservationID,
		Rating:        b.Rating,
		Comment:       b.Comment,
	}
}
