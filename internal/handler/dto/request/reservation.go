package request

import (
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/pkg/patch"

	"github.com/google/uuid"
)

// DropoffLocationID defaults to the pickup location.
type CreateReservationRequest struct {
	VehicleID         uuid.UUID  `json:"vehicleId" binding:"required"`
	StartsAt          time.Time  `json:"startsAt" binding:"required"`
	EndsAt            time.Time  `json:"endsAt" binding:"required"`
	PickupLocationID  uuid.UUID  `json:"pickupLocationId" binding:"required"`
	DropoffLocationID *uuid.UUID `json:"dropoffLocationId,omitempty"`
	CampaignID        *uuid.UUID `json:"campaignId,omitempty"`
}

func (r CreateReservationRequest) ToDomain() (reservation.DateInterval, error) {
	return reservation.NewDateInterval(r.StartsAt, r.EndsAt)
}

func (r CreateReservationRequest) GetDropoffLocationID() uuid.UUID {
	return patch.Coalesce(r.DropoffLocationID, r.PickupLocationID)
}

func (r CreateReservationRequest) GetCampaignID() *uuid.UUID {
	if r.CampaignID == nil || *r.CampaignID == uuid.Nil {
		return nil
	}
	id := *r.CampaignID
	return &id
}
