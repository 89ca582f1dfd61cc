package response

import (
	"time"

	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID  `json:"id"`
	VehicleID         uuid.UUID  `json:"vehicleId"`
	UserID            uuid.UUID  `json:"userId"`
	StartsAt          time.Time  `json:"startsAt"`
	EndsAt            time.Time  `json:"endsAt"`
	TotalCost         string     `json:"totalCost"`
	CampaignID        *uuid.UUID `json:"campaignId,omitempty"`
	PickupLocationID  uuid.UUID  `json:"pickupLocationId"`
	DropoffLocationID uuid.UUID  `json:"dropoffLocationId"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func FromReservationSnapshot(s *shared.ReservationSnapshot) *ReservationResponse {
	return &ReservationResponse{
		ID:                s.ID,
		VehicleID:         s.VehicleID,
		UserID:            s.UserID,
		StartsAt:          s.StartsAt,
		EndsAt:            s.EndsAt,
		TotalCost:         money(s.TotalCost),
		CampaignID:        s.CampaignID,
		PickupLocationID:  s.PickupLocationID,
		DropoffLocationID: s.DropoffLocationID,
		CreatedAt:         s.CreatedAt,
	}
}

type ReservationListItemResponse struct {
	ID                  uuid.UUID           `json:"id"`
	VehicleID           uuid.UUID           `json:"vehicleId"`
	VehicleName         string              `json:"vehicleName"`
	StartsAt            time.Time           `json:"startsAt"`
	EndsAt              time.Time           `json:"endsAt"`
	TotalCost           string              `json:"totalCost"`
	CampaignID          *uuid.UUID          `json:"campaignId,omitempty"`
	CampaignTitle       *string             `json:"campaignTitle,omitempty"`
	PickupLocationName  string              `json:"pickupLocationName"`
	DropoffLocationName string              `json:"dropoffLocationName"`
	CreatedAt           time.Time           `json:"createdAt"`
	Completed           bool                `json:"completed"`
	Reviewable          bool                `json:"reviewable"`
	Review              *ReviewItemResponse `json:"review,omitempty"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor,omitempty"`
}

func FromReservationViews(views []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	items := make([]*ReservationListItemResponse, len(views))
	for i, v := range views {
		item := &ReservationListItemResponse{
			ID:                  v.ID,
			VehicleID:           v.VehicleID,
			VehicleName:         v.VehicleName,
			StartsAt:            v.StartsAt,
			EndsAt:              v.EndsAt,
			TotalCost:           money(v.TotalCost),
			CampaignID:          v.CampaignID,
			CampaignTitle:       v.CampaignTitle,
			PickupLocationName:  v.PickupLocationName,
			DropoffLocationName: v.DropoffLocationName,
			CreatedAt:           v.CreatedAt,
			Completed:           v.Completed,
			Reviewable:          v.Reviewable,
		}
		if v.Review != nil {
			item.Review = FromReviewView(v.Review)
		}
		items[i] = item
	}

	res := &ReservationListResponse{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res
}
