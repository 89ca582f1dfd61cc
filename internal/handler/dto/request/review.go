package request

import (
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment" binding:"max=1000"`
}

// ReviewListQuery filters the public review feed.
type ReviewListQuery struct {
	VehicleID string `form:"vehicleId"`
	MinRating *int   `form:"minRating"`
	MaxRating *int   `form:"maxRating"`
	After     string `form:"after"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
