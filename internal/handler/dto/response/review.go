package response

import (
	"time"

	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	VehicleID     uuid.UUID `json:"vehicleId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromCreateReviewResult(r *commands.CreateReviewResult) *ReviewResponse {
	return &ReviewResponse{
		ID:            r.ReviewID,
		ReservationID: r.ReservationID,
		VehicleID:     r.VehicleID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

type ReviewItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	Reviewer      string    `json:"reviewer"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewItemResponse {
	return &ReviewItemResponse{
		ID:            v.ID,
		ReservationID: v.ReservationID,
		Reviewer:      v.Reviewer,
		Rating:        v.Rating,
		Comment:       v.Comment,
		CreatedAt:     v.CreatedAt,
	}
}

type RatingResponse struct {
	VehicleID     uuid.UUID `json:"vehicleId"`
	TotalReviews  int       `json:"totalReviews"`
	AverageRating float64   `json:"averageRating"`
	Rating1Count  int       `json:"rating1Count"`
	Rating2Count  int       `json:"rating2Count"`
	Rating3Count  int       `json:"rating3Count"`
	Rating4Count  int       `json:"rating4Count"`
	Rating5Count  int       `json:"rating5Count"`
}

func FromRatingView(v *queries.RatingView) (*RatingResponse, error) {
	var res RatingResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type ReviewFeedItemResponse struct {
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

type ReviewFeedResponse struct {
	Items      []*ReviewFeedItemResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

func FromReviewListItems(items []*queries.ReviewListItem, next *queries.Cursor) (*ReviewFeedResponse, error) {
	res := &ReviewFeedResponse{Items: make([]*ReviewFeedItemResponse, 0, len(items))}
	if err := copyView(&res.Items, items); err != nil {
		return nil, err
	}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}
