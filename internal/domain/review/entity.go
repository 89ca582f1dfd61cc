package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	userID        uuid.UUID
	vehicleID     uuid.UUID
	reservationID uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
}

func NewReview(id, userID, vehicleID, reservationID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:            id,
		userID:        userID,
		vehicleID:     vehicleID,
		reservationID: reservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
	}, nil
}

// ReconstructReview rebuilds a stored review. Values are trusted.
func ReconstructReview(id, userID, vehicleID, reservationID uuid.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:            id,
		userID:        userID,
		vehicleID:     vehicleID,
		reservationID: reservationID,
		rating:        Rating{value: rating},
		comment:       Comment{text: comment},
		createdAt:     createdAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) VehicleID() uuid.UUID     { return r.vehicleID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
