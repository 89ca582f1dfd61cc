package reservation

import (
	"time"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingLocation         = errs.New("pickup and dropoff locations are required")
	ErrReservationNotCompleted = errs.New("reservation has not ended yet")
	ErrReviewMismatch          = errs.New("review belongs to another reservation")
)

type Reservation struct {
	id                uuid.UUID
	vehicleID         uuid.UUID
	userID            uuid.UUID
	interval          DateInterval
	totalCost         Money
	campaignID        *uuid.UUID
	pickupLocationID  uuid.UUID
	dropoffLocationID uuid.UUID
	review            *review.Review
	createdAt         time.Time
}

type Params struct {
	VehicleID         uuid.UUID
	UserID            uuid.UUID
	Interval          DateInterval
	TotalCost         Money
	CampaignID        *uuid.UUID
	PickupLocationID  uuid.UUID
	DropoffLocationID uuid.UUID
}

func NewReservation(p Params, now time.Time) (*Reservation, error) {
	if p.Interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	if p.PickupLocationID == uuid.Nil || p.DropoffLocationID == uuid.Nil {
		return nil, ErrMissingLocation
	}

	return &Reservation{
		id:                uuid.New(),
		vehicleID:         p.VehicleID,
		userID:            p.UserID,
		interval:          p.Interval,
		totalCost:         p.TotalCost,
		campaignID:        p.CampaignID,
		pickupLocationID:  p.PickupLocationID,
		dropoffLocationID: p.DropoffLocationID,
		createdAt:         now,
	}, nil
}

func ReconstructReservation(id uuid.UUID, p Params, rv *review.Review, createdAt time.Time) *Reservation {
	return &Reservation{
		id:                id,
		vehicleID:         p.VehicleID,
		userID:            p.UserID,
		interval:          p.Interval,
		totalCost:         p.TotalCost,
		campaignID:        p.CampaignID,
		pickupLocationID:  p.PickupLocationID,
		dropoffLocationID: p.DropoffLocationID,
		review:            rv,
		createdAt:         createdAt,
	}
}

// IsCompleted is strict: a reservation ending exactly at now is still running.
func (r *Reservation) IsCompleted(now time.Time) bool {
	return r.interval.End().Before(now)
}

func (r *Reservation) HasReview() bool {
	return r.review != nil
}

func (r *Reservation) CanReview(now time.Time) bool {
	return r.IsCompleted(now) && !r.HasReview()
}

// AttachReview is the only mutation a reservation allows.
func (r *Reservation) AttachReview(rv *review.Review, now time.Time) error {
	if rv.ReservationID() != r.id {
		return ErrReviewMismatch
	}
	if r.HasReview() {
		return review.ErrReviewAlreadyExists
	}
	if !r.IsCompleted(now) {
		return ErrReservationNotCompleted
	}
	r.review = rv
	return nil
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) VehicleID() uuid.UUID         { return r.vehicleID }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) Interval() DateInterval       { return r.interval }
func (r *Reservation) TotalCost() Money             { return r.totalCost }
func (r *Reservation) CampaignID() *uuid.UUID       { return r.campaignID }
func (r *Reservation) PickupLocationID() uuid.UUID  { return r.pickupLocationID }
func (r *Reservation) DropoffLocationID() uuid.UUID { return r.dropoffLocationID }
func (r *Reservation) Review() *review.Review       { return r.review }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
