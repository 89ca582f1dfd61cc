package booking

import (
	"time"

	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
)

type BuildInput struct {
	Vehicle           *vehicle.Vehicle
	UserID            uuid.UUID
	Interval          reservation.DateInterval
	PickupLocationID  uuid.UUID
	DropoffLocationID uuid.UUID
	Campaign          *campaign.Campaign
}

// ReservationRequest is a validated, priced booking ready to be stored.
type ReservationRequest struct {
	vehicleID         uuid.UUID
	userID            uuid.UUID
	interval          reservation.DateInterval
	pickupLocationID  uuid.UUID
	dropoffLocationID uuid.UUID
	cost              CostBreakdown
}

func (r *ReservationRequest) VehicleID() uuid.UUID              { return r.vehicleID }
func (r *ReservationRequest) UserID() uuid.UUID                 { return r.userID }
func (r *ReservationRequest) Interval() reservation.DateInterval { return r.interval }
func (r *ReservationRequest) Start() time.Time                  { return r.interval.Start() }
func (r *ReservationRequest) End() time.Time                    { return r.interval.End() }
func (r *ReservationRequest) PickupLocationID() uuid.UUID       { return r.pickupLocationID }
func (r *ReservationRequest) DropoffLocationID() uuid.UUID      { return r.dropoffLocationID }
func (r *ReservationRequest) Cost() CostBreakdown               { return r.cost }
func (r *ReservationRequest) FinalCost() reservation.Money      { return r.cost.FinalCost }

func (r *ReservationRequest) CampaignID() *uuid.UUID {
	if r.cost.CampaignID == nil {
		return nil
	}
	id := *r.cost.CampaignID
	return &id
}

// ReservationParams converts the request into constructor input for the
// reservation entity.
func (r *ReservationRequest) ReservationParams() reservation.Params {
	return reservation.Params{
		VehicleID:         r.vehicleID,
		UserID:            r.userID,
		Interval:          r.interval,
		TotalCost:         r.cost.FinalCost,
		CampaignID:        r.CampaignID(),
		PickupLocationID:  r.pickupLocationID,
		DropoffLocationID: r.dropoffLocationID,
	}
}

type ReservationRequestBuilder struct {
	availability AvailabilityChecker
	pricing      PricingEngine
}

func NewReservationRequestBuilder(availability AvailabilityChecker, pricing PricingEngine) ReservationRequestBuilder {
	return ReservationRequestBuilder{availability: availability, pricing: pricing}
}

// Build checks the interval, then the locations, then prices the booking.
func (b ReservationRequestBuilder) Build(in BuildInput) (*ReservationRequest, error) {
	if in.Vehicle == nil {
		return nil, ErrMissingVehicle
	}
	if in.Interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	if !b.availability.IsIntervalAvailable(in.Vehicle, in.Interval) {
		return nil, ErrIntervalUnavailable
	}
	if in.PickupLocationID == uuid.Nil || in.DropoffLocationID == uuid.Nil {
		return nil, ErrMissingLocation
	}
	if in.UserID == uuid.Nil {
		return nil, ErrMissingUser
	}

	cost, err := b.pricing.ComputeCost(in.Vehicle.DailyPrice().Decimal(), in.Interval, in.Campaign)
	if err != nil {
		return nil, err
	}

	return &ReservationRequest{
		vehicleID:         in.Vehicle.ID(),
		userID:            in.UserID,
		interval:          in.Interval,
		pickupLocationID:  in.PickupLocationID,
		dropoffLocationID: in.DropoffLocationID,
		cost:              cost,
	}, nil
}
