// Package booking decides whether a vehicle can be booked for an interval,
// what the booking costs, and what its review history adds up to.
//
// Everything here is a pure function of its arguments. Callers load the
// vehicle snapshot, pass the current time explicitly, and serialize
// submissions against an authoritative store themselves.
package booking

import (
	"time"

	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/shopspring/decimal"
)

type Engine struct {
	availability AvailabilityChecker
	pricing      PricingEngine
	reviews      ReviewAggregator
	builder      ReservationRequestBuilder
}

func NewEngine() *Engine {
	availability := NewAvailabilityChecker()
	pricing := NewPricingEngine()
	return &Engine{
		availability: availability,
		pricing:      pricing,
		reviews:      NewReviewAggregator(),
		builder:      NewReservationRequestBuilder(availability, pricing),
	}
}

// CheckAvailability is false for a nil vehicle or an invalid interval.
func (e *Engine) CheckAvailability(v *vehicle.Vehicle, interval reservation.DateInterval) bool {
	if v == nil || interval.IsZero() {
		return false
	}
	return e.availability.IsIntervalAvailable(v, interval)
}

func (e *Engine) IsDateBlocked(v *vehicle.Vehicle, t time.Time) bool {
	return e.availability.IsDateBlocked(v, t)
}

func (e *Engine) Conflicts(v *vehicle.Vehicle, interval reservation.DateInterval) []*reservation.Reservation {
	return e.availability.Conflicts(v, interval)
}

func (e *Engine) BlockedDates(v *vehicle.Vehicle, window reservation.DateInterval, loc *time.Location) ([]time.Time, error) {
	return e.availability.BlockedDates(v, window, loc)
}

func (e *Engine) ComputeCost(dailyPrice decimal.Decimal, interval reservation.DateInterval, c *campaign.Campaign) (CostBreakdown, error) {
	return e.pricing.ComputeCost(dailyPrice, interval, c)
}

func (e *Engine) BuildReservationRequest(in BuildInput) (*ReservationRequest, error) {
	return e.builder.Build(in)
}

func (e *Engine) ReviewStatus(r *reservation.Reservation, now time.Time) ReviewStatus {
	return e.reviews.ReviewStatus(r, now)
}

// AverageRating ignores now. A review counts whether or not its reservation
// has completed.
func (e *Engine) AverageRating(v *vehicle.Vehicle, now time.Time) float64 {
	return e.reviews.AverageRating(v)
}

func (e *Engine) RatingStats(v *vehicle.Vehicle) RatingStats {
	return e.reviews.RatingStats(v)
}
