package booking

import (
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"
)

// AvailabilityChecker judges a candidate against the reservations carried by
// a vehicle snapshot. Reservation status is never consulted: whatever the
// caller hands in blocks.
type AvailabilityChecker struct{}

func NewAvailabilityChecker() AvailabilityChecker {
	return AvailabilityChecker{}
}

func (AvailabilityChecker) IsDateBlocked(v *vehicle.Vehicle, t time.Time) bool {
	if v == nil {
		return false
	}
	for _, r := range v.Reservations() {
		if r.Interval().ContainsInstant(t) {
			return true
		}
	}
	return false
}

func (c AvailabilityChecker) IsIntervalAvailable(v *vehicle.Vehicle, candidate reservation.DateInterval) bool {
	return len(c.Conflicts(v, candidate)) == 0
}

// Conflicts lists the reservations overlapping candidate, in snapshot order.
func (AvailabilityChecker) Conflicts(v *vehicle.Vehicle, candidate reservation.DateInterval) []*reservation.Reservation {
	if v == nil {
		return nil
	}
	var out []*reservation.Reservation
	for _, r := range v.Reservations() {
		if r.Interval().Overlaps(candidate) {
			out = append(out, r)
		}
	}
	return out
}

// BlockedDates returns the local midnights of every calendar day touching
// window whose part inside window shares at least one instant with a
// reservation. A day that only partly falls inside window is judged on that
// part alone.
func (c AvailabilityChecker) BlockedDates(v *vehicle.Vehicle, window reservation.DateInterval, loc *time.Location) ([]time.Time, error) {
	if v == nil {
		return nil, ErrMissingVehicle
	}
	if window.IsZero() {
		return nil, ErrInvalidInterval
	}
	if loc == nil {
		loc = time.UTC
	}

	var blocked []time.Time
	for day := startOfDay(window.Start(), loc); day.Before(window.End()); day = day.AddDate(0, 0, 1) {
		part, err := reservation.NewDateInterval(latest(day, window.Start()), earliest(day.AddDate(0, 0, 1), window.End()))
		if err != nil {
			return nil, err
		}
		if !c.IsIntervalAvailable(v, part) {
			blocked = append(blocked, day)
		}
	}
	return blocked, nil
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
