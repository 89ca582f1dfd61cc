//go:build unit

package booking_test

import (
	"testing"
	"time"

	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func span(t *testing.T, start, end time.Time) reservation.DateInterval {
	t.Helper()
	i, err := reservation.NewDateInterval(start, end)
	require.NoError(t, err)
	return i
}

type heldReservation struct {
	start, end time.Time
	rating     int
}

func newVehicle(t *testing.T, dailyPrice string, held ...heldReservation) *vehicle.Vehicle {
	t.Helper()
	id := uuid.New()
	rs := make([]*reservation.Reservation, 0, len(held))
	for _, h := range held {
		resID := uuid.New()
		var rv *review.Review
		if h.rating != 0 {
			rv = review.ReconstructReview(uuid.New(), uuid.New(), id, resID, h.rating, "", h.end)
		}
		rs = append(rs, reservation.ReconstructReservation(resID, reservation.Params{
			VehicleID:         id,
			UserID:            uuid.New(),
			Interval:          span(t, h.start, h.end),
			TotalCost:         reservation.ZeroMoney(),
			PickupLocationID:  uuid.New(),
			DropoffLocationID: uuid.New(),
		}, rv, h.start))
	}
	v, err := vehicle.NewVehicle(id, vehicle.Details{Brand: "Renault", Model: "Clio"}, decimal.RequireFromString(dailyPrice), rs)
	require.NoError(t, err)
	return v
}

func newCampaign(t *testing.T, pct string) *campaign.Campaign {
	t.Helper()
	c, err := campaign.NewCampaign(uuid.New(), "Campaign "+pct, "", decimal.RequireFromString(pct), nil, nil)
	require.NoError(t, err)
	return c
}
