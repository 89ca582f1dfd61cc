//go:build unit

package vehicle_test

import (
	"testing"
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	details := vehicle.Details{Brand: "Fiat", Model: "Egea", Year: 2022}

	t.Run("valid", func(t *testing.T) {
		v, err := vehicle.NewVehicle(uuid.New(), details, decimal.NewFromInt(100), nil)
		require.NoError(t, err)
		assert.Equal(t, "100.00", v.DailyPrice().String())
		assert.Equal(t, "Fiat Egea", v.DisplayName())
		assert.Empty(t, v.Reservations())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := vehicle.NewVehicle(uuid.New(), details, decimal.Zero, nil)
		require.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		v, err := vehicle.NewVehicle(uuid.New(), details, decimal.NewFromInt(-1), nil)
		require.ErrorIs(t, err, vehicle.ErrInvalidPrice)
		require.Nil(t, v)
	})

	t.Run("empty model", func(t *testing.T) {
		_, err := vehicle.NewVehicle(uuid.New(), vehicle.Details{Model: " "}, decimal.NewFromInt(1), nil)
		require.ErrorIs(t, err, vehicle.ErrEmptyModel)
	})

	t.Run("reservation of another vehicle", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		i, err := reservation.NewDateInterval(start, start.Add(24*time.Hour))
		require.NoError(t, err)
		r := reservation.ReconstructReservation(uuid.New(), reservation.Params{
			VehicleID: uuid.New(),
			Interval:  i,
		}, nil, start)

		_, err = vehicle.NewVehicle(uuid.New(), details, decimal.NewFromInt(1), []*reservation.Reservation{r})
		require.ErrorIs(t, err, vehicle.ErrForeignRental)
	})

	t.Run("snapshot is not shared with the caller", func(t *testing.T) {
		id := uuid.New()
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		i, err := reservation.NewDateInterval(start, start.Add(24*time.Hour))
		require.NoError(t, err)
		rs := []*reservation.Reservation{
			reservation.ReconstructReservation(uuid.New(), reservation.Params{VehicleID: id, Interval: i}, nil, start),
		}

		v, err := vehicle.NewVehicle(id, details, decimal.NewFromInt(1), rs)
		require.NoError(t, err)
		rs[0] = nil
		out := v.Reservations()
		out[0] = nil

		require.Len(t, v.Reservations(), 1)
		assert.NotNil(t, v.Reservations()[0])
	})
}
