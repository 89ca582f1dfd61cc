//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleBuilder struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         int
	Color        string
	LicensePlate string
	Status       vehicle.Status
	DailyPrice   decimal.Decimal
	Reservations []*ReservationBuilder
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:           uuid.New(),
		Brand:        "Renault",
		Model:        "Clio",
		Year:         2023,
		Color:        "White",
		LicensePlate: "34 ABC 123",
		Status:       vehicle.StatusAvailable,
		DailyPrice:   decimal.NewFromInt(100),
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

// Reserved adds a reservation on this vehicle from start for the given number of days.
func (b *VehicleBuilder) Reserved(start time.Time, days int) *ReservationBuilder {
	r := NewReservationBuilder().With(func(r *ReservationBuilder) {
		r.VehicleID = b.ID
		r.StartsAt = start
		r.EndsAt = start.Add(time.Duration(days) * reservation.Day)
	})
	b.Reservations = append(b.Reservations, r)
	return r
}

func (b *VehicleBuilder) BuildSnapshot() *shared.VehicleSnapshot {
	snap := &shared.VehicleSnapshot{
		ID:           b.ID,
		Brand:        b.Brand,
		Model:        b.Model,
		Year:         b.Year,
		Color:        b.Color,
		LicensePlate: b.LicensePlate,
		Status:       b.Status.String(),
		DailyPrice:   b.DailyPrice,
		Reservations: []shared.ReservationSnapshot{},
	}
	for _, r := range b.Reservations {
		snap.Reservations = append(snap.Reservations, r.BuildSnapshot())
	}
	return snap
}

func (b *VehicleBuilder) BuildDomain() *vehicle.Vehicle {
	v, err := b.BuildSnapshot().ToDomain()
	if err != nil {
		panic(err)
	}
	return v
}
