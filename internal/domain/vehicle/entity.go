package vehicle

import (
	"strings"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice  = errs.New("daily price cannot be negative")
	ErrEmptyModel    = errs.New("vehicle model cannot be empty")
	ErrModelTooLong  = errs.New("vehicle model is too long (max 255 characters)")
	ErrForeignRental = errs.New("reservation belongs to another vehicle")
)

const MaxModelLength = 255

// Details is display metadata. The booking logic never reads it.
type Details struct {
	Brand        string
	Model        string
	Year         int
	Color        string
	LicensePlate string
	ImageURL     string
	Description  string
	Status       Status
}

// Vehicle is a read-only snapshot: a daily price and every reservation
// currently held against it.
type Vehicle struct {
	id           uuid.UUID
	details      Details
	dailyPrice   reservation.Money
	reservations []*reservation.Reservation
}

func NewVehicle(id uuid.UUID, details Details, dailyPrice decimal.Decimal, reservations []*reservation.Reservation) (*Vehicle, error) {
	price, err := reservation.NewMoney(dailyPrice)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	details.Model = strings.TrimSpace(details.Model)
	if details.Model == "" {
		return nil, ErrEmptyModel
	}
	if len(details.Model) > MaxModelLength {
		return nil, ErrModelTooLong
	}

	for _, r := range reservations {
		if r.VehicleID() != id {
			return nil, ErrForeignRental
		}
	}

	held := make([]*reservation.Reservation, len(reservations))
	copy(held, reservations)

	return &Vehicle{
		id:           id,
		details:      details,
		dailyPrice:   price,
		reservations: held,
	}, nil
}

func (v *Vehicle) ID() uuid.UUID                 { return v.id }
func (v *Vehicle) Details() Details              { return v.details }
func (v *Vehicle) DailyPrice() reservation.Money { return v.dailyPrice }

// Reservations returns a copy; the snapshot itself is never mutated.
func (v *Vehicle) Reservations() []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(v.reservations))
	copy(out, v.reservations)
	return out
}

func (v *Vehicle) DisplayName() string {
	if v.details.Brand == "" {
		return v.details.Model
	}
	return v.details.Brand + " " + v.details.Model
}
