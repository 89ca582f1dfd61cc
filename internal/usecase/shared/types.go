package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleSnapshot is a vehicle row plus every reservation held against it.
// It is also the cached representation, hence the json tags.
type VehicleSnapshot struct {
	ID           uuid.UUID             `json:"id"`
	Brand        string                `json:"brand"`
	Model        string                `json:"model"`
	Year         int                   `json:"year"`
	Color        string                `json:"color"`
	LicensePlate string                `json:"licensePlate"`
	ImageURL     string                `json:"imageUrl"`
	Description  string                `json:"description"`
	Status       string                `json:"status"`
	DailyPrice   decimal.Decimal       `json:"dailyPrice"`
	Reservations []ReservationSnapshot `json:"reservations"`
}

type ReservationSnapshot struct {
	ID                uuid.UUID       `json:"id"`
	VehicleID         uuid.UUID       `json:"vehicleId"`
	UserID            uuid.UUID       `json:"userId"`
	StartsAt          time.Time       `json:"startsAt"`
	EndsAt            time.Time       `json:"endsAt"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	CampaignID        *uuid.UUID      `json:"campaignId,omitempty"`
	PickupLocationID  uuid.UUID       `json:"pickupLocationId"`
	DropoffLocationID uuid.UUID       `json:"dropoffLocationId"`
	CreatedAt         time.Time       `json:"createdAt"`
	Review            *ReviewSnapshot `json:"review,omitempty"`
}

type ReviewSnapshot struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CampaignSnapshot struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	DiscountPercentage decimal.Decimal
	ValidFrom          *time.Time
	ValidTo            *time.Time
}

type UserSnapshot struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)
