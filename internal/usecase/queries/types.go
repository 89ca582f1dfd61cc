package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleListItem is one row of the catalogue.
type VehicleListItem struct {
	ID            uuid.UUID       `json:"id"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	Color         string          `json:"color"`
	Status        string          `json:"status"`
	ImageURL      string          `json:"imageUrl"`
	DailyPrice    decimal.Decimal `json:"dailyPrice"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
}

type VehicleDetail struct {
	ID           uuid.UUID       `json:"id"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Color        string          `json:"color"`
	Status       string          `json:"status"`
	LicensePlate string          `json:"licensePlate"`
	ImageURL     string          `json:"imageUrl"`
	Description  string          `json:"description"`
	DailyPrice   decimal.Decimal `json:"dailyPrice"`
	Rating       RatingView      `json:"rating"`
	Reviews      []ReviewView    `json:"reviews"`
}

type RatingView struct {
	VehicleID     uuid.UUID `json:"vehicleId"`
	TotalReviews  int       `json:"totalReviews"`
	AverageRating float64   `json:"averageRating"`
	Rating1Count  int       `json:"rating1Count"`
	Rating2Count  int       `json:"rating2Count"`
	Rating3Count  int       `json:"rating3Count"`
	Rating4Count  int       `json:"rating4Count"`
	Rating5Count  int       `json:"rating5Count"`
}

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	Reviewer      string    `json:"reviewer"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

type IntervalView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityView struct {
	VehicleID uuid.UUID      `json:"vehicleId"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	Available bool           `json:"available"`
	Conflicts []IntervalView `json:"conflicts"`
}

type BlockedDatesView struct {
	VehicleID uuid.UUID   `json:"vehicleId"`
	From      time.Time   `json:"from"`
	To        time.Time   `json:"to"`
	TimeZone  string      `json:"timeZone"`
	Dates     []time.Time `json:"dates"`
}

type QuoteView struct {
	VehicleID      uuid.UUID       `json:"vehicleId"`
	Start          time.Time       `json:"start"`
	End            time.Time       `json:"end"`
	Days           int             `json:"days"`
	DailyPrice     decimal.Decimal `json:"dailyPrice"`
	BaseCost       decimal.Decimal `json:"baseCost"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalCost      decimal.Decimal `json:"finalCost"`
	CampaignID     *uuid.UUID      `json:"campaignId,omitempty"`
	Available      bool            `json:"available"`
}

type ReservationView struct {
	ID                  uuid.UUID       `json:"id"`
	VehicleID           uuid.UUID       `json:"vehicleId"`
	VehicleName         string          `json:"vehicleName"`
	StartsAt            time.Time       `json:"startsAt"`
	EndsAt              time.Time       `json:"endsAt"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	CampaignID          *uuid.UUID      `json:"campaignId,omitempty"`
	CampaignTitle       *string         `json:"campaignTitle,omitempty"`
	PickupLocationID    uuid.UUID       `json:"pickupLocationId"`
	PickupLocationName  string          `json:"pickupLocationName"`
	DropoffLocationID   uuid.UUID       `json:"dropoffLocationId"`
	DropoffLocationName string          `json:"dropoffLocationName"`
	CreatedAt           time.Time       `json:"createdAt"`
	Completed           bool            `json:"completed"`
	Reviewable          bool            `json:"reviewable"`
	Review              *ReviewView     `json:"review,omitempty"`
}

type CampaignView struct {
	ID                 uuid.UUID       `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	ValidFrom          *time.Time      `json:"validFrom,omitempty"`
	ValidTo            *time.Time      `json:"validTo,omitempty"`
}

type LocationView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
