package response

import (
	"time"

	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

const calendarDateLayout = "2006-01-02"

type VehicleListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Color         string    `json:"color"`
	Status        string    `json:"status"`
	ImageURL      string    `json:"imageUrl"`
	DailyPrice    string    `json:"dailyPrice"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
}

func FromVehicleList(items []*queries.VehicleListItem) ([]*VehicleListItemResponse, error) {
	res := make([]*VehicleListItemResponse, 0, len(items))
	if err := copyView(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type VehicleDetailResponse struct {
	ID           uuid.UUID             `json:"id"`
	Brand        string                `json:"brand"`
	Model        string                `json:"model"`
	Year         int                   `json:"year"`
	Color        string                `json:"color"`
	Status       string                `json:"status"`
	LicensePlate string                `json:"licensePlate"`
	ImageURL     string                `json:"imageUrl"`
	Description  string                `json:"description"`
	DailyPrice   string                `json:"dailyPrice"`
	Rating       RatingResponse        `json:"rating"`
	Reviews      []*ReviewItemResponse `json:"reviews"`
}

func FromVehicleDetail(v *queries.VehicleDetail) (*VehicleDetailResponse, error) {
	rating, err := FromRatingView(&v.Rating)
	if err != nil {
		return nil, err
	}

	res := &VehicleDetailResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Color:        v.Color,
		Status:       v.Status,
		LicensePlate: v.LicensePlate,
		ImageURL:     v.ImageURL,
		Description:  v.Description,
		DailyPrice:   money(v.DailyPrice),
		Rating:       *rating,
		Reviews:      make([]*ReviewItemResponse, len(v.Reviews)),
	}
	for i := range v.Reviews {
		res.Reviews[i] = FromReviewView(&v.Reviews[i])
	}
	return res, nil
}

type IntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	VehicleID uuid.UUID          `json:"vehicleId"`
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Available bool               `json:"available"`
	Conflicts []IntervalResponse `json:"conflicts"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		VehicleID: v.VehicleID,
		Start:     v.Start,
		End:       v.End,
		Available: v.Available,
		Conflicts: make([]IntervalResponse, len(v.Conflicts)),
	}
	for i, c := range v.Conflicts {
		res.Conflicts[i] = IntervalResponse{Start: c.Start, End: c.End}
	}
	return res
}

// BlockedDatesResponse lists calendar days (YYYY-MM-DD) in TimeZone.
type BlockedDatesResponse struct {
	VehicleID uuid.UUID `json:"vehicleId"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	TimeZone  string    `json:"timeZone"`
	Dates     []string  `json:"dates"`
}

func FromBlockedDatesView(v *queries.BlockedDatesView) *BlockedDatesResponse {
	res := &BlockedDatesResponse{
		VehicleID: v.VehicleID,
		From:      v.From,
		To:        v.To,
		TimeZone:  v.TimeZone,
		Dates:     make([]string, len(v.Dates)),
	}
	for i, d := range v.Dates {
		res.Dates[i] = d.Format(calendarDateLayout)
	}
	return res
}

type QuoteResponse struct {
	VehicleID      uuid.UUID  `json:"vehicleId"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	Days           int        `json:"days"`
	DailyPrice     string     `json:"dailyPrice"`
	BaseCost       string     `json:"baseCost"`
	DiscountAmount string     `json:"discountAmount"`
	FinalCost      string     `json:"finalCost"`
	CampaignID     *uuid.UUID `json:"campaignId,omitempty"`
	Available      bool       `json:"available"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		VehicleID:      v.VehicleID,
		Start:          v.Start,
		End:            v.End,
		Days:           v.Days,
		DailyPrice:     money(v.DailyPrice),
		BaseCost:       money(v.BaseCost),
		DiscountAmount: money(v.DiscountAmount),
		FinalCost:      money(v.FinalCost),
		CampaignID:     v.CampaignID,
		Available:      v.Available,
	}
}
