package request

import (
	"time"

	"github.com/google/uuid"
)

type IntervalQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type BlockedDatesQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02" time_utc:"1"`
}

type QuoteRequest struct {
	StartsAt   time.Time  `json:"startsAt" binding:"required"`
	EndsAt     time.Time  `json:"endsAt" binding:"required"`
	CampaignID *uuid.UUID `json:"campaignId,omitempty"`
}

// VehicleListQuery carries the catalogue filters. Prices stay strings until
// parsed as decimals.
type VehicleListQuery struct {
	MinDailyPrice string `form:"minDailyPrice"`
	MaxDailyPrice string `form:"maxDailyPrice"`
	Year          *int   `form:"year" binding:"omitempty,min=1900,max=2100"`
	Color         string `form:"color" binding:"max=50"`
	Status        string `form:"status"`
}

type ListQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
