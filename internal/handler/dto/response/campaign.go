package response

import (
	"time"

	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CampaignResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DiscountPercentage string     `json:"discountPercentage"`
	ValidFrom          *time.Time `json:"validFrom,omitempty"`
	ValidTo            *time.Time `json:"validTo,omitempty"`
}

func FromCampaignViews(views []*queries.CampaignView) ([]*CampaignResponse, error) {
	res := make([]*CampaignResponse, 0, len(views))
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

type LocationResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

func FromLocationViews(views []*queries.LocationView) ([]*LocationResponse, error) {
	res := make([]*LocationResponse, 0, len(views))
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}
