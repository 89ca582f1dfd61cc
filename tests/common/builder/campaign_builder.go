//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CampaignBuilder struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	DiscountPercentage decimal.Decimal
	ValidFrom          *time.Time
	ValidTo            *time.Time
}

func NewCampaignBuilder() *CampaignBuilder {
	return &CampaignBuilder{
		ID:                 uuid.New(),
		Title:              "Spring Deal",
		Description:        "20% off spring rentals",
		DiscountPercentage: decimal.NewFromInt(20),
	}
}

func (b *CampaignBuilder) With(mutate func(*CampaignBuilder)) *CampaignBuilder {
	mutate(b)
	return b
}

func (b *CampaignBuilder) BuildSnapshot() *shared.CampaignSnapshot {
	return &shared.CampaignSnapshot{
		ID:                 b.ID,
		Title:              b.Title,
		Description:        b.Description,
		DiscountPercentage: b.DiscountPercentage,
		ValidFrom:          b.ValidFrom,
		ValidTo:            b.ValidTo,
	}
}

func (b *CampaignBuilder) BuildDomain() *campaign.Campaign {
	return b.BuildSnapshot().ToDomain()
}
