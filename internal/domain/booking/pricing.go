package booking

import (
	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CostBreakdown struct {
	Days           int
	DailyPrice     reservation.Money
	BaseCost       reservation.Money
	DiscountAmount reservation.Money
	FinalCost      reservation.Money
	CampaignID     *uuid.UUID
}

// PricingEngine applies at most one campaign to days * dailyPrice.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

func (PricingEngine) ComputeCost(dailyPrice decimal.Decimal, interval reservation.DateInterval, c *campaign.Campaign) (CostBreakdown, error) {
	price, err := reservation.NewMoney(dailyPrice)
	if err != nil {
		return CostBreakdown{}, ErrInvalidPrice
	}
	if interval.IsZero() {
		return CostBreakdown{}, ErrInvalidInterval
	}

	days := interval.DurationInWholeDays()
	base := price.Times(days)

	out := CostBreakdown{
		Days:           days,
		DailyPrice:     price,
		BaseCost:       base,
		DiscountAmount: reservation.ZeroMoney(),
		FinalCost:      base,
	}
	if c == nil {
		return out, nil
	}

	if !c.Discount().Valid() {
		return CostBreakdown{}, ErrInvalidDiscount
	}
	discount := base.Percent(c.Discount().Decimal())
	id := c.ID()

	out.DiscountAmount = discount
	out.FinalCost = base.Sub(discount)
	out.CampaignID = &id
	return out, nil
}
