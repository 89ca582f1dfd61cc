//go:build unit

package booking_test

import (
	"testing"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEngine_ComputeCost(t *testing.T) {
	pricing := booking.NewPricingEngine()

	cases := []struct {
		name         string
		dailyPrice   string
		duration     time.Duration
		campaignPct  string
		wantDays     int
		wantBase     string
		wantDiscount string
		wantFinal    string
	}{
		{name: "three days with 20% campaign", dailyPrice: "100", duration: 72 * time.Hour, campaignPct: "20", wantDays: 3, wantBase: "300.00", wantDiscount: "60.00", wantFinal: "240.00"},
		{name: "three days without campaign", dailyPrice: "100", duration: 72 * time.Hour, wantDays: 3, wantBase: "300.00", wantDiscount: "0.00", wantFinal: "300.00"},
		{name: "partial day rounds up", dailyPrice: "100", duration: 25 * time.Hour, wantDays: 2, wantBase: "200.00", wantDiscount: "0.00", wantFinal: "200.00"},
		{name: "zero percent campaign", dailyPrice: "80", duration: 24 * time.Hour, campaignPct: "0", wantDays: 1, wantBase: "80.00", wantDiscount: "0.00", wantFinal: "80.00"},
		{name: "hundred percent campaign", dailyPrice: "80", duration: 48 * time.Hour, campaignPct: "100", wantDays: 2, wantBase: "160.00", wantDiscount: "160.00", wantFinal: "0.00"},
		{name: "free vehicle", dailyPrice: "0", duration: 48 * time.Hour, campaignPct: "50", wantDays: 2, wantBase: "0.00", wantDiscount: "0.00", wantFinal: "0.00"},
		{name: "cents survive", dailyPrice: "33.33", duration: 72 * time.Hour, campaignPct: "15", wantDays: 3, wantBase: "99.99", wantDiscount: "15.00", wantFinal: "84.99"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var camp *campaign.Campaign
			if c.campaignPct != "" {
				camp = newCampaign(t, c.campaignPct)
			}

			got, err := pricing.ComputeCost(decimal.RequireFromString(c.dailyPrice), span(t, day0, day0.Add(c.duration)), camp)
			require.NoError(t, err)

			assert.Equal(t, c.wantDays, got.Days)
			assert.Equal(t, c.wantBase, got.BaseCost.String())
			assert.Equal(t, c.wantDiscount, got.DiscountAmount.String())
			assert.Equal(t, c.wantFinal, got.FinalCost.String())
			if camp == nil {
				assert.Nil(t, got.CampaignID)
			} else {
				require.NotNil(t, got.CampaignID)
				assert.Equal(t, camp.ID(), *got.CampaignID)
			}
		})
	}
}

func TestPricingEngine_ComputeCost_Exactness(t *testing.T) {
	pricing := booking.NewPricingEngine()
	camp := newCampaign(t, "12.5")

	got, err := pricing.ComputeCost(decimal.RequireFromString("19.99"), span(t, day0, day(7)), camp)
	require.NoError(t, err)

	assert.True(t, got.BaseCost.Decimal().Equal(decimal.RequireFromString("139.93")))
	assert.True(t, got.DiscountAmount.Decimal().Equal(decimal.RequireFromString("17.49125")))
	assert.True(t, got.FinalCost.Decimal().Equal(decimal.RequireFromString("122.43875")))
	assert.True(t, got.BaseCost.Decimal().Equal(got.DiscountAmount.Decimal().Add(got.FinalCost.Decimal())))

	for range 100 {
		again, err := pricing.ComputeCost(decimal.RequireFromString("19.99"), span(t, day0, day(7)), camp)
		require.NoError(t, err)
		assert.True(t, again.FinalCost.Equal(got.FinalCost))
	}
}

func TestPricingEngine_ComputeCost_Errors(t *testing.T) {
	pricing := booking.NewPricingEngine()

	t.Run("negative daily price", func(t *testing.T) {
		got, err := pricing.ComputeCost(decimal.NewFromInt(-1), span(t, day0, day(1)), nil)
		require.ErrorIs(t, err, booking.ErrInvalidPrice)
		assert.Equal(t, booking.CostBreakdown{}, got)
	})

	t.Run("negative price is reported before a bad interval", func(t *testing.T) {
		_, err := pricing.ComputeCost(decimal.NewFromInt(-1), reservation.DateInterval{}, nil)
		require.ErrorIs(t, err, booking.ErrInvalidPrice)
	})

	t.Run("zero interval", func(t *testing.T) {
		got, err := pricing.ComputeCost(decimal.NewFromInt(100), reservation.DateInterval{}, nil)
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
		assert.Equal(t, booking.CostBreakdown{}, got)
	})

	t.Run("discount out of range", func(t *testing.T) {
		for _, pct := range []int64{-5, 101} {
			camp := campaign.ReconstructCampaign(uuid.New(), "bad", "", decimal.NewFromInt(pct), nil, nil)
			got, err := pricing.ComputeCost(decimal.NewFromInt(100), span(t, day0, day(1)), camp)
			require.ErrorIs(t, err, booking.ErrInvalidDiscount)
			assert.Equal(t, booking.CostBreakdown{}, got)
		}
	})
}
