//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"
	"vehicle-rental/tests/common/builder"
	queriesmock "vehicle-rental/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var queryNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type VehicleQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *queriesmock.MockVehicleReadStore
	cache     *queriesmock.MockVehicleCache
	campaigns *queriesmock.MockCampaignReadStore
	queries   queries.VehicleQueries
}

func (s *VehicleQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockVehicleReadStore(s.ctrl)
	s.cache = queriesmock.NewMockVehicleCache(s.ctrl)
	s.campaigns = queriesmock.NewMockCampaignReadStore(s.ctrl)

	q, err := queries.NewVehicleQueries(s.store, s.cache, s.campaigns, booking.NewEngine(), clock.NewMockClock(queryNow), config.NewTestConfig().Booking)
	s.Require().NoError(err)
	s.queries = q
}

func (s *VehicleQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestVehicleQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleQueriesTestSuite))
}

// expectMiss wires a cache miss followed by a store read that is written back.
func (s *VehicleQueriesTestSuite) expectMiss(v *builder.VehicleBuilder) {
	snap := v.BuildSnapshot()
	s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, int64(7), nil)
	s.store.EXPECT().FindSnapshot(gomock.Any(), v.ID).Return(snap, nil)
	s.cache.EXPECT().Set(gomock.Any(), snap, int64(7)).Return(nil)
}

func (s *VehicleQueriesTestSuite) TestList() {
	rated := builder.NewVehicleBuilder()
	rated.Reserved(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 2).WithReview(5)
	rated.Reserved(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 2).WithReview(4)
	plain := builder.NewVehicleBuilder().With(func(b *builder.VehicleBuilder) { b.Brand = "Fiat"; b.Model = "Egea" })

	s.store.EXPECT().FindSnapshots(gomock.Any(), queries.VehicleFilter{}).Return([]*shared.VehicleSnapshot{rated.BuildSnapshot(), plain.BuildSnapshot()}, nil)

	items, err := s.queries.List(context.Background(), queries.VehicleFilter{})

	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(rated.ID, items[0].ID)
	s.Equal(4.5, items[0].AverageRating)
	s.Equal(2, items[0].ReviewCount)
	s.Equal("Fiat", items[1].Brand)
	s.Equal(0.0, items[1].AverageRating)
	s.Equal(0, items[1].ReviewCount)
}

func (s *VehicleQueriesTestSuite) TestList_PassesFilterToStore() {
	minPrice, maxPrice := decimal.NewFromInt(50), decimal.NewFromInt(150)
	status := vehicle.StatusAvailable
	filter := queries.VehicleFilter{MinDailyPrice: &minPrice, MaxDailyPrice: &maxPrice, Status: &status}
	v := builder.NewVehicleBuilder()

	s.store.EXPECT().FindSnapshots(gomock.Any(), filter).Return([]*shared.VehicleSnapshot{v.BuildSnapshot()}, nil)

	items, err := s.queries.List(context.Background(), filter)

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("available", items[0].Status)
}

func (s *VehicleQueriesTestSuite) TestList_RejectsInvalidFilter() {
	low, high, negative := decimal.NewFromInt(50), decimal.NewFromInt(150), decimal.NewFromInt(-1)

	tests := []struct {
		name   string
		filter queries.VehicleFilter
	}{
		{name: "min above max", filter: queries.VehicleFilter{MinDailyPrice: &high, MaxDailyPrice: &low}},
		{name: "negative min", filter: queries.VehicleFilter{MinDailyPrice: &negative}},
		{name: "negative max", filter: queries.VehicleFilter{MaxDailyPrice: &negative}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.queries.List(context.Background(), tt.filter)

			s.True(errs.Is(err, queries.ErrInvalidVehicleFilter), "got %v", err)
		})
	}
}

func (s *VehicleQueriesTestSuite) TestColorsAndStatuses() {
	s.store.EXPECT().ListColors(gomock.Any()).Return([]string{"Black", "White"}, nil)

	colors, err := s.queries.Colors(context.Background())

	s.Require().NoError(err)
	s.Equal([]string{"Black", "White"}, colors)
	s.Equal([]string{"available", "rented", "maintenance"}, s.queries.Statuses())
}

func (s *VehicleQueriesTestSuite) TestGetDetail_CacheMiss() {
	v := builder.NewVehicleBuilder()
	reviewed := v.Reserved(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 2).WithReview(3)
	v.Reserved(time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), 2)
	s.expectMiss(v)

	detail, err := s.queries.GetDetail(context.Background(), v.ID)

	s.Require().NoError(err)
	s.Equal(v.ID, detail.ID)
	s.True(v.DailyPrice.Equal(detail.DailyPrice))
	s.Equal(1, detail.Rating.TotalReviews)
	s.Equal(1, detail.Rating.Rating3Count)
	s.Require().Len(detail.Reviews, 1)
	s.Equal(reviewed.ID, detail.Reviews[0].ReservationID)
	s.Equal(reviewed.Review.ReviewerName, detail.Reviews[0].Reviewer)
}

func (s *VehicleQueriesTestSuite) TestGetDetail_CacheHitSkipsStore() {
	v := builder.NewVehicleBuilder()
	s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(v.BuildSnapshot(), int64(0), nil)

	detail, err := s.queries.GetDetail(context.Background(), v.ID)

	s.Require().NoError(err)
	s.Equal("Renault", detail.Brand)
	s.Empty(detail.Reviews)
}

func (s *VehicleQueriesTestSuite) TestGetDetail_CacheReadFailureSkipsWriteBack() {
	v := builder.NewVehicleBuilder()
	s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, int64(0), assert.AnError)
	s.store.EXPECT().FindSnapshot(gomock.Any(), v.ID).Return(v.BuildSnapshot(), nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	detail, err := s.queries.GetDetail(context.Background(), v.ID)

	s.Require().NoError(err)
	s.Equal(v.ID, detail.ID)
}

func (s *VehicleQueriesTestSuite) TestGetDetail_CacheWriteFailureIsIgnored() {
	v := builder.NewVehicleBuilder()
	s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, int64(3), nil)
	s.store.EXPECT().FindSnapshot(gomock.Any(), v.ID).Return(v.BuildSnapshot(), nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), int64(3)).Return(assert.AnError)

	detail, err := s.queries.GetDetail(context.Background(), v.ID)

	s.Require().NoError(err)
	s.Equal(v.ID, detail.ID)
}

func (s *VehicleQueriesTestSuite) TestGetDetail_NotFound() {
	id := uuid.New()
	s.cache.EXPECT().Get(gomock.Any(), id).Return(nil, int64(0), nil)
	s.store.EXPECT().FindSnapshot(gomock.Any(), id).Return(nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound))

	_, err := s.queries.GetDetail(context.Background(), id)

	s.True(errs.Is(err, queries.ErrVehicleNotFound))
}

func (s *VehicleQueriesTestSuite) TestCheckAvailability() {
	booked := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		start, end    time.Time
		wantAvailable bool
		wantConflicts int
	}{
		{
			name:          "free interval",
			start:         booked.Add(-5 * reservation.Day),
			end:           booked.Add(-2 * reservation.Day),
			wantAvailable: true,
		},
		{
			name:          "touching the reservation end is free",
			start:         booked.Add(3 * reservation.Day),
			end:           booked.Add(5 * reservation.Day),
			wantAvailable: true,
		},
		{
			name:          "overlapping interval",
			start:         booked.Add(reservation.Day),
			end:           booked.Add(6 * reservation.Day),
			wantAvailable: false,
			wantConflicts: 1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			v := builder.NewVehicleBuilder()
			v.Reserved(booked, 3)
			s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(v.BuildSnapshot(), int64(0), nil)

			view, err := s.queries.CheckAvailability(context.Background(), v.ID, tt.start, tt.end)

			s.Require().NoError(err)
			s.Equal(tt.wantAvailable, view.Available)
			s.Len(view.Conflicts, tt.wantConflicts)
		})
	}
}

func (s *VehicleQueriesTestSuite) TestCheckAvailability_InvalidIntervalSkipsStore() {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.queries.CheckAvailability(context.Background(), uuid.New(), start, start)

	s.True(errs.Is(err, reservation.ErrInvalidInterval))
}

func (s *VehicleQueriesTestSuite) TestBlockedDates() {
	v := builder.NewVehicleBuilder()
	v.Reserved(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), 2)
	s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(v.BuildSnapshot(), int64(0), nil)

	from := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	view, err := s.queries.BlockedDates(context.Background(), v.ID, from, from.Add(7*reservation.Day))

	s.Require().NoError(err)
	want := []time.Time{
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, view.Dates); diff != "" {
		s.Fail("blocked dates mismatch (-want +got)", diff)
	}
	s.Equal("UTC", view.TimeZone)
}

func TestVehicleQueries_BlockedDates_LocalCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockVehicleReadStore(ctrl)
	cache := queriesmock.NewMockVehicleCache(ctrl)

	cfg := config.NewTestConfig().Booking
	cfg.CalendarTimeZone = "Europe/Istanbul"
	q, err := queries.NewVehicleQueries(store, cache, nil, booking.NewEngine(), clock.NewMockClock(queryNow), cfg)
	require.NoError(t, err)

	istanbul, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	// Starts at 22:00 UTC on Jun 3, which is already Jun 4 in Istanbul.
	v := builder.NewVehicleBuilder()
	v.Reserved(time.Date(2025, 6, 3, 22, 0, 0, 0, time.UTC), 1)
	cache.EXPECT().Get(gomock.Any(), v.ID).Return(v.BuildSnapshot(), int64(0), nil)

	// from and to arrive as calendar dates at UTC midnight.
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	view, err := q.BlockedDates(context.Background(), v.ID, from, to)

	require.NoError(t, err)
	assert.Empty(t, view.Dates, "Jun 4 local lies outside [Jun 1, Jun 4)")
	assert.True(t, view.From.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, istanbul)))
	assert.True(t, view.To.Equal(time.Date(2025, 6, 4, 0, 0, 0, 0, istanbul)))
	assert.Equal(t, "Europe/Istanbul", view.TimeZone)
}

func (s *VehicleQueriesTestSuite) TestBlockedDates_WindowTooLarge() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.queries.BlockedDates(context.Background(), uuid.New(), from, from.Add(400*reservation.Day))

	s.True(errs.Is(err, queries.ErrWindowTooLarge))
}

func (s *VehicleQueriesTestSuite) TestRatingStats() {
	v := builder.NewVehicleBuilder()
	for i, rating := range []int{5, 5, 4, 1} {
		v.Reserved(time.Date(2025, 1, 1+i*3, 0, 0, 0, 0, time.UTC), 2).WithReview(rating)
	}
	s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(v.BuildSnapshot(), int64(0), nil)

	view, err := s.queries.RatingStats(context.Background(), v.ID)

	s.Require().NoError(err)
	want := &queries.RatingView{
		VehicleID:     v.ID,
		TotalReviews:  4,
		AverageRating: 3.75,
		Rating1Count:  1,
		Rating4Count:  1,
		Rating5Count:  2,
	}
	if diff := cmp.Diff(want, view); diff != "" {
		s.Fail("rating mismatch (-want +got)", diff)
	}
}

func (s *VehicleQueriesTestSuite) TestQuote() {
	start := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	promo := builder.NewCampaignBuilder()

	tests := []struct {
		name         string
		end          time.Time
		campaignID   *uuid.UUID
		setup        func(vehicleID uuid.UUID)
		wantDays     int
		wantDiscount string
		wantFinal    string
		wantErr      error
	}{
		{
			name:         "no campaign",
			end:          start.Add(3 * reservation.Day),
			wantDays:     3,
			wantDiscount: "0",
			wantFinal:    "300",
		},
		{
			name:         "partial day is billed as a full day",
			end:          start.Add(2*reservation.Day + time.Hour),
			wantDays:     3,
			wantDiscount: "0",
			wantFinal:    "300",
		},
		{
			name:       "campaign applied",
			end:        start.Add(3 * reservation.Day),
			campaignID: &promo.ID,
			setup: func(uuid.UUID) {
				s.campaigns.EXPECT().FindAvailableForUser(gomock.Any(), userID, promo.ID, queryNow).Return(promo.BuildSnapshot(), nil)
			},
			wantDays:     3,
			wantDiscount: "60",
			wantFinal:    "240",
		},
		{
			name:       "campaign already redeemed",
			end:        start.Add(3 * reservation.Day),
			campaignID: &promo.ID,
			setup: func(uuid.UUID) {
				s.campaigns.EXPECT().FindAvailableForUser(gomock.Any(), userID, promo.ID, queryNow).
					Return(nil, infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrCampaignUnavailable,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			v := builder.NewVehicleBuilder()
			s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(v.BuildSnapshot(), int64(0), nil)
			if tt.setup != nil {
				tt.setup(v.ID)
			}

			quote, err := s.queries.Quote(context.Background(), queries.QuoteInput{
				VehicleID:  v.ID,
				UserID:     userID,
				Start:      start,
				End:        tt.end,
				CampaignID: tt.campaignID,
			})

			if tt.wantErr != nil {
				s.True(errs.Is(err, tt.wantErr), "expected [%v] but got [%v]", tt.wantErr, err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.wantDays, quote.Days)
			s.True(decimal.RequireFromString(tt.wantDiscount).Equal(quote.DiscountAmount), "discount %s", quote.DiscountAmount)
			s.True(decimal.RequireFromString(tt.wantFinal).Equal(quote.FinalCost), "final %s", quote.FinalCost)
			s.Equal(tt.campaignID, quote.CampaignID)
			s.True(quote.Available)
		})
	}
}

func TestNewVehicleQueries_RejectsUnknownTimeZone(t *testing.T) {
	cfg := config.NewTestConfig().Booking
	cfg.CalendarTimeZone = "Mars/Olympus_Mons"

	_, err := queries.NewVehicleQueries(nil, nil, nil, booking.NewEngine(), clock.NewMockClock(queryNow), cfg)

	require.Error(t, err)
}
