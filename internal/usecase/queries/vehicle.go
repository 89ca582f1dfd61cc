package queries

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/queries/vehicle_mock.go -package=queriesmock
type VehicleQueries interface {
	List(ctx context.Context, filter VehicleFilter) ([]*VehicleListItem, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*VehicleDetail, error)
	CheckAvailability(ctx context.Context, id uuid.UUID, start, end time.Time) (*AvailabilityView, error)
	BlockedDates(ctx context.Context, id uuid.UUID, from, to time.Time) (*BlockedDatesView, error)
	RatingStats(ctx context.Context, id uuid.UUID) (*RatingView, error)
	Quote(ctx context.Context, in QuoteInput) (*QuoteView, error)
	Colors(ctx context.Context) ([]string, error)
	Statuses() []string
}

type QuoteInput struct {
	VehicleID  uuid.UUID
	UserID     uuid.UUID
	Start      time.Time
	End        time.Time
	CampaignID *uuid.UUID
}

// VehicleFilter narrows the catalogue. Nil fields do not filter; both price
// bounds are inclusive.
type VehicleFilter struct {
	MinDailyPrice *decimal.Decimal
	MaxDailyPrice *decimal.Decimal
	Year          *int
	Color         *string
	Status        *vehicle.Status
}

func (f VehicleFilter) Validate() error {
	if f.MinDailyPrice != nil && f.MinDailyPrice.IsNegative() {
		return errs.Wrap(ErrInvalidVehicleFilter, "minDailyPrice is negative")
	}
	if f.MaxDailyPrice != nil && f.MaxDailyPrice.IsNegative() {
		return errs.Wrap(ErrInvalidVehicleFilter, "maxDailyPrice is negative")
	}
	if f.MinDailyPrice != nil && f.MaxDailyPrice != nil && f.MinDailyPrice.GreaterThan(*f.MaxDailyPrice) {
		return errs.Wrap(ErrInvalidVehicleFilter, "minDailyPrice exceeds maxDailyPrice")
	}
	return nil
}

type VehicleReadStore interface {
	FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error)
	FindSnapshots(ctx context.Context, filter VehicleFilter) ([]*shared.VehicleSnapshot, error)
	ListColors(ctx context.Context) ([]string, error)
}

// VehicleCache returns a nil snapshot on a miss, together with the generation
// Set expects back. Set skips the write when the vehicle was invalidated in
// between.
type VehicleCache interface {
	Get(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, int64, error)
	Set(ctx context.Context, snap *shared.VehicleSnapshot, generation int64) error
}

type vehicleQueriesImpl struct {
	store     VehicleReadStore
	cache     VehicleCache
	campaigns CampaignReadStore
	engine    *booking.Engine
	clock     clock.Clock
	cfg       config.BookingConfig
	calendar  *time.Location
}

func NewVehicleQueries(
	store VehicleReadStore,
	cache VehicleCache,
	campaigns CampaignReadStore,
	engine *booking.Engine,
	clk clock.Clock,
	cfg config.BookingConfig,
) (VehicleQueries, error) {
	loc, err := cfg.CalendarLocation()
	if err != nil {
		return nil, err
	}
	return &vehicleQueriesImpl{
		store:     store,
		cache:     cache,
		campaigns: campaigns,
		engine:    engine,
		clock:     clk,
		cfg:       cfg,
		calendar:  loc,
	}, nil
}

func (q *vehicleQueriesImpl) List(ctx context.Context, filter VehicleFilter) ([]*VehicleListItem, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	snaps, err := q.store.FindSnapshots(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*VehicleListItem, 0, len(snaps))
	for _, snap := range snaps {
		v, err := snap.ToDomain()
		if err != nil {
			return nil, errs.Wrapf(err, "vehicle %s", snap.ID)
		}
		stats := q.engine.RatingStats(v)
		items = append(items, &VehicleListItem{
			ID:            snap.ID,
			Brand:         snap.Brand,
			Model:         snap.Model,
			Year:          snap.Year,
			Color:         snap.Color,
			Status:        snap.Status,
			ImageURL:      snap.ImageURL,
			DailyPrice:    snap.DailyPrice,
			AverageRating: stats.AverageRating,
			ReviewCount:   stats.TotalReviews,
		})
	}
	return items, nil
}

func (q *vehicleQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*VehicleDetail, error) {
	snap, v, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &VehicleDetail{
		ID:           snap.ID,
		Brand:        snap.Brand,
		Model:        snap.Model,
		Year:         snap.Year,
		Color:        snap.Color,
		Status:       snap.Status,
		LicensePlate: snap.LicensePlate,
		ImageURL:     snap.ImageURL,
		Description:  snap.Description,
		DailyPrice:   snap.DailyPrice,
		Rating:       toRatingView(v.ID(), q.engine.RatingStats(v)),
		Reviews:      []ReviewView{},
	}
	for _, r := range snap.Reservations {
		if r.Review == nil {
			continue
		}
		detail.Reviews = append(detail.Reviews, toReviewView(r.ID, r.Review))
	}
	return detail, nil
}

func (q *vehicleQueriesImpl) CheckAvailability(ctx context.Context, id uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	interval, err := reservation.NewDateInterval(start, end)
	if err != nil {
		return nil, err
	}

	_, v, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		VehicleID: id,
		Start:     interval.Start(),
		End:       interval.End(),
		Available: q.engine.CheckAvailability(v, interval),
		Conflicts: []IntervalView{},
	}
	for _, r := range q.engine.Conflicts(v, interval) {
		view.Conflicts = append(view.Conflicts, IntervalView{Start: r.Interval().Start(), End: r.Interval().End()})
	}
	return view, nil
}

// BlockedDates reads from and to as calendar dates and spans the window from
// local midnight of from to local midnight of to.
func (q *vehicleQueriesImpl) BlockedDates(ctx context.Context, id uuid.UUID, from, to time.Time) (*BlockedDatesView, error) {
	window, err := reservation.NewDateInterval(q.localMidnight(from), q.localMidnight(to))
	if err != nil {
		return nil, err
	}
	if window.Duration() > q.cfg.MaxCalendarWindow {
		return nil, ErrWindowTooLarge
	}

	_, v, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}

	dates, err := q.engine.BlockedDates(v, window, q.calendar)
	if err != nil {
		return nil, err
	}

	return &BlockedDatesView{
		VehicleID: id,
		From:      window.Start(),
		To:        window.End(),
		TimeZone:  q.calendar.String(),
		Dates:     dates,
	}, nil
}

func (q *vehicleQueriesImpl) RatingStats(ctx context.Context, id uuid.UUID) (*RatingView, error) {
	_, v, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toRatingView(id, q.engine.RatingStats(v))
	return &view, nil
}

// Quote prices an interval without reserving it. A campaign must be one the
// user can still redeem.
func (q *vehicleQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	interval, err := reservation.NewDateInterval(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	_, v, err := q.load(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}

	var promo *campaign.Campaign
	if in.CampaignID != nil {
		snap, err := q.campaigns.FindAvailableForUser(ctx, in.UserID, *in.CampaignID, q.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrCampaignUnavailable
			}
			return nil, err
		}
		promo = snap.ToDomain()
	}

	cost, err := q.engine.ComputeCost(v.DailyPrice().Decimal(), interval, promo)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		VehicleID:      in.VehicleID,
		Start:          interval.Start(),
		End:            interval.End(),
		Days:           cost.Days,
		DailyPrice:     cost.DailyPrice.Decimal(),
		BaseCost:       cost.BaseCost.Decimal(),
		DiscountAmount: cost.DiscountAmount.Decimal(),
		FinalCost:      cost.FinalCost.Decimal(),
		CampaignID:     cost.CampaignID,
		Available:      q.engine.CheckAvailability(v, interval),
	}, nil
}

// Colors lists the distinct colors present in the fleet.
func (q *vehicleQueriesImpl) Colors(ctx context.Context) ([]string, error) {
	return q.store.ListColors(ctx)
}

func (q *vehicleQueriesImpl) Statuses() []string {
	all := vehicle.Statuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.String()
	}
	return out
}

// load reads through the cache. Cache failures only cost a database round trip
// and skip the write-back.
func (q *vehicleQueriesImpl) load(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, *vehicle.Vehicle, error) {
	cacheable := true
	snap, generation, err := q.cache.Get(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "vehicle cache read failed", "vehicle_id", id, "error", err)
		snap, cacheable = nil, false
	}

	if snap == nil {
		snap, err = q.store.FindSnapshot(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, ErrVehicleNotFound
			}
			return nil, nil, err
		}
		if cacheable {
			if err := q.cache.Set(ctx, snap, generation); err != nil {
				slog.WarnContext(ctx, "vehicle cache write failed", "vehicle_id", id, "error", err)
			}
		}
	}

	v, err := snap.ToDomain()
	if err != nil {
		return nil, nil, errs.Wrapf(err, "vehicle %s", id)
	}
	return snap, v, nil
}

func (q *vehicleQueriesImpl) localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, q.calendar)
}

func toRatingView(id uuid.UUID, s booking.RatingStats) RatingView {
	return RatingView{
		VehicleID:     id,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Counts[0],
		Rating2Count:  s.Counts[1],
		Rating3Count:  s.Counts[2],
		Rating4Count:  s.Counts[3],
		Rating5Count:  s.Counts[4],
	}
}

func toReviewView(reservationID uuid.UUID, rv *shared.ReviewSnapshot) ReviewView {
	return ReviewView{
		ID:            rv.ID,
		ReservationID: reservationID,
		Reviewer:      rv.ReviewerName,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		CreatedAt:     rv.CreatedAt,
	}
}
