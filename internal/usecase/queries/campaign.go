package queries

import (
	"context"
	"time"

	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/queries/campaign_mock.go -package=queriesmock
type CampaignQueries interface {
	List(ctx context.Context) ([]*CampaignView, error)
	ListAvailableForUser(ctx context.Context, userID uuid.UUID) ([]*CampaignView, error)
}

// CampaignReadStore lists campaigns that are inside their validity window and
// not yet redeemed by the user.
type CampaignReadStore interface {
	ListAll(ctx context.Context) ([]*shared.CampaignSnapshot, error)
	ListAvailableForUser(ctx context.Context, userID uuid.UUID, at time.Time) ([]*shared.CampaignSnapshot, error)
	FindAvailableForUser(ctx context.Context, userID, campaignID uuid.UUID, at time.Time) (*shared.CampaignSnapshot, error)
}

type campaignQueriesImpl struct {
	store CampaignReadStore
	clock clock.Clock
}

func NewCampaignQueries(store CampaignReadStore, clk clock.Clock) CampaignQueries {
	return &campaignQueriesImpl{store: store, clock: clk}
}

// List returns every campaign, newest start first, regardless of validity.
func (q *campaignQueriesImpl) List(ctx context.Context) ([]*CampaignView, error) {
	snaps, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toCampaignViews(snaps), nil
}

func (q *campaignQueriesImpl) ListAvailableForUser(ctx context.Context, userID uuid.UUID) ([]*CampaignView, error) {
	snaps, err := q.store.ListAvailableForUser(ctx, userID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return toCampaignViews(snaps), nil
}

func toCampaignViews(snaps []*shared.CampaignSnapshot) []*CampaignView {
	views := make([]*CampaignView, 0, len(snaps))
	for _, s := range snaps {
		views = append(views, &CampaignView{
			ID:                 s.ID,
			Title:              s.Title,
			Description:        s.Description,
			DiscountPercentage: s.DiscountPercentage,
			ValidFrom:          s.ValidFrom,
			ValidTo:            s.ValidTo,
		})
	}
	return views
}
