package readstore

import (
	"context"
	"time"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// A campaign is available to a user while inside its validity window and
// until that user has redeemed it once.
const availableCampaignsSQL = `
SELECT c.id, c.title, c.description, c.discount_percentage, c.valid_from, c.valid_to
FROM campaigns c
WHERE (c.valid_from IS NULL OR c.valid_from <= @at)
  AND (c.valid_to IS NULL OR c.valid_to >= @at)
  AND NOT EXISTS (
      SELECT 1 FROM campaign_users cu
      WHERE cu.campaign_id = c.id AND cu.user_id = @user_id
  )`

const listCampaignsSQL = `
SELECT c.id, c.title, c.description, c.discount_percentage, c.valid_from, c.valid_to
FROM campaigns c
ORDER BY c.valid_from DESC NULLS LAST, c.title`

const (
	listAvailableCampaignsSQL = availableCampaignsSQL + ` ORDER BY c.discount_percentage DESC, c.title`
	findAvailableCampaignSQL  = availableCampaignsSQL + ` AND c.id = @campaign_id`
)

type CampaignReadStore struct {
	db db.DBTX
}

func NewCampaignReadStore(db db.DBTX) *CampaignReadStore {
	return &CampaignReadStore{db: db}
}

func (s *CampaignReadStore) ListAll(ctx context.Context) ([]*shared.CampaignSnapshot, error) {
	rows, err := s.db.Query(ctx, listCampaignsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns", err)
	}
	return collectCampaigns(rows)
}

func (s *CampaignReadStore) ListAvailableForUser(ctx context.Context, userID uuid.UUID, at time.Time) ([]*shared.CampaignSnapshot, error) {
	rows, err := s.db.Query(ctx, listAvailableCampaignsSQL, pgx.NamedArgs{"user_id": userID, "at": at})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available campaigns", err)
	}
	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]*shared.CampaignSnapshot, error) {
	defer rows.Close()

	out := []*shared.CampaignSnapshot{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaigns", err)
	}
	return out, nil
}

func (s *CampaignReadStore) FindAvailableForUser(ctx context.Context, userID, campaignID uuid.UUID, at time.Time) (*shared.CampaignSnapshot, error) {
	args := pgx.NamedArgs{"user_id": userID, "campaign_id": campaignID, "at": at}

	c, err := scanCampaign(s.db.QueryRow(ctx, findAvailableCampaignSQL, args))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not available", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campaign", err)
	}
	return c, nil
}

func scanCampaign(row pgx.Row) (*shared.CampaignSnapshot, error) {
	var (
		c        shared.CampaignSnapshot
		discount pgtype.Numeric
		from, to pgtype.Timestamptz
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &discount, &from, &to); err != nil {
		return nil, err
	}

	pct, err := pgconv.DecimalFromNumeric(discount)
	if err != nil {
		return nil, err
	}
	c.DiscountPercentage = pct
	c.ValidFrom = pgconv.TimePtrFromPgtype(from)
	c.ValidTo = pgconv.TimePtrFromPgtype(to)
	return &c, nil
}
