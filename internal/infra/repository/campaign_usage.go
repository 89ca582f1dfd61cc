package repository

import (
	"context"
	"time"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recordCampaignUsageSQL = `
INSERT INTO campaign_users (campaign_id, user_id, reservation_id, used_at)
VALUES (@campaign_id, @user_id, @reservation_id, @used_at)`

// CampaignUsageRepository tracks which campaigns a user has already redeemed.
type CampaignUsageRepository struct {
	db db.DBTX
}

func NewCampaignUsageRepository(db db.DBTX) *CampaignUsageRepository {
	return &CampaignUsageRepository{db: db}
}

func (r *CampaignUsageRepository) RecordUsage(ctx context.Context, tx db.DBTX, campaignID, userID, reservationID uuid.UUID, usedAt time.Time) error {
	args := pgx.NamedArgs{
		"campaign_id":    campaignID,
		"user_id":        userID,
		"reservation_id": reservationID,
		"used_at":        usedAt,
	}

	if _, err := tx.Exec(ctx, recordCampaignUsageSQL, args); err != nil {
		return infra.WrapRepoErr("failed to record campaign usage", err)
	}

	return nil
}
