//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/infra"
	"vehicle-rental/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCampaignReadStore_FindAvailableForUser(t *testing.T) {
	ctx := context.Background()
	userID, campaignID := uuid.New(), uuid.New()
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	validTo := at.AddDate(0, 1, 0)

	t.Run("open-ended start", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("QueryRow", ctx, findAvailableCampaignSQL, dbtest.NamedArg("campaign_id", campaignID)).Return(dbtest.Row{Values: []any{
			campaignID, "Spring Deal", "", numeric(2000, -2), pgtype.Timestamptz{}, pgtype.Timestamptz{Time: validTo, Valid: true},
		}})

		c, err := NewCampaignReadStore(db).FindAvailableForUser(ctx, userID, campaignID, at)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(20).Equal(c.DiscountPercentage))
		assert.Nil(t, c.ValidFrom)
		require.NotNil(t, c.ValidTo)
		assert.True(t, validTo.Equal(*c.ValidTo))
	})

	t.Run("already redeemed or expired", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("QueryRow", ctx, findAvailableCampaignSQL, mock.Anything).Return(dbtest.Row{Err: pgx.ErrNoRows})

		c, err := NewCampaignReadStore(db).FindAvailableForUser(ctx, userID, campaignID, at)

		assert.Nil(t, c)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCampaignReadStore_ListAvailableForUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	db := new(dbtest.MockDBTX)
	db.On("Query", ctx, listAvailableCampaignsSQL, dbtest.NamedArg("user_id", userID)).Return(dbtest.NewRows(), nil)

	list, err := NewCampaignReadStore(db).ListAvailableForUser(ctx, userID, at)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCampaignReadStore_ListAll(t *testing.T) {
	ctx := context.Background()
	validFrom := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	db := new(dbtest.MockDBTX)
	db.On("Query", ctx, listCampaignsSQL, mock.Anything).Return(dbtest.NewRows(
		[]any{uuid.New(), "Summer Deal", "", numeric(1500, -2), pgtype.Timestamptz{Time: validFrom, Valid: true}, pgtype.Timestamptz{}},
		[]any{uuid.New(), "Evergreen", "always on", numeric(500, -2), pgtype.Timestamptz{}, pgtype.Timestamptz{}},
	), nil)

	list, err := NewCampaignReadStore(db).ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Summer Deal", list[0].Title)
	require.NotNil(t, list[0].ValidFrom)
	assert.True(t, validFrom.Equal(*list[0].ValidFrom))
	assert.True(t, decimal.NewFromInt(5).Equal(list[1].DiscountPercentage))
	assert.Nil(t, list[1].ValidFrom)
}
