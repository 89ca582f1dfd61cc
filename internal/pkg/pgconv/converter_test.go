//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	d, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(24050), Exp: -2, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "240.50", d.StringFixed(2))

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	require.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	p, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNullableConversions(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, &now, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
}
