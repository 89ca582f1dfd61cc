//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vehicle-rental/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedLocationID is one of the locations inserted by SeedReferenceData.
var SeedLocationID = uuid.MustParse("8f1c2d1e-0c1a-4f5e-9a11-0d3f6b8c0001")

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		defaultHash, hashErr = password.HashPassword(DefaultPassword)
	})
	require.NoError(t, hashErr)
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, first_name, last_name, password_hash, role, is_active)
		VALUES ($1, $2, 'Test', 'Driver', $3, $4, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func CreateTestVehicle(t *testing.T, db DBLike, model string, dailyPrice decimal.Decimal) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO vehicles (id, brand, model, year, color, license_plate, daily_price)
		VALUES ($1, 'Renault', $2, 2023, 'white', '34 TST 001', $3)`,
		vehicleID, model, dailyPrice)
	require.NoError(t, err)

	return vehicleID
}

func CreateTestLocation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO locations (id, name) VALUES ($1, $2)", locationID, name)
	require.NoError(t, err)

	return locationID
}

// CreateTestCampaign inserts a campaign valid in [from, to). Zero times leave the bound open.
func CreateTestCampaign(t *testing.T, db DBLike, title string, discount decimal.Decimal, from, to time.Time) uuid.UUID {
	t.Helper()

	campaignID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO campaigns (id, title, discount_percentage, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5)`,
		campaignID, title, discount, nullableTime(from), nullableTime(to))
	require.NoError(t, err)

	return campaignID
}

// CreateTestReservation inserts a reservation directly, bypassing the booking rules.
// It is used to set up reservations in the past.
func CreateTestReservation(t *testing.T, db DBLike, userID, vehicleID, locationID uuid.UUID, startsAt, endsAt time.Time, totalCost decimal.Decimal) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations
		(id, vehicle_id, user_id, starts_at, ends_at, total_cost, pickup_location_id, dropoff_location_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		reservationID, vehicleID, userID, startsAt, endsAt, totalCost, locationID)
	require.NoError(t, err)

	return reservationID
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (id, name, address) VALUES
		    ($1, 'Istanbul Airport', 'Arnavutköy/İstanbul'),
		    (gen_random_uuid(), 'Ankara Kızılay Office', 'Çankaya/Ankara')
		ON CONFLICT (id) DO NOTHING;
	`, SeedLocationID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
