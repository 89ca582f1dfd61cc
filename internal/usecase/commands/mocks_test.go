//go:build unit

package commands_test

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs every callback against the same fake transaction.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		reservations:  new(mockReservationRepo),
		reviews:       new(mockReviewRepo),
		usages:        new(mockCampaignUsageRepo),
		idempotency:   new(mockIdempotencyRepo),
		notifications: new(mockNotificationRepo),
		users:         new(mockUserRepo),
		reads:         new(mockCommandReads),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeTx struct {
	reservations  *mockReservationRepo
	reviews       *mockReviewRepo
	usages        *mockCampaignUsageRepo
	idempotency   *mockIdempotencyRepo
	notifications *mockNotificationRepo
	users         *mockUserRepo
	reads         *mockCommandReads
}

func (t *fakeTx) Reservations() shared.ReservationRepository     { return t.reservations }
func (t *fakeTx) Reviews() shared.ReviewRepository               { return t.reviews }
func (t *fakeTx) CampaignUsages() shared.CampaignUsageRepository { return t.usages }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository      { return t.idempotency }
func (t *fakeTx) Notifications() shared.NotificationRepository   { return t.notifications }
func (t *fakeTx) Users() shared.UserRepository                   { return t.users }
func (t *fakeTx) Reads() shared.CommandReads                     { return t.reads }
func (t *fakeTx) DB() db.DBTX                                    { return nil }

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	args := m.Called(ctx, rev)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockCampaignUsageRepo struct{ mock.Mock }

func (m *mockCampaignUsageRepo) RecordUsage(ctx context.Context, tx db.DBTX, campaignID, userID, reservationID uuid.UUID, usedAt time.Time) error {
	return m.Called(ctx, campaignID, userID, reservationID, usedAt).Error(0)
}

type mockIdempotencyRepo struct{ mock.Mock }

func (m *mockIdempotencyRepo) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	args := m.Called(ctx, key, userID, endpoint, requestHash, expiresAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyRepo) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultHash string, reservationID uuid.UUID) error {
	return m.Called(ctx, key, userID, resultHash, reservationID).Error(0)
}

func (m *mockIdempotencyRepo) ClaimExpired(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	args := m.Called(ctx, key, userID, requestHash, expiresAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockIdempotencyRepo) Release(ctx context.Context, tx db.DBTX, key, userID uuid.UUID) error {
	return m.Called(ctx, key, userID).Error(0)
}

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	return m.Called(ctx, kind, topic, payload, runAt).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID, email user.Email, name user.FullName) error {
	return m.Called(ctx, userID, email, name).Error(0)
}

type mockCommandReads struct{ mock.Mock }

func (m *mockCommandReads) LockVehicle(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*shared.VehicleSnapshot)
	return snap, args.Error(1)
}

func (m *mockCommandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*shared.VehicleSnapshot)
	return snap, args.Error(1)
}

func (m *mockCommandReads) AvailableCampaign(ctx context.Context, userID, campaignID uuid.UUID, at time.Time) (*shared.CampaignSnapshot, error) {
	args := m.Called(ctx, userID, campaignID, at)
	snap, _ := args.Get(0).(*shared.CampaignSnapshot)
	return snap, args.Error(1)
}

func (m *mockCommandReads) LocationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*shared.UserSnapshot)
	return snap, args.Error(1)
}

func (m *mockCommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*shared.ReservationSnapshot)
	return snap, args.Error(1)
}

func (m *mockCommandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	args := m.Called(ctx, key, userID)
	rec, _ := args.Get(0).(*shared.IdempotencyRecord)
	return rec, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context, vehicleID uuid.UUID) error {
	return m.Called(ctx, vehicleID).Error(0)
}

type mockUserReadStore struct{ mock.Mock }

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.Error(1)
}

func (m *mockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.String(1), args.Error(2)
}

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *mockTokenIssuer) TokenDuration() time.Duration { return time.Hour }
