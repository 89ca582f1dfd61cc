//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/domain/booking"
	domreview "vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reviewNow = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		reservation func(userID uuid.UUID) *builder.ReservationBuilder
		storeErr    error
		expectedErr error
	}{
		{
			name: "success: finished reservation without review",
			reservation: func(userID uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) { r.UserID = userID })
			},
		},
		{
			name: "error: reservation of another user",
			reservation: func(uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder()
			},
			expectedErr: commands.ErrReservationNotOwned,
		},
		{
			name: "error: reservation still running",
			reservation: func(userID uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
					r.UserID = userID
					r.EndsAt = reviewNow.Add(time.Hour)
				})
			},
			expectedErr: commands.ErrReservationNotCompleted,
		},
		{
			name: "error: reservation ending exactly now is not completed",
			reservation: func(userID uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
					r.UserID = userID
					r.EndsAt = reviewNow
				})
			},
			expectedErr: commands.ErrReservationNotCompleted,
		},
		{
			name: "error: reservation already reviewed",
			reservation: func(userID uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) { r.UserID = userID }).WithReview(3)
			},
			expectedErr: commands.ErrReviewAlreadyExists,
		},
		{
			name: "error: concurrent review wins the unique index",
			reservation: func(userID uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) { r.UserID = userID })
			},
			storeErr:    infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey),
			expectedErr: commands.ErrReviewAlreadyExists,
		},
		{
			name: "error: database failure on insert",
			reservation: func(userID uuid.UUID) *builder.ReservationBuilder {
				return builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) { r.UserID = userID })
			},
			storeErr:    infra.WrapRepoErr("boom", assert.AnError),
			expectedErr: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newFakeUoW()
			cache := new(mockCache)
			useCase := commands.NewReviewUseCase(uow, booking.NewEngine(), cache, clock.NewMockClock(reviewNow))

			userID := uuid.New()
			res := tt.reservation(userID)
			snap := res.BuildSnapshot()
			req := builder.NewCreateReviewBuilder().With(func(b *builder.CreateReviewBuilder) { b.ReservationID = res.ID }).BuildDTO()

			uow.tx.reads.On("ReservationByID", mock.Anything, res.ID).Return(&snap, nil)
			uow.tx.reviews.On("Create", mock.Anything, mock.AnythingOfType("*review.Review")).Return(uuid.New(), tt.storeErr).Maybe()
			cache.On("Invalidate", mock.Anything, res.VehicleID).Return(nil).Maybe()

			result, err := useCase.CreateReview(ctx, req, userID)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.True(t, errs.Is(err, tt.expectedErr), "expected [%v] but got [%v]", tt.expectedErr, err)
				cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, res.ID, result.ReservationID)
			assert.Equal(t, res.VehicleID, result.VehicleID)
			assert.Equal(t, req.Rating, result.Rating)
			assert.Equal(t, req.Comment, result.Comment)
			assert.Equal(t, reviewNow, result.CreatedAt)

			stored := uow.tx.reviews.Calls[0].Arguments.Get(1).(*domreview.Review)
			assert.Equal(t, userID, stored.UserID())
			assert.Equal(t, result.ReviewID, stored.ID())
			cache.AssertExpectations(t)
		})
	}
}

func TestCreateReview_ValidatesInputFirst(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*builder.CreateReviewBuilder)
	}{
		{name: "rating below range", mutate: func(b *builder.CreateReviewBuilder) { b.Rating = 0 }},
		{name: "rating above range", mutate: func(b *builder.CreateReviewBuilder) { b.Rating = 6 }},
		{name: "comment too long", mutate: func(b *builder.CreateReviewBuilder) {
			long := make([]rune, domreview.MaxCommentLength+1)
			for i := range long {
				long[i] = 'a'
			}
			b.Comment = string(long)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newFakeUoW()
			useCase := commands.NewReviewUseCase(uow, booking.NewEngine(), new(mockCache), clock.NewMockClock(reviewNow))

			_, err := useCase.CreateReview(ctx, builder.NewCreateReviewBuilder().With(tt.mutate).BuildDTO(), uuid.New())

			assert.True(t, errs.Is(err, commands.ErrInvalidReview))
			uow.tx.reads.AssertNotCalled(t, "ReservationByID", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateReview_ReservationNotFound(t *testing.T) {
	uow := newFakeUoW()
	useCase := commands.NewReviewUseCase(uow, booking.NewEngine(), new(mockCache), clock.NewMockClock(reviewNow))
	req := builder.NewCreateReviewBuilder().BuildDTO()

	uow.tx.reads.On("ReservationByID", mock.Anything, req.ReservationID).
		Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

	_, err := useCase.CreateReview(context.Background(), req, uuid.New())

	assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
}
