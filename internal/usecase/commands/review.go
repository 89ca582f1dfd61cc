package commands

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/booking"
	domreview "vehicle-rental/internal/domain/review"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationNotOwned     = errs.New("reservation not owned by user")
	ErrReservationNotCompleted = errs.New("reservation has not ended yet")
	ErrReviewAlreadyExists     = errs.New("review already exists for reservation")
	ErrInvalidReview           = errs.New("invalid review")
)

type CreateReviewResult struct {
	ReviewID      uuid.UUID
	ReservationID uuid.UUID
	VehicleID     uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock
type ReviewCommands interface {
	CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow    shared.UnitOfWork
	engine *booking.Engine
	cache  VehicleCacheInvalidator
	clock  clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, engine *booking.Engine, cache VehicleCacheInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, engine: engine, cache: cache, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	if _, err := domreview.NewRating(req.Rating); err != nil {
		return nil, errs.Mark(err, ErrInvalidReview)
	}
	if _, err := domreview.NewComment(req.Comment); err != nil {
		return nil, errs.Mark(err, ErrInvalidReview)
	}

	var rev *domreview.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		snap, err := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.UserID != userID {
			return ErrReservationNotOwned
		}

		res, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		status := uc.engine.ReviewStatus(res, now)
		if !status.Completed {
			return ErrReservationNotCompleted
		}
		if !status.Reviewable {
			return ErrReviewAlreadyExists
		}

		rev, err = domreview.NewReview(uuid.Nil, userID, snap.VehicleID, snap.ID, req.Rating, req.Comment, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidReview)
		}
		if err := res.AttachReview(rev, now); err != nil {
			return errs.Mark(err, ErrInvalidReview)
		}

		if _, err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrReviewAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.Invalidate(ctx, rev.VehicleID()); cacheErr != nil {
		slog.Warn("failed to invalidate vehicle cache", "vehicle_id", rev.VehicleID(), "error", cacheErr.Error())
	}

	return &CreateReviewResult{
		ReviewID:      rev.ID(),
		ReservationID: rev.ReservationID(),
		VehicleID:     rev.VehicleID(),
		Rating:        rev.Rating().Value(),
		Comment:       rev.Comment().String(),
		CreatedAt:     rev.CreatedAt(),
	}, nil
}
