package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reservationEndpoint     = "POST /reservations"
	reservationCreatedTopic = "reservation_created"
)

var (
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrLocationNotFound        = errs.New("location not found")
	ErrCampaignNotAvailable    = errs.New("campaign not available")
	ErrInvalidReservation      = errs.New("invalid reservation")
	ErrDuplicateReservation    = errs.New("duplicate reservation")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrIdempotencyKeyRequired  = errs.New("idempotency key required")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationResult struct {
	Reservation *shared.ReservationSnapshot
	IsReplayed  bool
}

// VehicleCacheInvalidator drops cached vehicle snapshots after a write.
type VehicleCacheInvalidator interface {
	Invalidate(ctx context.Context, vehicleID uuid.UUID) error
}

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock
type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
}

type reservationUseCaseImpl struct {
	uow    shared.UnitOfWork
	engine *booking.Engine
	cache  VehicleCacheInvalidator
	clock  clock.Clock
	cfg    config.BookingConfig
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	engine *booking.Engine,
	cache VehicleCacheInvalidator,
	clk clock.Clock,
	cfg config.BookingConfig,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:    uow,
		engine: engine,
		cache:  cache,
		clock:  clk,
		cfg:    cfg,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, ErrIdempotencyKeyRequired
	}

	interval, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	requestHash := r.calculateRequestHash(req)
	replayID, err := r.claimIdempotencyKey(ctx, idempotencyKey, userID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayID != nil {
		snap, err := r.uow.CommandReads().ReservationByID(ctx, *replayID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &CreateReservationResult{Reservation: snap, IsReplayed: true}, nil
	}

	reservationID, err := r.executeReservationTransaction(ctx, req, interval, userID, idempotencyKey, requestHash)
	if err != nil {
		r.releaseIdempotencyKey(ctx, idempotencyKey, userID)
		return nil, err
	}

	if cacheErr := r.cache.Invalidate(ctx, req.VehicleID); cacheErr != nil {
		slog.Warn("failed to invalidate vehicle cache", "vehicle_id", req.VehicleID, "error", cacheErr.Error())
	}

	// Read-after-write
	snap, err := r.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateReservationResult{Reservation: snap, IsReplayed: false}, nil
}

// claimIdempotencyKey returns the stored reservation id when the request was
// already completed, nil when this request now owns the key.
func (r *reservationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	now := r.clock.Now()
	expiresAt := now.Add(r.cfg.IdempotencyTTL)

	var replayID *uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, reservationEndpoint, requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, idempotencyKey, userID)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}

		if !existing.ExpiresAt.After(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), idempotencyKey, userID, requestHash, expiresAt)
			if err != nil {
				return errs.Mark(err, ErrIdempotencyCheckFailed)
			}
			if claimed == 0 {
				return ErrIdempotencyInProgress
			}
			return nil
		}

		if existing.RequestHash != requestHash {
			return ErrDuplicateReservation
		}

		switch existing.Status {
		case shared.IdempotencyCompleted:
			if existing.ResultReservationID == nil {
				return errs.New("completed request missing result reservation ID")
			}
			replayID = existing.ResultReservationID
			return nil
		case shared.IdempotencyProcessing:
			return ErrIdempotencyInProgress
		default:
			return errs.New("invalid idempotency key status")
		}
	})
	if err != nil {
		return nil, err
	}
	return replayID, nil
}

func (r *reservationUseCaseImpl) executeReservationTransaction(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	interval reservation.DateInterval,
	userID, idempotencyKey uuid.UUID,
	requestHash string,
) (uuid.UUID, error) {
	var reservationID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		// The row lock serializes bookings of the same vehicle.
		vehicleSnap, err := tx.Reads().LockVehicle(ctx, req.VehicleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		vehicleEntity, err := vehicleSnap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		campaignEntity, err := r.availableCampaign(ctx, tx.Reads(), userID, req.GetCampaignID(), now)
		if err != nil {
			return err
		}

		dropoffID := req.GetDropoffLocationID()
		if err := r.ensureLocations(ctx, tx.Reads(), req.PickupLocationID, dropoffID); err != nil {
			return err
		}

		request, err := r.engine.BuildReservationRequest(booking.BuildInput{
			Vehicle:           vehicleEntity,
			UserID:            userID,
			Interval:          interval,
			PickupLocationID:  req.PickupLocationID,
			DropoffLocationID: dropoffID,
			Campaign:          campaignEntity,
		})
		if err != nil {
			if errs.Is(err, booking.ErrIntervalUnavailable) {
				return errs.Mark(err, ErrReservationConflict)
			}
			return errs.Mark(err, ErrInvalidReservation)
		}

		reservationEntity, err := reservation.NewReservation(request.ReservationParams(), now)
		if err != nil {
			return errs.Mark(err, ErrInvalidReservation)
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), reservationEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrInvalidReservation)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if campaignID := request.CampaignID(); campaignID != nil {
			if err := tx.CampaignUsages().RecordUsage(ctx, tx.DB(), *campaignID, userID, reservationID, now); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrCampaignNotAvailable
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := r.createNotificationJob(ctx, tx, reservationID, userID, request, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resultHash := r.calculateIDHash(reservationID)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, resultHash, reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("reservation created",
		"reservation_id", reservationID,
		"vehicle_id", req.VehicleID,
		"user_id", userID,
		"request_hash", requestHash)
	return reservationID, nil
}

func (r *reservationUseCaseImpl) availableCampaign(
	ctx context.Context,
	reads shared.CommandReads,
	userID uuid.UUID,
	campaignID *uuid.UUID,
	now time.Time,
) (*campaign.Campaign, error) {
	if campaignID == nil {
		return nil, nil
	}

	snap, err := reads.AvailableCampaign(ctx, userID, *campaignID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotAvailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap.ToDomain(), nil
}

func (r *reservationUseCaseImpl) ensureLocations(ctx context.Context, reads shared.CommandReads, ids ...uuid.UUID) error {
	for _, id := range ids {
		ok, err := reads.LocationExists(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			return ErrLocationNotFound
		}
	}
	return nil
}

func (r *reservationUseCaseImpl) releaseIdempotencyKey(ctx context.Context, idempotencyKey, userID uuid.UUID) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), idempotencyKey, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "idempotency_key", idempotencyKey, "error", err.Error())
	}
}

func (r *reservationUseCaseImpl) createNotificationJob(
	ctx context.Context,
	tx shared.Tx,
	reservationID, userID uuid.UUID,
	request *booking.ReservationRequest,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"user_id":        userID,
		"vehicle_id":     request.VehicleID(),
		"starts_at":      request.Start(),
		"ends_at":        request.End(),
		"total_cost":     request.FinalCost().String(),
		"type":           reservationCreatedTopic,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", reservationCreatedTopic, payload, now)
}

// calculateRequestHash hashes instants in UTC so the same request sent with a
// different offset replays instead of conflicting.
func (r *reservationUseCaseImpl) calculateRequestHash(req reqdto.CreateReservationRequest) string {
	req.StartsAt = req.StartsAt.UTC()
	req.EndsAt = req.EndsAt.UTC()
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *reservationUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
