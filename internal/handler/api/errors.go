package api

import (
	"log/slog"
	"net/http"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthorized       = errs.New("unauthorized")
	errInvalidID          = errs.New("invalid id")
	errInvalidIdempotency = errs.New("invalid idempotency key")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// The first matching entry wins, so more specific sentinels come first.
var errorMappings = []errorMapping{
	// auth
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrEmailAlreadyRegistered, http.StatusConflict, "Email is already registered"},
	{commands.ErrInvalidRegistration, http.StatusBadRequest, "Invalid registration data"},

	// profile
	{commands.ErrProfileNotOwned, http.StatusForbidden, "Profile belongs to another user"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrInvalidProfile, http.StatusBadRequest, "Invalid profile data"},

	// reservations
	{commands.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header is required"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Reservation request is currently being processed"},
	{commands.ErrDuplicateReservation, http.StatusConflict, "Duplicate reservation request with different parameters"},
	{commands.ErrReservationConflict, http.StatusConflict, "Vehicle is already reserved for the selected dates"},
	{commands.ErrVehicleNotFound, http.StatusNotFound, "Vehicle not found"},
	{commands.ErrLocationNotFound, http.StatusNotFound, "Location not found"},
	{commands.ErrCampaignNotAvailable, http.StatusUnprocessableEntity, "Campaign is not available"},
	{commands.ErrInvalidReservation, http.StatusBadRequest, "Invalid reservation"},

	// reviews
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrReservationNotOwned, http.StatusForbidden, "Reservation belongs to another user"},
	{commands.ErrReservationNotCompleted, http.StatusUnprocessableEntity, "Reservation has not ended yet"},
	{commands.ErrReviewAlreadyExists, http.StatusConflict, "Reservation has already been reviewed"},
	{commands.ErrInvalidReview, http.StatusBadRequest, "Invalid review"},

	// vehicle queries
	{queries.ErrVehicleNotFound, http.StatusNotFound, "Vehicle not found"},
	{queries.ErrCampaignUnavailable, http.StatusUnprocessableEntity, "Campaign is not available"},
	{queries.ErrWindowTooLarge, http.StatusBadRequest, "Calendar window is too large"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidVehicleFilter, http.StatusBadRequest, "Invalid vehicle filter"},
	{queries.ErrInvalidReviewFilter, http.StatusBadRequest, "Invalid review filter"},
	{reservation.ErrInvalidInterval, http.StatusBadRequest, "End must be after start"},
}

// abortWithUsecaseError renders err through errorMappings, falling back to 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "unhandled usecase error",
		"request_id", middleware.GetRequestID(c),
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 5),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
}
