package booking

import (
	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/errs"
)

// Every failure the engine reports is one of these.
var (
	ErrInvalidInterval = reservation.ErrInvalidInterval
	ErrInvalidPrice    = vehicle.ErrInvalidPrice
	ErrInvalidDiscount = campaign.ErrInvalidDiscount
	ErrInvalidRating   = review.ErrInvalidRating
	ErrMissingLocation = reservation.ErrMissingLocation

	// ErrIntervalUnavailable unwraps to ErrInvalidInterval.
	ErrIntervalUnavailable = errs.Wrap(ErrInvalidInterval, "interval overlaps an existing reservation")
	ErrMissingUser         = errs.New("user is required")
	ErrMissingVehicle      = errs.New("vehicle is required")
)
