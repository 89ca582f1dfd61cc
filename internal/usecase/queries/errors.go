package queries

import "vehicle-rental/internal/pkg/errs"

var (
	ErrVehicleNotFound      = errs.New("vehicle not found")
	ErrCampaignUnavailable  = errs.New("campaign is not available for this user")
	ErrWindowTooLarge       = errs.New("calendar window is too large")
	ErrInvalidCursor        = errs.New("invalid cursor")
	ErrInvalidVehicleFilter = errs.New("invalid vehicle filter")
	ErrInvalidReviewFilter  = errs.New("invalid review filter")
	ErrUserNotFound         = errs.New("user not found")
	ErrUserInactive         = errs.New("user inactive")
)
