package review

import "vehicle-rental/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")

	ErrReviewAlreadyExists = errs.New("review already exists for this reservation")
)
