package booking

import (
	"time"

	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/domain/vehicle"
)

type ReviewStatus struct {
	Completed  bool
	Reviewable bool
}

type RatingStats struct {
	TotalReviews  int
	AverageRating float64
	// Counts[i] holds the number of reviews rated i+1.
	Counts [review.MaxRating]int
}

// ReviewAggregator derives review state from a reservation history. It takes
// now explicitly and never reads a clock.
type ReviewAggregator struct{}

func NewReviewAggregator() ReviewAggregator {
	return ReviewAggregator{}
}

func (ReviewAggregator) IsCompleted(r *reservation.Reservation, now time.Time) bool {
	return r != nil && r.IsCompleted(now)
}

func (ReviewAggregator) CanReview(r *reservation.Reservation, now time.Time) bool {
	return r != nil && r.CanReview(now)
}

func (a ReviewAggregator) ReviewStatus(r *reservation.Reservation, now time.Time) ReviewStatus {
	return ReviewStatus{
		Completed:  a.IsCompleted(r, now),
		Reviewable: a.CanReview(r, now),
	}
}

// AverageRating is 0 when the vehicle has no reviews.
func (a ReviewAggregator) AverageRating(v *vehicle.Vehicle) float64 {
	return a.RatingStats(v).AverageRating
}

// RatingStats skips reviews whose stored rating lies outside 1..5, so the
// total, the average and the per-star counts always describe the same set.
func (ReviewAggregator) RatingStats(v *vehicle.Vehicle) RatingStats {
	var (
		stats RatingStats
		sum   int
	)
	if v == nil {
		return stats
	}
	for _, r := range v.Reservations() {
		rv := r.Review()
		if rv == nil {
			continue
		}
		rating := rv.Rating().Value()
		if rating < review.MinRating || rating > review.MaxRating {
			continue
		}
		sum += rating
		stats.TotalReviews++
		stats.Counts[rating-1]++
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats
}
