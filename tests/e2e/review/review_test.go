//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/tests/common/authtest"
	"vehicle-rental/tests/common/dbtest"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL = "/api/reviews"
	vehicleURL = "/api/vehicles/%s"
	ratingURL  = "/api/vehicles/%s/rating"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

// finishedReservation inserts a three-day reservation that ended endedDaysAgo days ago.
func (s *ReviewSuite) finishedReservation(userID, vehicleID uuid.UUID, endedDaysAgo int) uuid.UUID {
	end := time.Now().UTC().Truncate(time.Hour).AddDate(0, 0, -endedDaysAgo)
	return dbtest.CreateTestReservation(s.T(), s.DB, userID, vehicleID, dbtest.SeedLocationID,
		end.AddDate(0, 0, -3), end, decimal.NewFromInt(300))
}

// =============================================================================
// TestCreateReview
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("finished reservation can be reviewed once", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Clio", decimal.NewFromInt(100))
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))
		reservationID := s.finishedReservation(userID, vehicleID, 1)

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 5, Comment: "Clean car, smooth pickup."}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)

		var actual response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &actual)

		expected := response.ReviewResponse{
			ReservationID: reservationID,
			VehicleID:     vehicleID,
			Rating:        5,
			Comment:       "Clean car, smooth pickup.",
		}
		opts := []cmp.Option{cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt")}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Review response mismatch (-want +got):\n%s", diff)
		}

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: reservationID, Rating: 1}, token)
		httptest.AssertErrorResponse(t, again, http.StatusConflict, "already been reviewed")
	})

	s.Run("review without a comment", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Egea", decimal.NewFromInt(80))
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "quiet@example.com", string(user.RoleCustomer))
		reservationID := s.finishedReservation(userID, vehicleID, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: reservationID, Rating: 4}, token)

		var actual response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &actual)
		require.Empty(t, actual.Comment)
	})

	s.Run("reservation that has not ended", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Focus", decimal.NewFromInt(90))
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "early@example.com", string(user.RoleCustomer))
		now := time.Now().UTC()
		reservationID := dbtest.CreateTestReservation(t, s.DB, userID, vehicleID, dbtest.SeedLocationID,
			now.Add(-time.Hour), now.Add(48*time.Hour), decimal.NewFromInt(200))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: reservationID, Rating: 5}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "has not ended yet")
	})

	s.Run("reservation of another user", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Corolla", decimal.NewFromInt(120))
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleCustomer))
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "intruder@example.com", string(user.RoleCustomer))
		reservationID := s.finishedReservation(ownerID, vehicleID, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: reservationID, Rating: 1}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "another user")
	})

	s.Run("unknown reservation", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "ghost@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: uuid.New(), Rating: 3}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("unauthenticated", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: uuid.New(), Rating: 3}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRatingStats
// =============================================================================

func (s *ReviewSuite) TestRatingStats() {
	s.Run("reviews feed the vehicle rating and detail", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Astra", decimal.NewFromInt(100))

		ratings := []int{5, 4, 4}
		for i, rating := range ratings {
			userID, token := authtest.CreateAndLogin(t, s.DB, s.Router,
				fmt.Sprintf("rater%d@example.com", i), string(user.RoleCustomer))
			reservationID := s.finishedReservation(userID, vehicleID, 1+i*10)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
				request.CreateReviewRequest{ReservationID: reservationID, Rating: rating}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingURL, vehicleID), nil, "")
		var stats response.RatingResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &stats)

		expected := response.RatingResponse{
			VehicleID:     vehicleID,
			TotalReviews:  3,
			AverageRating: 4.33,
			Rating4Count:  2,
			Rating5Count:  1,
		}
		opts := []cmp.Option{cmpopts.EquateApprox(0, 0.01)}
		if diff := cmp.Diff(expected, stats, opts...); diff != "" {
			t.Errorf("Rating mismatch (-want +got):\n%s", diff)
		}

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(vehicleURL, vehicleID), nil, "")
		var detail response.VehicleDetailResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)
		require.Len(t, detail.Reviews, 3)
		require.Equal(t, 3, detail.Rating.TotalReviews)
	})

	s.Run("vehicle without reviews", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Polo", decimal.NewFromInt(70))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingURL, vehicleID), nil, "")
		var stats response.RatingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Zero(t, stats.TotalReviews)
		require.Zero(t, stats.AverageRating)
	})
}

// =============================================================================
// TestReviewFeed
// =============================================================================

func (s *ReviewSuite) TestReviewFeed() {
	s.Run("public feed filters by vehicle and rating", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Megane", decimal.NewFromInt(95))
		otherID := dbtest.CreateTestVehicle(t, s.DB, "Yaris", decimal.NewFromInt(85))

		for i, tc := range []struct {
			vehicle uuid.UUID
			rating  int
		}{{vehicleID, 5}, {vehicleID, 2}, {otherID, 5}} {
			userID, token := authtest.CreateAndLogin(t, s.DB, s.Router,
				fmt.Sprintf("feed%d@example.com", i), string(user.RoleCustomer))
			reservationID := s.finishedReservation(userID, tc.vehicle, 1+i*10)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
				request.CreateReviewRequest{ReservationID: reservationID, Rating: tc.rating}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s?vehicleId=%s&minRating=4", reviewsURL, vehicleID), nil, "")

		var feed response.ReviewFeedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &feed)
		require.Len(t, feed.Items, 1)
		require.Equal(t, "Renault Megane", feed.Items[0].VehicleName)
		require.Equal(t, 5, feed.Items[0].Rating)
		require.Nil(t, feed.NextCursor)
	})
}
