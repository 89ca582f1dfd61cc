//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"vehicle-rental/internal/handler/api"
	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/common/testutil"
	commandsmock "vehicle-rental/tests/mock/commands"
	queriesmock "vehicle-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/reservations", fakeAuth(s.userID), s.handler.Create)
	s.router.GET("/reservations", fakeAuth(s.userID), s.handler.ListMine)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	key := uuid.New()
	headers := map[string]string{"Idempotency-Key": key.String()}
	reqBody := builder.NewCreateReservationBuilder().BuildDTO()

	snap := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
		r.UserID = s.userID
		r.VehicleID = reqBody.VehicleID
		r.StartsAt = reqBody.StartsAt
		r.EndsAt = reqBody.EndsAt
		r.PickupLocationID = reqBody.PickupLocationID
		r.DropoffLocationID = reqBody.PickupLocationID
		r.TotalCost = decimal.NewFromInt(300)
	}).BuildSnapshot()

	s.Run("success: returns 201 Created for a fresh reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.userID, key).
			DoAndReturn(func(_ context.Context, req reqdto.CreateReservationRequest, _, _ uuid.UUID) (*commands.CreateReservationResult, error) {
				s.Equal(reqBody.VehicleID, req.VehicleID)
				s.True(reqBody.StartsAt.Equal(req.StartsAt))
				s.True(reqBody.EndsAt.Equal(req.EndsAt))
				return &commands.CreateReservationResult{Reservation: &snap}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(snap.ID, response.ID)
		s.Equal("300.00", response.TotalCost)
		s.Equal(reqBody.PickupLocationID, response.DropoffLocationID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":            "/api/reservations/" + snap.ID.String(),
			"Idempotent-Replayed": "false",
		})
	})

	s.Run("success: replay returns 200 OK with the original reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.userID, key).
			Return(&commands.CreateReservationResult{Reservation: &snap, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(snap.ID, response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request without Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "retry-1"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"vehicleId", "startsAt", "endsAt", "pickupLocationId"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, headers, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"dates already taken", commands.ErrReservationConflict, http.StatusConflict, "Vehicle is already reserved"},
			{"same key still running", commands.ErrIdempotencyInProgress, http.StatusConflict, "currently being processed"},
			{"same key different body", commands.ErrDuplicateReservation, http.StatusConflict, "different parameters"},
			{"vehicle not found", commands.ErrVehicleNotFound, http.StatusNotFound, "Vehicle not found"},
			{"location not found", commands.ErrLocationNotFound, http.StatusNotFound, "Location not found"},
			{"campaign not available", commands.ErrCampaignNotAvailable, http.StatusUnprocessableEntity, "Campaign is not available"},
			{"invalid reservation", commands.ErrInvalidReservation, http.StatusBadRequest, "Invalid reservation"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.userID, key).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListMine() {
	row := &queries.ReservationView{
		ID:                  uuid.New(),
		VehicleID:           uuid.New(),
		VehicleName:         "Renault Clio",
		TotalCost:           decimal.NewFromInt(300),
		PickupLocationName:  "Istanbul Airport",
		DropoffLocationName: "Istanbul Airport",
		Completed:           true,
		Reviewable:          true,
	}

	s.Run("success: first page with next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, (*queries.Cursor)(nil), 0).
			Return([]*queries.ReservationView{row}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("300.00", response.Items[0].TotalCost)
		s.True(response.Items[0].Reviewable)
		s.Require().NotNil(response.NextCursor)
		s.Equal("next-page", *response.NextCursor)
	})

	s.Run("success: passes cursor and limit through", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.ReservationView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=abc&limit=5", nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 Bad Request for limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=101", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
