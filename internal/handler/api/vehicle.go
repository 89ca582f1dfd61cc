package api

import (
	"net/http"
	"strings"

	"vehicle-rental/internal/domain/vehicle"
	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleHandler struct {
	q queries.VehicleQueries
}

func NewVehicleHandler(q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{q: q}
}

// @Summary List vehicles
// @Description List vehicles with their average rating, optionally filtered
// @Tags vehicles
// @Produce json
// @Param minDailyPrice query string false "Lowest daily price, inclusive"
// @Param maxDailyPrice query string false "Highest daily price, inclusive"
// @Param year query int false "Model year"
// @Param color query string false "Color, any letter case"
// @Param status query string false "available, rented or maintenance"
// @Success 200 {array} resdto.VehicleListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	var query reqdto.VehicleListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	filter, err := vehicleFilter(query)
	if err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	items, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromVehicleList(items)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get vehicle
// @Description Vehicle detail with rating statistics and reviews
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	detail, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromVehicleDetail(detail)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check availability
// @Description Whether the vehicle is free for [start, end) and which reservations block it
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param start query string true "RFC3339 start"
// @Param end query string true "RFC3339 end"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/availability [get]
func (h *VehicleHandler) Availability(c *gin.Context) {
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	var query reqdto.IntervalQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), id, query.Start, query.End)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Blocked calendar dates
// @Description Calendar days touched by a reservation inside [from, to)
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Day after the last (YYYY-MM-DD)"
// @Success 200 {object} resdto.BlockedDatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/blocked-dates [get]
func (h *VehicleHandler) BlockedDates(c *gin.Context) {
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	var query reqdto.BlockedDatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	view, err := h.q.BlockedDates(c.Request.Context(), id, query.From, query.To)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockedDatesView(view))
}

// @Summary Vehicle rating
// @Description Average rating and per-star counts
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/rating [get]
func (h *VehicleHandler) Rating(c *gin.Context) {
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.RatingStats(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromRatingView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote
// @Description Price a rental without reserving it. Applying a campaign requires a signed-in user.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vehicles/{id}/quote [post]
func (h *VehicleHandler) Quote(c *gin.Context) {
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	in := queries.QuoteInput{
		VehicleID: id,
		Start:     req.StartsAt,
		End:       req.EndsAt,
	}
	if req.CampaignID != nil && *req.CampaignID != uuid.Nil {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			abortUnauthorized(c)
			return
		}
		in.UserID = userID
		in.CampaignID = req.CampaignID
	}

	view, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Vehicle colors
// @Description Distinct colors present in the fleet, for the catalogue filter
// @Tags vehicles
// @Produce json
// @Success 200 {array} string
// @Router /enums/vehicle-colors [get]
func (h *VehicleHandler) Colors(c *gin.Context) {
	colors, err := h.q.Colors(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

// @Summary Vehicle statuses
// @Description Fleet statuses accepted by the status filter
// @Tags vehicles
// @Produce json
// @Success 200 {array} string
// @Router /enums/vehicle-statuses [get]
func (h *VehicleHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.Statuses())
}

func vehicleFilter(q reqdto.VehicleListQuery) (queries.VehicleFilter, error) {
	var f queries.VehicleFilter

	if q.MinDailyPrice != "" {
		d, err := decimal.NewFromString(q.MinDailyPrice)
		if err != nil {
			return f, errs.Wrap(err, "minDailyPrice")
		}
		f.MinDailyPrice = &d
	}
	if q.MaxDailyPrice != "" {
		d, err := decimal.NewFromString(q.MaxDailyPrice)
		if err != nil {
			return f, errs.Wrap(err, "maxDailyPrice")
		}
		f.MaxDailyPrice = &d
	}
	if q.Status != "" {
		st, err := vehicle.ParseStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	if color := strings.TrimSpace(q.Color); color != "" {
		f.Color = &color
	}
	f.Year = q.Year
	return f, nil
}

func vehicleIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID, "Invalid vehicle ID format")
		return uuid.Nil, false
	}
	return id, true
}
