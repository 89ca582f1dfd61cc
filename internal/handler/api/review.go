package api

import (
	"net/http"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a finished reservation of the current user
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req, userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReviewResult(result))
}

// @Summary List reviews
// @Description Public review feed, newest first
// @Tags reviews
// @Produce json
// @Param vehicleId query string false "Only reviews of this vehicle"
// @Param minRating query int false "Lowest rating, inclusive (1-5)"
// @Param maxRating query int false "Highest rating, inclusive (1-5)"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.ReviewFeedResponse
// @Failure 400 {object} httperr.Response
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var query reqdto.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	filters := queries.ReviewFilters{
		MinRating: query.MinRating,
		MaxRating: query.MaxRating,
	}
	if query.VehicleID != "" {
		id, err := uuid.Parse(query.VehicleID)
		if err != nil {
			abortBadRequest(c, errInvalidID, "Invalid query parameters")
			return
		}
		filters.VehicleID = &id
	}

	items, next, err := h.q.List(c.Request.Context(), filters, cursor, query.Limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromReviewListItems(items, next)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
