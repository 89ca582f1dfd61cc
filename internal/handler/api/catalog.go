package api

import (
	"net/http"

	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	q queries.CampaignQueries
}

func NewCampaignHandler(q queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{q: q}
}

// @Summary Campaigns
// @Description All campaigns, newest start first
// @Tags campaigns
// @Produce json
// @Success 200 {array} resdto.CampaignResponse
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromCampaignViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Available campaigns
// @Description Campaigns the current user can still apply
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CampaignResponse
// @Failure 401 {object} httperr.Response
// @Router /campaigns/available [get]
func (h *CampaignHandler) ListAvailable(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	views, err := h.q.ListAvailableForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromCampaignViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type LocationHandler struct {
	q queries.LocationQueries
}

func NewLocationHandler(q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{q: q}
}

// @Summary Locations
// @Description Pickup and dropoff locations
// @Tags locations
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromLocationViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
