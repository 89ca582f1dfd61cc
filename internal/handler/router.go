package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vehicle-rental/internal/handler/api"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Vehicle     *api.VehicleHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Campaign    *api.CampaignHandler
	Location    *api.LocationHandler
	User        *api.UserHandler
}

// NewRouter registers middleware and routes on engine. nrApp may be nil.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, nrApp *newrelic.Application, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, nrApp)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, nrApp *newrelic.Application) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if nrApp != nil {
		engine.Use(nrgin.Middleware(nrApp))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Vehicle.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Vehicle.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Vehicle.Availability},
				{Method: http.MethodGet, Path: "/:id/blocked-dates", Handler: h.Vehicle.BlockedDates},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Vehicle.Rating},
				{Method: http.MethodPost, Path: "/:id/quote", Handler: h.Vehicle.Quote, Mw: []gin.HandlerFunc{optionalAuth}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.List},
			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/campaigns", Handler: h.Campaign.List},
			{Method: http.MethodGet, Path: "/campaigns/available", Handler: h.Campaign.ListAvailable, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/locations", Handler: h.Location.List},
			{Method: http.MethodGet, Path: "/enums/vehicle-colors", Handler: h.Vehicle.Colors},
			{Method: http.MethodGet, Path: "/enums/vehicle-statuses", Handler: h.Vehicle.Statuses},
			{Method: http.MethodPut, Path: "/users/:id", Handler: h.User.Update, Mw: []gin.HandlerFunc{requireAuth}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
