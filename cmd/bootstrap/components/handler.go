package components

import (
	"vehicle-rental/internal/handler"
	"vehicle-rental/internal/handler/api"
	"vehicle-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVehicleHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewCampaignHandler,
		api.NewLocationHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlersIn struct {
	fx.In

	Auth        *api.AuthHandler
	Vehicle     *api.VehicleHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Campaign    *api.CampaignHandler
	Location    *api.LocationHandler
	User        *api.UserHandler
}

func NewHandlers(in handlersIn) handler.Handlers {
	return handler.Handlers{
		Auth:        in.Auth,
		Vehicle:     in.Vehicle,
		Reservation: in.Reservation,
		Review:      in.Review,
		Campaign:    in.Campaign,
		Location:    in.Location,
		User:        in.User,
	}
}
