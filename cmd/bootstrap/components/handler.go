package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVenueHandler,
		api.NewBookingSessionHandler,
		api.NewBookingHandler,
		api.NewAuthHandler,
		api.NewAccountHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Venue          *api.VenueHandler
	BookingSession *api.BookingSessionHandler
	Booking        *api.BookingHandler
	Auth           *api.AuthHandler
	Account        *api.AccountHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Venue:          p.Venue,
		BookingSession: p.BookingSession,
		Booking:        p.Booking,
		Auth:           p.Auth,
		Account:        p.Account,
	}
}
