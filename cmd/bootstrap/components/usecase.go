package components

import (
	"context"

	"venue-booking/internal/usecase"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(registerSessionShutdown),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewBookingCommands,
		commands.NewBookingSessionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVenueQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// registerSessionShutdown closes open booking sessions when the app stops.
func registerSessionShutdown(lc fx.Lifecycle, sessions commands.BookingSessionCommands) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sessions.Shutdown()
			return nil
		},
	})
}
