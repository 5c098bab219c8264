package bootstrap

import (
	"venue-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	JWTModule,
	StorageModule,
	components.UseCaseModule,
	components.HandlerModule,
)
