package bootstrap

import (
	"log/slog"

	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process logger with the same level and time zone as request logs.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}
