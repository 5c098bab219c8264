package middleware

import (
	"log/slog"
	"net/http"

	"venue-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultRate = "30-M"

// NewRateLimiter limits requests per client IP with an in-process store.
// RATE_LIMIT uses the limiter format, e.g. "30-M" or "5-S".
func NewRateLimiter(cfg config.RateLimitConfig) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT, using default", "value", cfg.Rate, "default", defaultRate)
		rate, _ = limiter.NewRateFromFormatted(defaultRate)
	}

	instance := limiter.New(memory.NewStore(), rate)
	slog.Info("Rate limiter initialized", "limit", rate.Limit, "period", rate.Period.String())

	return ginlimiter.NewMiddleware(instance,
		ginlimiter.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests"},
			})
		}),
	)
}
