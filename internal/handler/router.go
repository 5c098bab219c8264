package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Venue          *api.VenueHandler
	BookingSession *api.BookingSessionHandler
	Booking        *api.BookingHandler
	Auth           *api.AuthHandler
	Account        *api.AccountHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// separate budgets so login attempts do not starve booking confirmations
	authLimit := middleware.NewRateLimiter(cfg.RateLimit)
	confirmLimit := middleware.NewRateLimiter(cfg.RateLimit)

	apiGroup := engine.Group("/api")
	{
		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Venue.Search},
				{Method: http.MethodGet, Path: "/facets", Handler: h.Venue.Facets},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Venue.Get},
				{Method: http.MethodPost, Path: "/:id/booking-sessions", Handler: h.BookingSession.Open,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		sessions := apiGroup.Group("/booking-sessions")
		sessions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.BookingSession.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.BookingSession.Update},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: h.BookingSession.Advance},
				{Method: http.MethodPost, Path: "/:id/retreat", Handler: h.BookingSession.Retreat},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.BookingSession.Confirm,
					Mw: []gin.HandlerFunc{confirmLimit}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.BookingSession.Close},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{authLimit}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{authLimit}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		account := apiGroup.Group("/account")
		account.Use(authMiddleware.RequireAuth())
		{
			addRoutes(account, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Account.GetProfile},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Account.UpdateProfile},
				{Method: http.MethodPut, Path: "/notifications", Handler: h.Account.UpdateNotifications},
				{Method: http.MethodPut, Path: "/password", Handler: h.Account.ChangePassword},
				{Method: http.MethodDelete, Path: "", Handler: h.Account.Delete},
			})
		}
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

// addRoutes registers each route with its own middleware ahead of the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
