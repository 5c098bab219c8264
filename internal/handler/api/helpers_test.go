//go:build unit

package api_test

import (
	"testing"

	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase"
	"venue-booking/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authFixture signs tokens the real auth middleware accepts.
type authFixture struct {
	middleware *middleware.AuthMiddleware
	userID     uuid.UUID
	email      string
	token      string
	jwt        *authtest.JWTHelper
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := config.NewTestConfig()
	service := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clock.NewRealClock())
	helper := authtest.NewJWTHelper(cfg.JWT)

	f := &authFixture{
		middleware: middleware.NewAuthMiddleware(usecase.NewTokenValidator(service)),
		userID:     uuid.New(),
		email:      "test@example.com",
		jwt:        helper,
	}
	f.token = helper.GenerateToken(t, f.userID, f.email)
	return f
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
