//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token that expired an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, past)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

// Session builds the caller value the auth middleware would produce.
func (h *JWTHelper) Session(t *testing.T, userID uuid.UUID, email string) auth.Session {
	t.Helper()
	return auth.NewSession(userID, email, h.GenerateToken(t, userID, email))
}
