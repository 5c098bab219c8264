//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type validatorFunc func(token string) (auth.Session, error)

func (f validatorFunc) ValidateToken(token string) (auth.Session, error) { return f(token) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects requests over the budget", func(t *testing.T) {
		r := gin.New()
		r.GET("/limited", middleware.NewRateLimiter(config.RateLimitConfig{Rate: "2-M"}), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		for range 2 {
			w := serve(r, httptest.NewRequest(http.MethodGet, "/limited", nil))
			require.Equal(t, http.StatusNoContent, w.Code)
		}
		w := serve(r, httptest.NewRequest(http.MethodGet, "/limited", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("invalid format falls back to the default", func(t *testing.T) {
		r := gin.New()
		r.GET("/limited", middleware.NewRateLimiter(config.RateLimitConfig{Rate: "lots"}), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := serve(r, httptest.NewRequest(http.MethodGet, "/limited", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "30", w.Header().Get("X-RateLimit-Limit"))
	})
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()
	valid := validatorFunc(func(token string) (auth.Session, error) {
		if token != "good" {
			return auth.Session{}, errors.New("bad token")
		}
		return auth.NewSession(userID, "jane@example.com", token), nil
	})

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.NewAuthMiddleware(valid).RequireAuth(), func(c *gin.Context) {
			s, ok := middleware.GetSession(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			id, _ := middleware.GetUserID(c)
			c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "email": s.Email(), "token": s.Token()})
		})
		return r
	}

	tests := []struct {
		name       string
		prepare    func(*http.Request)
		expectCode int
		expectBody string
	}{
		{
			name:       "cookie token",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "good"}) },
			expectCode: http.StatusOK,
			expectBody: userID.String(),
		},
		{
			name:       "bearer token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			expectCode: http.StatusOK,
			expectBody: "jane@example.com",
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "good"})
				r.Header.Set("Authorization", "Bearer bad")
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "missing token",
			prepare:    func(*http.Request) {},
			expectCode: http.StatusUnauthorized,
			expectBody: "Access token required",
		},
		{
			name:       "non-bearer scheme",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Basic good") },
			expectCode: http.StatusUnauthorized,
			expectBody: "Access token required",
		},
		{
			name:       "rejected token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			expectCode: http.StatusUnauthorized,
			expectBody: "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)

			w := serve(newRouter(), req)

			assert.Equal(t, tt.expectCode, w.Code, w.Body.String())
			if tt.expectBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectBody)
			}
		})
	}
}

func TestErrorHandling(t *testing.T) {
	t.Run("recovery turns a panic into 500", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
		r.GET("/boom", func(*gin.Context) { panic("boom") })

		w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})

	t.Run("aborted errors keep their class status", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/missing", func(c *gin.Context) {
			httperr.Abort(c, errs.Mark(errs.New("venue 9 not found"), errs.ErrNotFound), "Venue not found")
		})

		w := serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "venue 9 not found")
	})
}

func TestLoggingMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.LoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
		r.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, middleware.GetRequestID(c))
		})
		return r
	}

	t.Run("keeps the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "front-end-42")

		w := serve(newRouter(), req)

		assert.Equal(t, "front-end-42", w.Body.String())
		assert.Equal(t, "front-end-42", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		_, err := uuid.Parse(w.Body.String())
		require.NoError(t, err)
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}
