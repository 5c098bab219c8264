package api

import (
	"net/http"
	"strconv"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requireSession(c *gin.Context) (auth.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return auth.Session{}, false
	}
	return s, true
}

func parseVenueID(c *gin.Context) (venue.ID, bool) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || n <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(venue.ErrInvalidID, "parse venue id"), "Invalid venue id", nil)
		return 0, false
	}
	return venue.ID(n), true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
