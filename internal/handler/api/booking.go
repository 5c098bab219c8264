package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q    queries.BookingQueries
	cmds commands.BookingCommands
}

func NewBookingHandler(q queries.BookingQueries, cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{q: q, cmds: cmds}
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "upcoming, active or completed"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	status, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", err.Error())
		return
	}

	views, err := h.q.ListByStatus(c.Request.Context(), s, status)
	if err != nil {
		httperr.Abort(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), s, c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to cancel booking")
		return
	}
	c.Status(http.StatusNoContent)
}
