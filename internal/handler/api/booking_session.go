package api

import (
	"context"
	"net/http"

	"venue-booking/internal/domain/auth"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingSessionHandler exposes the booking wizard. Each session belongs to
// the user who opened it.
type BookingSessionHandler struct {
	cmds commands.BookingSessionCommands
}

func NewBookingSessionHandler(cmds commands.BookingSessionCommands) *BookingSessionHandler {
	return &BookingSessionHandler{cmds: cmds}
}

// @Summary Open booking session
// @Description Start the booking wizard for a venue
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Venue ID"
// @Success 201 {object} resdto.BookingSessionResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/booking-sessions [post]
func (h *BookingSessionHandler) Open(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	venueID, ok := parseVenueID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Open(c.Request.Context(), s, venueID)
	if err != nil {
		httperr.Abort(c, err, "Failed to open booking session")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionView(view))
}

// @Summary Get booking session
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id} [get]
func (h *BookingSessionHandler) Get(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.cmds.Get(c.Request.Context(), s, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking session")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Update booking fields
// @Description Partial update; omitted fields are kept
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateBookingSessionRequest true "Fields to change"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-sessions/{id} [patch]
func (h *BookingSessionHandler) Update(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), s, id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update booking session")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Advance to the next step
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking-sessions/{id}/advance [post]
func (h *BookingSessionHandler) Advance(c *gin.Context) {
	h.transition(c, h.cmds.Advance, "Cannot advance")
}

// @Summary Go back one step
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-sessions/{id}/retreat [post]
func (h *BookingSessionHandler) Retreat(c *gin.Context) {
	h.transition(c, h.cmds.Retreat, "Cannot go back")
}

// @Summary Confirm booking
// @Description Submit the reviewed booking
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.ConfirmResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /booking-sessions/{id}/confirm [post]
func (h *BookingSessionHandler) Confirm(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.Confirm(c.Request.Context(), s, id)
	if err != nil {
		httperr.Abort(c, err, "Booking failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmResult(res))
}

// @Summary Close booking session
// @Tags booking-sessions
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id} [delete]
func (h *BookingSessionHandler) Close(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Close(c.Request.Context(), s, id); err != nil {
		httperr.Abort(c, err, "Failed to close booking session")
		return
	}
	c.Status(http.StatusNoContent)
}

type transitionFunc func(ctx context.Context, s auth.Session, id uuid.UUID) (*commands.SessionView, error)

func (h *BookingSessionHandler) transition(c *gin.Context, fn transitionFunc, msg string) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := fn(c.Request.Context(), s, id)
	if err != nil {
		httperr.Abort(c, err, msg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}
