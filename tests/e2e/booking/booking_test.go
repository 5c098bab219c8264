//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/handler/dto/request"
	"venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/ptr"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const gardenPavilion = 2

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(time.DateOnly)
}

func sessionURL(id string, action string) string {
	if action == "" {
		return "/api/booking-sessions/" + id
	}
	return "/api/booking-sessions/" + id + "/" + action
}

func (s *bookingSuite) login() string {
	return authtest.LoginUser(s.T(), s.Router, "test@example.com", "password123")
}

func (s *bookingSuite) open(token string) response.BookingSessionResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf("/api/venues/%d/booking-sessions", gardenPavilion), nil, token)
	var sess response.BookingSessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &sess)
	require.Equal(t, 0, sess.Step.Index)
	return sess
}

func (s *bookingSuite) TestWizardFlow() {
	s.Run("book and cancel a venue", func() {
		t := s.T()
		token := s.login()
		sess := s.open(token)
		id := sess.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, sessionURL(id, ""), request.UpdateBookingSessionRequest{
			StartDate: ptr.Of(futureDate(30)),
			EndDate:   ptr.Of(futureDate(32)),
			Attendees: ptr.Of(120),
			EventType: ptr.Of("Wedding"),
			Purpose:   ptr.Of("Summer wedding reception"),
		}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sess)
		require.Equal(t, 3, sess.DurationDays)
		require.InDelta(t, 4500.0, sess.TotalPrice, 0.001)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL(id, "advance"), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sess)
		require.Equal(t, "Contact Information", sess.Step.Title)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, sessionURL(id, ""), request.UpdateBookingSessionRequest{
			ContactName:  ptr.Of("Test User"),
			ContactPhone: ptr.Of("+1 555 0100"),
			ContactEmail: ptr.Of("test@example.com"),
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL(id, "advance"), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sess)
		require.Equal(t, "Review & Confirm", sess.Step.Title)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL(id, "confirm"), nil, token)
		var confirmed response.ConfirmResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)
		require.NotEmpty(t, confirmed.Receipt.BookingID)
		require.Equal(t, "Garden Pavilion", confirmed.Receipt.VenueName)
		require.InDelta(t, 4500.0, confirmed.Receipt.TotalPrice, 0.001)

		var stored int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM bookings WHERE id = $1", confirmed.Receipt.BookingID).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, 1, stored)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings?status=upcoming", nil, token)
		var list response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 1, list.Count)
		require.Equal(t, confirmed.Receipt.BookingID, list.Bookings[0].ID)
		require.True(t, list.Bookings[0].CanCancel)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/bookings/"+confirmed.Receipt.BookingID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Zero(t, list.Count)
	})
}

func (s *bookingSuite) TestStepValidation() {
	s.Run("advance with missing details", func() {
		t := s.T()
		token := s.login()
		sess := s.open(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL(sess.ID.String(), "advance"), nil, token)
		httptest.AssertFieldErrors(t, w, "startDate", "endDate", "attendees", "eventType", "purpose")
	})

	s.Run("attendees above capacity", func() {
		t := s.T()
		token := s.login()
		sess := s.open(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, sessionURL(sess.ID.String(), ""), request.UpdateBookingSessionRequest{
			StartDate: ptr.Of(futureDate(10)),
			EndDate:   ptr.Of(futureDate(10)),
			Attendees: ptr.Of(500),
			EventType: ptr.Of("Wedding"),
			Purpose:   ptr.Of("Too many guests"),
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL(sess.ID.String(), "advance"), nil, token)
		httptest.AssertFieldErrors(t, w, "attendees")
	})
}

func (s *bookingSuite) TestSessionOwnership() {
	s.Run("another user cannot read the session", func() {
		t := s.T()
		sess := s.open(s.login())

		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sessionURL(sess.ID.String(), ""), nil, other)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestVenueSearch() {
	s.Run("filters by capacity", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/venues?capacity_min=500", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "Grand Ballroom")
		require.NotContains(t, w.Body.String(), "Garden Pavilion")
	})
}
