//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	mockCmds    *commandsmock.MockBookingCommands
	auth        *authFixture
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.auth = newAuthFixture(s.T())

	h := api.NewBookingHandler(s.mockQueries, s.mockCmds)
	bookings := s.router.Group("/bookings", s.auth.middleware.RequireAuth())
	bookings.GET("", h.List)
	bookings.DELETE("/:id", h.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestList() {
	record := builder.NewBookingBuilder().BuildRecord(builder.GardenPavilion(), s.auth.userID)
	view := queries.ToBookingView(record, booking.DateOf(builder.Today, time.UTC))

	s.Run("success: every booking without a status tab", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), ownedBy(s.auth.userID), (*booking.Status)(nil)).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.auth.token)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Equal(1, response.Count)
		s.Equal(record.ID, response.Bookings[0].ID)
		s.Equal("Upcoming", response.Bookings[0].Status)
		s.True(response.Bookings[0].CanCancel)
		s.Equal(3, response.Bookings[0].DurationDays)
	})

	s.Run("success: status tab is case insensitive", func() {
		completed := booking.StatusCompleted
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), gomock.Any(), &completed).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=COMPLETED", nil, s.auth.token)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Count)
	})

	s.Run("error: 400 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=archived", nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "success", err: nil, expectCode: http.StatusNoContent},
		{name: "another user's booking", err: errs.MarkAll(commands.ErrBookingForbidden, errs.ErrForbidden), expectCode: http.StatusForbidden},
		{name: "completed booking", err: errs.MarkAll(booking.ErrBookingCompleted, commands.ErrBookingFinished, errs.ErrConflict), expectCode: http.StatusConflict},
		{name: "unknown booking", err: errs.MarkAll(commands.ErrBookingNotFound, errs.ErrNotFound), expectCode: http.StatusNotFound},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCmds.EXPECT().Cancel(gomock.Any(), ownedBy(s.auth.userID), "bk-1").Return(tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/bk-1", nil, s.auth.token)

			if tc.err == nil {
				s.Equal(tc.expectCode, rec.Code)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Failed to cancel booking")
		})
	}
}
