//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/handler/api"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/ptr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingSessionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockBookingSessionCommands
	auth     *authFixture
	id       uuid.UUID
}

func (s *BookingSessionHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockBookingSessionCommands(s.mockCtrl)
	s.auth = newAuthFixture(s.T())
	s.id = uuid.New()

	h := api.NewBookingSessionHandler(s.mockCmds)
	requireAuth := s.auth.middleware.RequireAuth()
	s.router.POST("/venues/:id/booking-sessions", requireAuth, h.Open)
	sessions := s.router.Group("/booking-sessions", requireAuth)
	sessions.GET("/:id", h.Get)
	sessions.PATCH("/:id", h.Update)
	sessions.POST("/:id/advance", h.Advance)
	sessions.POST("/:id/retreat", h.Retreat)
	sessions.POST("/:id/confirm", h.Confirm)
	sessions.DELETE("/:id", h.Close)
}

func (s *BookingSessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingSessionHandlerTestSuite))
}

func (s *BookingSessionHandlerTestSuite) url(suffix string) string {
	return "/booking-sessions/" + s.id.String() + suffix
}

func (s *BookingSessionHandlerTestSuite) view(step booking.Step) *commands.SessionView {
	return &commands.SessionView{
		ID: s.id,
		State: booking.State{
			Venue:   builder.GardenPavilion(),
			Step:    step,
			Outcome: booking.OutcomeIdle,
			Fields:  builder.NewBookingBuilder().BuildFields(),
		},
	}
}

// ownedBy matches a session argument by its user.
func ownedBy(userID uuid.UUID) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(auth.Session)
		return ok && s.UserID() == userID
	})
}

func (s *BookingSessionHandlerTestSuite) TestOpen() {
	s.Run("success: returns 201 with the step layout", func() {
		s.mockCmds.EXPECT().Open(gomock.Any(), ownedBy(s.auth.userID), venue.ID(2)).
			Return(s.view(booking.StepEventDetails), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/venues/2/booking-sessions", nil, s.auth.token)

		var response resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(s.id, response.ID)
		s.Equal("Event Details", response.Step.Title)
		s.Len(response.Steps, 3)
		s.Equal("2024-06-01", response.Fields.StartDate)
		s.Require().NotNil(response.Venue)
		s.Equal("Garden Pavilion", response.Venue.Name)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/venues/2/booking-sessions", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 for a non-numeric venue id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/venues/abc/booking-sessions", nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid venue id")
	})

	s.Run("error: 404 for an unknown venue", func() {
		s.mockCmds.EXPECT().Open(gomock.Any(), gomock.Any(), venue.ID(99)).
			Return(nil, errs.Mark(errs.New("venue not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/venues/99/booking-sessions", nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingSessionHandlerTestSuite) TestGet() {
	s.Run("error: 403 for another user's session", func() {
		s.mockCmds.EXPECT().Get(gomock.Any(), gomock.Any(), s.id).
			Return(nil, errs.Mark(commands.ErrSessionForbidden, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-sessions/not-a-uuid", nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingSessionHandlerTestSuite) TestUpdate() {
	s.Run("success: forwards only the sent fields", func() {
		want := reqdto.UpdateBookingSessionRequest{Attendees: ptr.Of(120), Purpose: ptr.Of("Reception")}
		s.mockCmds.EXPECT().Update(gomock.Any(), gomock.Any(), s.id, want).
			Return(s.view(booking.StepEventDetails), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.url(""),
			map[string]any{"attendees": 120, "purpose": "Reception"}, s.auth.token)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for negative attendees", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.url(""),
			map[string]any{"attendees": -1}, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 while submitting", func() {
		s.mockCmds.EXPECT().Update(gomock.Any(), gomock.Any(), s.id, gomock.Any()).
			Return(nil, errs.Mark(booking.ErrSubmitting, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.url(""),
			map[string]any{"purpose": "Reception"}, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *BookingSessionHandlerTestSuite) TestAdvance() {
	s.Run("success: moves to the next step", func() {
		s.mockCmds.EXPECT().Advance(gomock.Any(), gomock.Any(), s.id).
			Return(s.view(booking.StepContactInfo), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/advance"), nil, s.auth.token)

		var response resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Step.Index)
		s.Equal("Contact Information", response.Step.Title)
	})

	s.Run("error: 422 lists the failing fields", func() {
		vErr := &booking.ValidationError{
			Step: booking.StepEventDetails,
			Fields: booking.FieldErrors{
				booking.FieldAttendees: "Exceeds venue capacity (200)",
				booking.FieldPurpose:   "Purpose is required",
			},
		}
		s.mockCmds.EXPECT().Advance(gomock.Any(), gomock.Any(), s.id).
			Return(nil, errs.Mark(vErr, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/advance"), nil, s.auth.token)

		httptest.AssertFieldErrors(s.T(), rec, "attendees", "purpose")
	})

	s.Run("error: 409 on the review step", func() {
		s.mockCmds.EXPECT().Advance(gomock.Any(), gomock.Any(), s.id).
			Return(nil, errs.Mark(booking.ErrAdvanceOnReview, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/advance"), nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot advance")
	})
}

func (s *BookingSessionHandlerTestSuite) TestRetreat() {
	s.mockCmds.EXPECT().Retreat(gomock.Any(), gomock.Any(), s.id).
		Return(nil, errs.Mark(booking.ErrAtFirstStep, errs.ErrConflict)).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/retreat"), nil, s.auth.token)

	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot go back")
}

func (s *BookingSessionHandlerTestSuite) TestConfirm() {
	s.Run("success: returns 201 with the receipt", func() {
		draft, err := builder.NewBookingBuilder().BuildDraft(builder.GardenPavilion())
		s.Require().NoError(err)
		receipt := booking.Receipt{BookingID: "bk-42", Draft: draft, SubmittedAt: builder.Today, DisplayFor: 2 * time.Second}
		done := s.view(booking.StepEventDetails)
		done.State.Outcome = booking.OutcomeSucceeded
		done.State.Fields = booking.Fields{}
		done.State.Receipt = &receipt
		s.mockCmds.EXPECT().Confirm(gomock.Any(), ownedBy(s.auth.userID), s.id).
			Return(&commands.ConfirmResult{Session: *done, Receipt: receipt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/confirm"), nil, s.auth.token)

		var response resdto.ConfirmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("bk-42", response.Receipt.BookingID)
		s.InDelta(4500.0, response.Receipt.TotalPrice, 0.001)
		s.InDelta(2.0, response.Receipt.DisplayForSec, 0.001)
		s.Equal("succeeded", response.Session.Outcome)
		s.Empty(response.Session.Fields.StartDate)
	})

	s.Run("error: 502 when the backend rejects the booking", func() {
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any(), s.id).
			Return(nil, errs.Mark(errs.New("upstream returned 500"), errs.ErrSubmission)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/confirm"), nil, s.auth.token)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Booking failed")
		s.Empty(body.Detail)
	})

	s.Run("error: 502 on timeout", func() {
		timeout := errs.Mark(errs.Mark(errs.New("context deadline exceeded"), booking.ErrSubmitTimeout), errs.ErrSubmission)
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any(), s.id).Return(nil, timeout).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/confirm"), nil, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Booking failed")
	})

	s.Run("error: 422 when the venue changed underneath", func() {
		vErr := &booking.ValidationError{
			Step:   booking.StepEventDetails,
			Fields: booking.FieldErrors{booking.FieldAttendees: "Exceeds venue capacity (100)"},
		}
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any(), s.id).
			Return(nil, errs.Mark(vErr, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/confirm"), nil, s.auth.token)

		httptest.AssertFieldErrors(s.T(), rec, "attendees")
	})
}

func (s *BookingSessionHandlerTestSuite) TestClose() {
	s.mockCmds.EXPECT().Close(gomock.Any(), gomock.Any(), s.id).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url(""), nil, s.auth.token)

	s.Equal(http.StatusNoContent, rec.Code)
}
