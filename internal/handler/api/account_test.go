//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/handler/api"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/testutil"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCmds    *commandsmock.MockAccountCommands
	mockQueries *queriesmock.MockUserQueries
	auth        *authFixture
}

func (s *AccountHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockAccountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.auth = newAuthFixture(s.T())

	h := api.NewAccountHandler(s.mockCmds, s.mockQueries, config.NewTestConfig())
	account := s.router.Group("/account", s.auth.middleware.RequireAuth())
	account.GET("/profile", h.GetProfile)
	account.PUT("/profile", h.UpdateProfile)
	account.PUT("/notifications", h.UpdateNotifications)
	account.PUT("/password", h.ChangePassword)
	account.DELETE("", h.Delete)
}

func (s *AccountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) userView() *queries.UserView {
	return queries.ToUserView(builder.NewUserBuilder().MustBuild())
}

func (s *AccountHandlerTestSuite) TestGetProfile() {
	s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.auth.userID).Return(s.userView(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/account/profile", nil, s.auth.token)

	var response resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("Test", response.FirstName)
	s.Equal("Downtown", response.Location)
}

func (s *AccountHandlerTestSuite) TestUpdateProfile() {
	reqBody := reqdto.UpdateProfileRequest{FirstName: "Alex", LastName: "Smith", Email: "alex@example.com"}

	s.Run("success", func() {
		s.mockCmds.EXPECT().UpdateProfile(gomock.Any(), ownedBy(s.auth.userID), reqBody).Return(s.userView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/account/profile", reqBody, s.auth.token)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the email belongs to someone else", func() {
		s.mockCmds.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), reqBody).
			Return(nil, errs.Mark(commands.ErrEmailTaken, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/account/profile", reqBody, s.auth.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Failed to update profile")
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []testCaseAuth{
			{name: "missing first name", mutate: testutil.Field("first_name", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/account/profile",
					testutil.DtoMap(s.T(), reqBody, tc.mutate), s.auth.token)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})
}

func (s *AccountHandlerTestSuite) TestUpdateNotifications() {
	reqBody := reqdto.UpdateNotificationsRequest{Email: true, SMS: true}
	view := s.userView()
	view.Notifications = queries.NotificationsView{Email: true, SMS: true}
	s.mockCmds.EXPECT().UpdateNotifications(gomock.Any(), gomock.Any(), reqBody).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/account/notifications", reqBody, s.auth.token)

	var response resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.True(response.Notifications.SMS)
	s.False(response.Notifications.Marketing)
}

func (s *AccountHandlerTestSuite) TestChangePassword() {
	reqBody := reqdto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: builder.StrongPassword, ConfirmPassword: "Different!1"}

	s.Run("error: 400 when the confirmation differs", func() {
		s.mockCmds.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), reqBody).
			Return(errs.Mark(commands.ErrPasswordConfirmMismatch, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/account/password", reqBody, s.auth.token)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Failed to change password")
		s.Contains(string(body.Detail), "Passwords do not match")
	})

	s.Run("success: 204", func() {
		ok := reqBody
		ok.ConfirmPassword = ok.NewPassword
		s.mockCmds.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), ok).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/account/password", ok, s.auth.token)

		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AccountHandlerTestSuite) TestDelete() {
	s.mockCmds.EXPECT().DeleteAccount(gomock.Any(), ownedBy(s.auth.userID)).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/account", nil, s.auth.token)

	s.Equal(http.StatusNoContent, rec.Code)
	accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(accessCookie)
	s.Empty(accessCookie.Value)
}
