package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrUserAlreadyExists) {
			httperr.AbortWithError(c, http.StatusConflict, err, commands.ErrUserAlreadyExists.Error(), nil)
			return
		}
		httperr.Abort(c, err, "Registration failed")
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, res.AccessToken, res.ExpiresIn)
	c.JSON(http.StatusCreated, resdto.FromLoginResult(res))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, commands.ErrInvalidCredentials.Error(), nil)
			return
		}
		httperr.Abort(c, err, "Login failed")
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, res.AccessToken, res.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromLoginResult(res))
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookie is all the server can do
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
