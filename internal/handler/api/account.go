package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds      commands.AccountCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAccountHandler(cmds commands.AccountCommands, users queries.UserQueries, cfg config.Config) *AccountHandler {
	return &AccountHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Get profile
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Router /account/profile [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.users.GetCurrentUser(c.Request.Context(), s.UserID())
	if err != nil {
		httperr.Abort(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update profile
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /account/profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	view, err := h.cmds.UpdateProfile(c.Request.Context(), s, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update notification preferences
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateNotificationsRequest true "Preferences"
// @Success 200 {object} resdto.UserResponse
// @Router /account/notifications [put]
func (h *AccountHandler) UpdateNotifications(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateNotifications(c.Request.Context(), s, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update notifications")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Change password
// @Tags account
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ChangePasswordRequest true "Passwords"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /account/password [put]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ChangePassword(c.Request.Context(), s, req); err != nil {
		httperr.Abort(c, err, "Failed to change password")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete account
// @Tags account
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /account [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteAccount(c.Request.Context(), s); err != nil {
		httperr.Abort(c, err, "Failed to delete account")
		return
	}
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
