package handlers

import (
	"net/http"

	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /profile
func (h *Handlers) Profile(c *gin.Context) {
	p, err := h.Auth.Profile(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "profile", gin.H{"user": p})
}

// POST /update_profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var in models.ProfileInput
	_ = c.ShouldBind(&in)
	if err := h.Auth.UpdateProfile(c.Request.Context(), middleware.CurrentIdentity(c), in); err != nil {
		failForm(c, "/profile", err)
		return
	}
	redirectWithFlash(c, "/profile", "success", "Profile updated!")
}

func (h *Handlers) ChangePasswordForm(c *gin.Context) {
	render(c, http.StatusOK, "change_password", nil)
}

// POST /change_password
func (h *Handlers) ChangePassword(c *gin.Context) {
	var in models.PasswordChange
	_ = c.ShouldBind(&in)
	if err := h.Auth.ChangePassword(c.Request.Context(), middleware.CurrentIdentity(c), in); err != nil {
		failForm(c, "/change_password", err)
		return
	}
	redirectWithFlash(c, "/profile", "success", "Password changed!")
}
