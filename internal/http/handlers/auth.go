package handlers

import (
	"fmt"
	"net/http"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "user_register", nil)
}

func (h *Handlers) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "user_login", nil)
}

func (h *Handlers) AdminRegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "admin_register", nil)
}

func (h *Handlers) AdminLoginForm(c *gin.Context) {
	render(c, http.StatusOK, "admin_login", nil)
}

// POST /register
func (h *Handlers) Register(c *gin.Context) {
	h.register(c, domain.KindUser, "/register", "/login", "Registration successful!")
}

// POST /admin_register
func (h *Handlers) AdminRegister(c *gin.Context) {
	h.register(c, domain.KindAdmin, "/admin_register", "/admin_login", "Admin registered!")
}

func (h *Handlers) register(c *gin.Context, kind domain.PrincipalKind, formPath, loginPath, okMsg string) {
	var in models.RegisterInput
	_ = c.ShouldBind(&in)

	id, err := h.Auth.Register(c.Request.Context(), kind, in)
	if err != nil {
		failForm(c, formPath, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", fmt.Sprintf("kind=%s subject_id=%d", kind, id))
	redirectWithFlash(c, loginPath, "success", okMsg)
}

// POST /login
func (h *Handlers) Login(c *gin.Context) {
	h.login(c, domain.KindUser, "/login", "Logged in successfully!")
}

// POST /admin_login
func (h *Handlers) AdminLogin(c *gin.Context) {
	h.login(c, domain.KindAdmin, "/admin_login", "Admin login successful!")
}

func (h *Handlers) login(c *gin.Context, kind domain.PrincipalKind, formPath, okMsg string) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	reqID := middleware.GetRequestID(c)

	p, id, err := h.Auth.Login(c.Request.Context(), kind, email, password)
	if err != nil {
		if domain.IsUnauthorized(err) {
			utils.LogEvent(reqID, "auth", "login_failed", fmt.Sprintf("kind=%s", kind))
		}
		failForm(c, formPath, err)
		return
	}
	middleware.SignIn(c, id, p.Email)
	utils.LogEvent(reqID, "auth", "login", fmt.Sprintf("kind=%s subject_id=%d", kind, id.SubjectID))
	redirectWithFlash(c, dashboardFor(id), "success", okMsg)
}

func dashboardFor(id domain.Identity) string {
	if id.IsAdmin() {
		return "/admin_dashboard"
	}
	return "/main_dashboard"
}

// GET /logout
func (h *Handlers) Logout(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	middleware.SignOut(c)
	if id.Authenticated() {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "logout", fmt.Sprintf("role=%s subject_id=%d", id.Role, id.SubjectID))
	}
	redirectWithFlash(c, "/", "info", "Logged out successfully.")
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Kind     string `json:"kind"`
}

type tokenResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// IssueToken exchanges credentials for a bearer token.
// POST /api/auth/token
func (h *Handlers) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload")
		return
	}
	kind := domain.ParseKind(req.Kind)
	_, id, err := h.Auth.Login(c.Request.Context(), kind, req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	token, err := h.Tokens.Issue(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "issue_token", fmt.Sprintf("kind=%s subject_id=%d", kind, id.SubjectID))
	c.JSON(http.StatusOK, tokenResponse{Token: token, Role: id.Role})
}
