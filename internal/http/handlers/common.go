package handlers

import (
	"net/http"
	"strconv"

	"tourism/internal/auth"
	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

const brand = "Tourism"

// Handlers holds the services every page handler draws on.
type Handlers struct {
	Auth     services.AuthService
	Catalog  services.CatalogService
	Bookings services.BookingService
	Feedback services.FeedbackService
	Admin    services.AdminService
	Tokens   *auth.TokenManager
	Store    *intdb.Store
}

// render writes a page model: the page name, pending flashes, the current
// identity when signed in, then the page data.
func render(c *gin.Context, status int, page string, data gin.H) {
	body := gin.H{
		"page":    page,
		"brand":   brand,
		"flashes": middleware.ConsumeFlashes(c),
	}
	if id := middleware.CurrentIdentity(c); id.Authenticated() {
		body["identity"] = id
	}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

func redirectWithFlash(c *gin.Context, location, category, message string) {
	if err := middleware.AddFlash(c, category, message); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, location)
}

// failForm answers recoverable errors with a flash and a redirect back to
// the form. Everything else is left to the error page.
func failForm(c *gin.Context, location string, err error) {
	if domain.IsRecoverable(err) {
		redirectWithFlash(c, location, "error", err.Error())
		return
	}
	_ = c.Error(err)
}

// pathID parses a positive integer route parameter. Anything else is
// treated as an unknown route.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		NotFound(c)
		return 0, false
	}
	return id, true
}

// NotFound renders the branded not-found page.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"page":  "not_found",
		"brand": brand,
		"path":  c.Request.URL.Path,
	})
}

// ErrorResponse is the JSON error body of the token API.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to API responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
