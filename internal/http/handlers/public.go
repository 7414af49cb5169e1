package handlers

import (
	"net/http"

	"tourism/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Home(c *gin.Context) {
	render(c, http.StatusOK, "index", nil)
}

func (h *Handlers) AboutUs(c *gin.Context) {
	render(c, http.StatusOK, "about_us", nil)
}

func (h *Handlers) ContactForm(c *gin.Context) {
	render(c, http.StatusOK, "contact_us", nil)
}

// SubmitContact stores a feedback message from any visitor.
// POST /contact
func (h *Handlers) SubmitContact(c *gin.Context) {
	var in models.FeedbackInput
	if err := c.ShouldBind(&in); err != nil {
		redirectWithFlash(c, "/contact", "error", "All fields are required.")
		return
	}
	if _, err := h.Feedback.Submit(c.Request.Context(), in); err != nil {
		failForm(c, "/contact", err)
		return
	}
	redirectWithFlash(c, "/contact", "success", "Thank you for your feedback!")
}
