package handlers

import (
	"net/http"

	"tourism/internal/domain"
	"tourism/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) MainDashboard(c *gin.Context) {
	render(c, http.StatusOK, "main_dashboard", nil)
}

// GET /explore
func (h *Handlers) Explore(c *gin.Context) {
	pkgs, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "explore_packages", gin.H{"packages": pkgs})
}

// Book records a booking for the signed-in user. A package id the storage
// layer rejects surfaces as a server error.
// GET /book/:package_id
func (h *Handlers) Book(c *gin.Context) {
	packageID, ok := pathID(c, "package_id")
	if !ok {
		return
	}
	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)
	if _, err := svc.Book(c.Request.Context(), middleware.CurrentIdentity(c), packageID); err != nil {
		_ = c.Error(err)
		return
	}
	redirectWithFlash(c, "/my_bookings", "success", "Package booked!")
}

// GET /my_bookings
func (h *Handlers) MyBookings(c *gin.Context) {
	rows, err := h.Bookings.MyBookings(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "my_bookings", gin.H{"bookings": rows})
}

// Receipt streams the PDF receipt of one of the user's bookings.
// GET /my_bookings/:id/receipt
func (h *Handlers) Receipt(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)
	pdfBytes, filename, err := svc.Receipt(c.Request.Context(), middleware.CurrentIdentity(c), bookingID)
	if err != nil {
		if domain.IsNotFound(err) {
			redirectWithFlash(c, "/my_bookings", "error", "Booking not found.")
			return
		}
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
