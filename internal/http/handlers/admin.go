package handlers

import (
	"net/http"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
)

const packageNotFoundMsg = "Package not found."

func (h *Handlers) AdminDashboard(c *gin.Context) {
	render(c, http.StatusOK, "admin_dashboard", nil)
}

// GET /admin/users
func (h *Handlers) AdminUsers(c *gin.Context) {
	users, err := h.Admin.Users(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "user_list", gin.H{"users": users})
}

// GET /admin/feedback
func (h *Handlers) AdminFeedback(c *gin.Context) {
	rows, err := h.Feedback.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "feedback_reports", gin.H{"feedbacks": rows})
}

// GET /admin/bookings
func (h *Handlers) AdminBookings(c *gin.Context) {
	rows, err := h.Bookings.AllBookings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "all_bookings", gin.H{"bookings": rows})
}

// GET /admin/packages
func (h *Handlers) AdminPackages(c *gin.Context) {
	pkgs, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "manage_packages", gin.H{"packages": pkgs})
}

func (h *Handlers) AddPackageForm(c *gin.Context) {
	render(c, http.StatusOK, "add_package", gin.H{
		"statuses": []string{models.PackageAvailable, models.PackageUnavailable},
	})
}

// POST /admin/package/add
func (h *Handlers) AddPackage(c *gin.Context) {
	var in models.PackageInput
	_ = c.ShouldBind(&in)
	id, err := h.Catalog.Create(c.Request.Context(), in)
	if err != nil {
		failForm(c, "/admin/package/add", err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "package", "create", "package_id="+itoa(id))
	redirectWithFlash(c, "/admin/packages", "success", "Package added successfully!")
}

// GET /admin/package/edit/:id
func (h *Handlers) EditPackageForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.packageError(c, err)
		return
	}
	render(c, http.StatusOK, "edit_package", gin.H{
		"package":  p,
		"statuses": []string{models.PackageAvailable, models.PackageUnavailable},
	})
}

// POST /admin/package/edit/:id
func (h *Handlers) EditPackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.PackageInput
	_ = c.ShouldBind(&in)
	if err := h.Catalog.Update(c.Request.Context(), id, in); err != nil {
		h.packageError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "package", "update", "package_id="+itoa(id))
	redirectWithFlash(c, "/admin/packages", "success", "Package updated successfully!")
}

// POST /admin/package/delete/:id
func (h *Handlers) DeletePackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cascaded, err := h.Catalog.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "package", "delete",
		"package_id="+itoa(id)+" bookings_removed="+itoa(cascaded))
	redirectWithFlash(c, "/admin/packages", "info", "Package deleted.")
}

func (h *Handlers) packageError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		redirectWithFlash(c, "/admin/packages", "error", packageNotFoundMsg)
		return
	}
	failForm(c, "/admin/packages", err)
}

// AdminProfile shows the admin row with live catalog counts.
// GET /admin/profile
func (h *Handlers) AdminProfile(c *gin.Context) {
	ctx := c.Request.Context()
	admin, err := h.Auth.Profile(ctx, middleware.CurrentIdentity(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	stats, err := h.Admin.Stats(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "admin_profile", gin.H{"admin": admin, "stats": stats})
}
