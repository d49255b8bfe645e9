package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/admin"
)

// AdminHandler serves the admin dashboard
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// RegisterRoutes mounts the admin routes on api
func (h *AdminHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	api.GET("/admin/stats", h.GetStats, auth, middleware.RequireRole(models.RoleAdmin))
}

// GetStats returns the dashboard overview
func (h *AdminHandler) GetStats(c echo.Context) error {
	actor, _ := middleware.GetActor(c)
	stats, err := h.adminUC.GetDashboardStats(c.Request().Context(), actor)
	if err != nil {
		logger.Error("Failed to load dashboard stats", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dashboard stats retrieved", stats)
}
