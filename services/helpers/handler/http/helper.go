package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/helpers"
)

// HelperHandler handles HTTP requests for helper accounts
type HelperHandler struct {
	helperUC helpers.HelperUC
}

// NewHelperHandler creates a new helper handler
func NewHelperHandler(helperUC helpers.HelperUC) *HelperHandler {
	return &HelperHandler{helperUC: helperUC}
}

// RegisterRoutes mounts the helper routes on api
func (h *HelperHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	api.POST("/helpers", h.CreateHelper)
	api.GET("/helpers/:helperID", h.GetHelper, auth)
	api.PUT("/helpers/:helperID/location", h.UpdateLocation, auth, middleware.RequireRole(models.RoleHelper))
	api.POST("/helpers/:helperID/availability/toggle", h.ToggleAvailability, auth, middleware.RequireRole(models.RoleHelper))
	api.PUT("/helpers/:helperID/availability", h.SetAvailability, auth, middleware.RequireRole(models.RoleHelper))

	admin := api.Group("/admin/helpers", auth, middleware.RequireRole(models.RoleAdmin))
	admin.GET("", h.ListHelpers)
	admin.POST("/:helperID/approve", h.ApproveHelper)
}

// CreateHelperRequest is the body of POST /helpers.
// Latitude and longitude must be sent together.
type CreateHelperRequest struct {
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	CategoryID string   `json:"category_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// LocationRequest is the body of PUT /helpers/:helperID/location
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AvailabilityRequest is the body of PUT /helpers/:helperID/availability
type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

// CreateHelper registers a helper
func (h *HelperHandler) CreateHelper(c echo.Context) error {
	var req CreateHelperRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for helper creation",
			logger.Err(err),
			logger.String("endpoint", "CreateHelper"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	location, err := models.OptionalCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	helper := models.Helper{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		CategoryID: req.CategoryID,
		Location:   location,
	}
	if err := h.helperUC.RegisterHelper(c.Request().Context(), &helper); err != nil {
		logger.Warn("Failed to create helper",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Helper created successfully", helper)
}

// GetHelper returns a helper account
func (h *HelperHandler) GetHelper(c echo.Context) error {
	helper, err := h.helperUC.GetHelper(c.Request().Context(), c.Param("helperID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Helper retrieved successfully", helper)
}

// UpdateLocation moves the calling helper
func (h *HelperHandler) UpdateLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return utils.BadRequestResponse(c, "Latitude and longitude are required")
	}

	actor, _ := middleware.GetActor(c)
	location := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	helper, err := h.helperUC.UpdateLocation(c.Request().Context(), actor, c.Param("helperID"), location)
	if err != nil {
		logger.Warn("Failed to update helper location",
			logger.String("helper_id", c.Param("helperID")),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", helper)
}

// ToggleAvailability flips the calling helper's availability
func (h *HelperHandler) ToggleAvailability(c echo.Context) error {
	actor, _ := middleware.GetActor(c)
	available, err := h.helperUC.ToggleAvailability(c.Request().Context(), actor, c.Param("helperID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability toggled", map[string]bool{"available": available})
}

// SetAvailability sets the calling helper's availability
func (h *HelperHandler) SetAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil || req.Available == nil {
		return utils.BadRequestResponse(c, "Field available is required")
	}

	actor, _ := middleware.GetActor(c)
	if err := h.helperUC.SetAvailability(c.Request().Context(), actor, c.Param("helperID"), *req.Available); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", map[string]bool{"available": *req.Available})
}

// ApproveHelper marks a helper as vetted
func (h *HelperHandler) ApproveHelper(c echo.Context) error {
	actor, _ := middleware.GetActor(c)
	helper, err := h.helperUC.ApproveHelper(c.Request().Context(), actor, c.Param("helperID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Helper approved", helper)
}

// ListHelpers returns helpers, optionally filtered by ?approved=true|false
func (h *HelperHandler) ListHelpers(c echo.Context) error {
	var filter models.HelperFilter
	if raw := c.QueryParam("approved"); raw != "" {
		approved, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Query parameter approved must be a boolean")
		}
		filter.Approved = &approved
	}

	actor, _ := middleware.GetActor(c)
	list, err := h.helperUC.ListHelpers(c.Request().Context(), actor, filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Helpers retrieved successfully", list)
}
