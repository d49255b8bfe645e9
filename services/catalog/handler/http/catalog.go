package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/catalog"
)

// CatalogHandler handles HTTP requests for service categories
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// RegisterRoutes mounts the category routes on api
func (h *CatalogHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory, auth, middleware.RequireRole(models.RoleAdmin))
}

// CreateCategoryRequest is the body of POST /categories
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListCategories returns every category
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list categories", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory adds a category
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	actor, _ := middleware.GetActor(c)
	category, err := h.catalogUC.CreateCategory(c.Request().Context(), actor, req.Name, req.Description)
	if err != nil {
		logger.Warn("Failed to create category",
			logger.String("name", req.Name),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", category)
}
