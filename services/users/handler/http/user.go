package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/users"
)

// UserHandler handles HTTP requests for requester accounts
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// RegisterRoutes mounts the user routes on api
func (h *UserHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	api.POST("/users", h.CreateUser)
	api.GET("/users/:userID", h.GetUser, auth)
	api.GET("/admin/users", h.ListUsers, auth, middleware.RequireRole(models.RoleAdmin))
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// CreateUser registers a requester
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for user creation",
			logger.Err(err),
			logger.String("endpoint", "CreateUser"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := h.userUC.RegisterUser(c.Request().Context(), &user); err != nil {
		logger.Warn("Failed to create user",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// GetUser returns a requester account
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	actor, _ := middleware.GetActor(c)
	user, err := h.userUC.GetUser(c.Request().Context(), actor, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ListUsers returns every requester account to an admin
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, _ := middleware.GetActor(c)
	list, err := h.userUC.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", list)
}
