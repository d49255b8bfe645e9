package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/requests"
)

// RequestHandler handles HTTP requests for service requests
type RequestHandler struct {
	requestUC   requests.RequestUC
	submitLimit echo.MiddlewareFunc
}

// NewRequestHandler creates a new request handler. submitLimit throttles
// POST /requests and may be nil.
func NewRequestHandler(requestUC requests.RequestUC, submitLimit echo.MiddlewareFunc) *RequestHandler {
	return &RequestHandler{
		requestUC:   requestUC,
		submitLimit: submitLimit,
	}
}

// RegisterRoutes mounts the request routes on api
func (h *RequestHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	submit := []echo.MiddlewareFunc{auth, middleware.RequireRole(models.RoleUser)}
	if h.submitLimit != nil {
		submit = append(submit, h.submitLimit)
	}

	api.POST("/requests", h.SubmitRequest, submit...)
	api.GET("/requests", h.ListRequests, auth)
	api.GET("/requests/:requestID", h.GetRequest, auth)
	api.PUT("/requests/:requestID/status", h.SetStatus, auth, middleware.RequireRole(models.RoleHelper))
}

// SubmitRequestBody is the body of POST /requests.
// Latitude and longitude must be sent together.
type SubmitRequestBody struct {
	CategoryID  string   `json:"category_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// SetStatusBody is the body of PUT /requests/:requestID/status
type SetStatusBody struct {
	Status string `json:"status"`
}

// SubmitRequest creates a request and matches it to a helper
func (h *RequestHandler) SubmitRequest(c echo.Context) error {
	var body SubmitRequestBody
	if err := c.Bind(&body); err != nil {
		logger.Warn("Invalid request payload for service request",
			logger.Err(err),
			logger.String("endpoint", "SubmitRequest"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	location, err := models.OptionalCoordinate(body.Latitude, body.Longitude)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	actor, _ := middleware.GetActor(c)
	input := &models.SubmitRequestInput{
		CategoryID:  body.CategoryID,
		Title:       body.Title,
		Description: body.Description,
		Address:     body.Address,
		Location:    location,
	}
	request, err := h.requestUC.SubmitRequest(c.Request().Context(), actor, input)
	if err != nil {
		logger.Warn("Failed to submit service request",
			logger.String("requester_id", actor.ID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	middleware.SetRequestID(c, request.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Request submitted successfully", request)
}

// ListRequests lists the caller's requests, newest first
func (h *RequestHandler) ListRequests(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "Query parameter limit must be a positive integer")
		}
		limit = parsed
	}

	actor, _ := middleware.GetActor(c)
	list, err := h.requestUC.ListRequests(c.Request().Context(), actor, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", list)
}

// GetRequest returns a single request
func (h *RequestHandler) GetRequest(c echo.Context) error {
	actor, _ := middleware.GetActor(c)
	request, err := h.requestUC.GetRequest(c.Request().Context(), actor, c.Param("requestID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request retrieved successfully", request)
}

// SetStatus moves a request through its lifecycle
func (h *RequestHandler) SetStatus(c echo.Context) error {
	var body SetStatusBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if body.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	actor, _ := middleware.GetActor(c)
	requestID := c.Param("requestID")
	middleware.SetRequestID(c, requestID)
	request, err := h.requestUC.SetStatus(c.Request().Context(), actor, requestID, models.RequestStatus(body.Status))
	if err != nil {
		logger.Warn("Failed to update request status",
			logger.String("request_id", requestID),
			logger.String("status", body.Status),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", request)
}
