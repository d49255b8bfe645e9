package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/match"
)

// MatchHandler exposes match previews over HTTP
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// RegisterRoutes mounts the match routes on api
func (h *MatchHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	api.GET("/match/preview", h.Preview, auth)
}

// MatchPreview is the body returned by GET /match/preview
type MatchPreview struct {
	Match      *models.MatchResult   `json:"match"`
	Candidates []models.RankedHelper `json:"candidates"`
}

// Preview shows which helper a request would be matched to without creating it
func (h *MatchHandler) Preview(c echo.Context) error {
	categoryID := c.QueryParam("category_id")
	if categoryID == "" {
		return utils.BadRequestResponse(c, "Query parameter category_id is required")
	}

	location, err := parseLocation(c.QueryParam("latitude"), c.QueryParam("longitude"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	ranked, err := h.matchUC.RankCandidates(c.Request().Context(), categoryID, location)
	if err != nil {
		logger.Error("Failed to preview match",
			logger.String("category_id", categoryID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	preview := MatchPreview{Candidates: ranked}
	if len(ranked) > 0 {
		preview.Match = &models.MatchResult{Helper: ranked[0].Helper, DistanceKm: ranked[0].DistanceKm}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Match preview", preview)
}

// parseLocation reads an optional coordinate pair. Either part missing means no location.
func parseLocation(rawLat, rawLng string) (*models.Coordinate, error) {
	if rawLat == "" || rawLng == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, models.ErrInvalidCoordinate
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, models.ErrInvalidCoordinate
	}
	return models.OptionalCoordinate(&lat, &lng)
}
