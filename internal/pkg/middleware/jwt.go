package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nearfix/internal/pkg/jwt"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
)

const actorKey = "actor"

// JWTAuthMiddleware authenticates a bearer token and stores the actor on the context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			actor, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			SetActor(c, actor)
			SetUserID(c, actor.ID)
			return next(c)
		}
	}
}

// RequireRole rejects actors whose role is not one of roles
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Role "+string(actor.Role)+" cannot access this resource")
		}
	}
}

// SetActor stores the authenticated actor on the echo context
func SetActor(c echo.Context, actor models.Actor) {
	c.Set(actorKey, actor)
	c.Set(logger.ActorIDKey, actor.ID)
}

// GetActor returns the authenticated actor
func GetActor(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorKey).(models.Actor)
	return actor, ok
}
