package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/monochrome-todo/core/internal/application/services"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
)

// AuthMiddleware validates the bearer token on protected routes and
// sets the caller identity on the request context. It is the single
// authorization gate for every protected operation: on any failure the
// handler is never invoked.
func AuthMiddleware(authService *services.AuthService, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				log.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
					"path":  c.Request().URL.Path,
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("user", claims.UserID)

			return next(c)
		}
	}
}
