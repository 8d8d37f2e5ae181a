package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monochrome-todo/core/internal/application/services"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
	"github.com/monochrome-todo/core/internal/ports"
)

// ThemeHandler handles theme preference requests
type ThemeHandler struct {
	themeService *services.ThemeService
	logger       *logger.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeService *services.ThemeService, logger *logger.Logger) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
		logger:       logger,
	}
}

// GetTheme returns the caller's theme, or an empty object when the
// caller has no theme record yet.
func (h *ThemeHandler) GetTheme(c echo.Context) error {
	userID := getUserIDFromContext(c)

	theme, err := h.themeService.GetTheme(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Get theme failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch theme options")
	}

	if theme == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}

	return c.JSON(http.StatusOK, theme)
}

// SetTheme upserts the caller's theme record
func (h *ThemeHandler) SetTheme(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.UpdateThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	theme, err := h.themeService.SetTheme(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Error("Set theme failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update theme options")
	}

	return c.JSON(http.StatusOK, theme)
}
