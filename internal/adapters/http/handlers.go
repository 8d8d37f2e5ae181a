package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/monochrome-todo/core/internal/application/services"
	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
	"github.com/monochrome-todo/core/internal/ports"
)

// AuthHandler handles account-related requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles account creation
func (h *AuthHandler) Signup(c echo.Context) error {
	var req ports.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Signup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		}
		h.logger.Error("Signup failed", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Signup failed")
	}

	return c.JSON(http.StatusCreated, response)
}

// Signin handles authentication
func (h *AuthHandler) Signin(c echo.Context) error {
	var req ports.SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Signin(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
		}
		h.logger.Error("Signin failed", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Signin failed")
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteUser handles account removal by email
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	var req ports.DeleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.DeleteUser(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		h.logger.Error("Delete user failed", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Delete failed")
	}

	return c.JSON(http.StatusOK, ports.DeleteUserResponse{
		Message: "User deleted",
		User:    *user,
	})
}

// getUserIDFromContext extracts the authenticated caller identity set
// by the auth middleware.
func getUserIDFromContext(c echo.Context) uuid.UUID {
	user := c.Get("user")
	if user == nil {
		return uuid.Nil
	}

	if userStr, ok := user.(string); ok {
		userID, _ := uuid.Parse(userStr)
		return userID
	}

	return uuid.Nil
}
