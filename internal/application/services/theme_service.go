package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
	"github.com/monochrome-todo/core/internal/ports"
)

// ThemeService handles theme preference operations
type ThemeService struct {
	themeRepo ports.ThemeRepository
	logger    *logger.Logger
}

// NewThemeService creates a new theme service
func NewThemeService(themeRepo ports.ThemeRepository, logger *logger.Logger) *ThemeService {
	return &ThemeService{
		themeRepo: themeRepo,
		logger:    logger,
	}
}

// GetTheme returns the caller's theme record, or nil when none exists
// yet. The HTTP layer renders the nil case as an empty object.
func (s *ThemeService) GetTheme(ctx context.Context, userID uuid.UUID) (*entities.Theme, error) {
	theme, err := s.themeRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrThemeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return theme, nil
}

// SetTheme upserts the caller's theme record, replacing prior values
// for the fields supplied and keeping defaults or existing values for
// the rest.
func (s *ThemeService) SetTheme(ctx context.Context, userID uuid.UUID, req ports.UpdateThemeRequest) (*entities.Theme, error) {
	theme, err := s.themeRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, entities.ErrThemeNotFound) {
			return nil, err
		}
		theme = entities.NewTheme(userID)
	}

	if req.DarkMode != nil {
		theme.DarkMode = *req.DarkMode
	}
	if req.BgColors != nil {
		theme.BgColors = *req.BgColors
	}

	if err := s.themeRepo.Upsert(ctx, theme); err != nil {
		return nil, err
	}

	s.logger.Info("Theme updated", "user_id", userID, "dark_mode", theme.DarkMode)

	return theme, nil
}
