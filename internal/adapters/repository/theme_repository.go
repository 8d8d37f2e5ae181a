package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/ports"
)

// ThemeRepositoryImpl implements the ThemeRepository interface
type ThemeRepositoryImpl struct {
	db *sqlx.DB
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(db *sqlx.DB) ports.ThemeRepository {
	return &ThemeRepositoryImpl{db: db}
}

func (r *ThemeRepositoryImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*entities.Theme, error) {
	query := `
		SELECT user_id, dark_mode, bg_colors, created_at, updated_at
		FROM themes
		WHERE user_id = $1`

	var theme entities.Theme
	err := r.db.GetContext(ctx, &theme, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrThemeNotFound
		}
		return nil, fmt.Errorf("get theme: %w", err)
	}

	return &theme, nil
}

func (r *ThemeRepositoryImpl) Upsert(ctx context.Context, theme *entities.Theme) error {
	query := `
		INSERT INTO themes (user_id, dark_mode, bg_colors)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET dark_mode = EXCLUDED.dark_mode, bg_colors = EXCLUDED.bg_colors,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		theme.UserID, theme.DarkMode, theme.BgColors,
	).Scan(&theme.CreatedAt, &theme.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert theme: %w", err)
	}

	return nil
}
