package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/monochrome-todo/core/internal/domain/entities"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	DeleteByEmail(ctx context.Context, email string) (*entities.User, error)
}

// TaskRepository defines the interface for task data operations.
// Every read and write is scoped to the owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByOwner(ctx context.Context, userID uuid.UUID) ([]*entities.Task, error)
	GetByIDForOwner(ctx context.Context, id int, userID uuid.UUID) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id int, userID uuid.UUID) error
}

// ThemeRepository defines the interface for theme preference operations
type ThemeRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*entities.Theme, error)
	Upsert(ctx context.Context, theme *entities.Theme) error
}
