package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/domain/schedule"
)

// AuthService interface for account and token operations
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Signin(ctx context.Context, req SigninRequest) (*AuthResponse, error)
	DeleteUser(ctx context.Context, email string) (*UserInfo, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// TaskService interface for owner-scoped task operations
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*entities.Task, error)
	UpdateTask(ctx context.Context, userID uuid.UUID, id int, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, id int) error
	ProjectGrid(ctx context.Context, userID uuid.UUID, req GridRequest) (*schedule.Grid, error)
}

// ThemeService interface for theme preference operations
type ThemeService interface {
	GetTheme(ctx context.Context, userID uuid.UUID) (*entities.Theme, error)
	SetTheme(ctx context.Context, userID uuid.UUID, req UpdateThemeRequest) (*entities.Theme, error)
}

// Request/Response Types

// Auth related types
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserInfo is the public projection of an account.
type UserInfo struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

// Claims carries the caller identity extracted from a bearer token.
type Claims struct {
	UserID string `json:"user_id"`
}

// Task related types
type CreateTaskRequest struct {
	Text      string `json:"text" validate:"required,max=2000"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartHour string `json:"startHour" validate:"required,datetime=15:04"`
	EndHour   string `json:"endHour" validate:"required,datetime=15:04"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text" validate:"omitempty,max=2000"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartHour *string `json:"startHour" validate:"omitempty,datetime=15:04"`
	EndHour   *string `json:"endHour" validate:"omitempty,datetime=15:04"`
	Finished  *bool   `json:"finished"`
}

// TaskFilter narrows a task listing to an inclusive calendar-day range.
// Zero values mean no filtering; the full owned set is returned.
type TaskFilter struct {
	From string
	To   string
}

// GridRequest describes the visible calendar window to project onto.
type GridRequest struct {
	Start     string `query:"start" validate:"required,datetime=2006-01-02"`
	Days      int    `query:"days" validate:"omitempty,min=1,max=31"`
	HourStart int    `query:"hourStart" validate:"min=0,max=23"`
	HourCount int    `query:"hourCount" validate:"omitempty,min=1,max=24"`
}

// Theme related types
type UpdateThemeRequest struct {
	DarkMode *bool              `json:"darkMode"`
	BgColors *entities.BgColors `json:"bgColors"`
}

// Common response shapes
type MessageResponse struct {
	Message string `json:"message"`
}

type DeleteUserResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
