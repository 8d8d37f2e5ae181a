package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrThemeNotFound      = errors.New("theme not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents an account in the system
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Task represents a scheduled todo item owned by a single user.
// StartHour and EndHour are time-of-day labels in "HH:MM" form; an
// EndHour earlier than StartHour means the slot wraps past midnight.
type Task struct {
	ID        int       `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Date      string    `json:"date" db:"date"`
	StartHour string    `json:"startHour" db:"start_hour"`
	EndHour   string    `json:"endHour" db:"end_hour"`
	Finished  bool      `json:"finished" db:"finished"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HourIndex converts a "HH:MM" label to its hour slot index (0-23).
// Returns -1 for malformed labels.
func HourIndex(label string) int {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return -1
	}
	return t.Hour()
}

// StartIndex returns the hour slot index of the task's start time.
func (t *Task) StartIndex() int {
	return HourIndex(t.StartHour)
}

// EndIndex returns the hour slot index of the task's end time.
func (t *Task) EndIndex() int {
	return HourIndex(t.EndHour)
}

// WrapsMidnight reports whether the task's time slot crosses into the
// following calendar day.
func (t *Task) WrapsMidnight() bool {
	start, end := t.StartIndex(), t.EndIndex()
	return start >= 0 && end >= 0 && end < start
}

// BgColors holds the four named accent colors of a user's theme.
type BgColors struct {
	Light1         string `json:"light1"`
	Light2         string `json:"light2"`
	GradientColor1 string `json:"gradientColor1"`
	GradientColor2 string `json:"gradientColor2"`
}

// DefaultBgColors returns the stock accent palette.
func DefaultBgColors() BgColors {
	return BgColors{
		Light1:         "#ff4d6d33",
		Light2:         "#00f5d433",
		GradientColor1: "#ff4d6d",
		GradientColor2: "#00f5d4",
	}
}

// Value implements driver.Valuer so BgColors can be stored as jsonb.
func (b BgColors) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for reading BgColors from a jsonb column.
func (b *BgColors) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = BgColors{}
		return nil
	default:
		return fmt.Errorf("unsupported type for bg_colors: %T", src)
	}
}

// Theme represents a user's display preferences. At most one record
// exists per user; writes use upsert semantics.
type Theme struct {
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	DarkMode  bool      `json:"darkMode" db:"dark_mode"`
	BgColors  BgColors  `json:"bgColors" db:"bg_colors"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewTheme returns a theme with default values for a user.
func NewTheme(userID uuid.UUID) *Theme {
	return &Theme{
		UserID:   userID,
		DarkMode: false,
		BgColors: DefaultBgColors(),
	}
}
