package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	httpHandlers "github.com/monochrome-todo/core/internal/adapters/http"
	"github.com/monochrome-todo/core/internal/application/services"
	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/infrastructure/config"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	if err := tv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// testApp assembles the API surface over in-memory repositories.
type testApp struct {
	echo *echo.Echo
}

func newTestApp() *testApp {
	log := logger.NewNop()

	userRepo := newMemUserRepo()
	taskRepo := newMemTaskRepo()
	themeRepo := newMemThemeRepo()

	jwtCfg := config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "monochrome-test",
	}

	authService := services.NewAuthService(userRepo, jwtCfg, log)
	taskService := services.NewTaskService(taskRepo, log)
	themeService := services.NewThemeService(themeRepo, log)

	authHandler := httpHandlers.NewAuthHandler(authService, log)
	taskHandler := httpHandlers.NewTaskHandler(taskService, log)
	themeHandler := httpHandlers.NewThemeHandler(themeService, log)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.DELETE("/user", authHandler.DeleteUser)

	gate := httpHandlers.AuthMiddleware(authService, log)

	tasks := api.Group("/tasks", gate)
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.ListTasks)
	tasks.GET("/grid", taskHandler.GetGrid)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	theme := api.Group("/theme", gate)
	theme.GET("", themeHandler.GetTheme)
	theme.PUT("", themeHandler.SetTheme)

	return &testApp{echo: e}
}

// request performs an HTTP round trip against the app and decodes the
// JSON response body into out when out is non-nil.
func (a *testApp) request(t *testing.T, method, path, token, body string, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}

	return rec.Code
}

// requestRawAuth sends a request with the Authorization header set
// verbatim, without the Bearer prefix the normal helper adds.
func (a *testApp) requestRawAuth(t *testing.T, method, path, header string) int {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderAuthorization, header)

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec.Code
}

// signup registers an account and returns its token.
func (a *testApp) signup(t *testing.T, email string) string {
	t.Helper()

	var resp struct {
		Token string `json:"token"`
	}
	code := a.request(t, http.MethodPost, "/api/auth/signup", "",
		`{"email":"`+email+`","password":"password123"}`, &resp)
	if code != http.StatusCreated {
		t.Fatalf("signup %s: status %d", email, code)
	}
	return resp.Token
}

// In-memory repositories

type memUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return entities.ErrEmailTaken
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memUserRepo) DeleteByEmail(_ context.Context, email string) (*entities.User, error) {
	for id, u := range r.users {
		if u.Email == email {
			cp := *u
			delete(r.users, id)
			return &cp, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

type memTaskRepo struct {
	tasks  map[int]*entities.Task
	nextID int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int]*entities.Task), nextID: 1}
}

func (r *memTaskRepo) Create(_ context.Context, task *entities.Task) error {
	task.ID = r.nextID
	r.nextID++
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByOwner(_ context.Context, userID uuid.UUID) ([]*entities.Task, error) {
	out := []*entities.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTaskRepo) GetByIDForOwner(_ context.Context, id int, userID uuid.UUID) (*entities.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, entities.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entities.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return entities.ErrTaskNotFound
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id int, userID uuid.UUID) error {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

type memThemeRepo struct {
	themes map[uuid.UUID]*entities.Theme
}

func newMemThemeRepo() *memThemeRepo {
	return &memThemeRepo{themes: make(map[uuid.UUID]*entities.Theme)}
}

func (r *memThemeRepo) GetByUser(_ context.Context, userID uuid.UUID) (*entities.Theme, error) {
	t, ok := r.themes[userID]
	if !ok {
		return nil, entities.ErrThemeNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memThemeRepo) Upsert(_ context.Context, theme *entities.Theme) error {
	cp := *theme
	r.themes[theme.UserID] = &cp
	return nil
}
