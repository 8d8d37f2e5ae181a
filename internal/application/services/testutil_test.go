package services_test

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/monochrome-todo/core/internal/domain/entities"
)

// In-memory repositories for exercising the services without a database.

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
