package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/domain/schedule"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
	"github.com/monochrome-todo/core/internal/ports"
)

// Default grid window: seven day columns, five visible hour rows.
const (
	defaultGridDays      = 7
	defaultGridHourCount = 5
)

// TaskService handles owner-scoped task operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask stores a new task owned by the caller
func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	task := &entities.Task{
		UserID:    userID,
		Text:      req.Text,
		Date:      req.Date,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		Finished:  false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

// ListTasks returns all tasks owned by the caller, optionally narrowed
// to an inclusive calendar-day range.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, filter ports.TaskFilter) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if filter.From != "" && filter.To != "" {
		tasks = schedule.FilterRange(tasks, filter.From, filter.To)
	}

	return tasks, nil
}

// UpdateTask applies the supplied fields to a task owned by the caller
func (s *TaskService) UpdateTask(ctx context.Context, userID uuid.UUID, id int, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByIDForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		task.Text = *req.Text
	}
	if req.Date != nil {
		task.Date = *req.Date
	}
	if req.StartHour != nil {
		task.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		task.EndHour = *req.EndHour
	}
	if req.Finished != nil {
		task.Finished = *req.Finished
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("Task updated", "task_id", task.ID, "user_id", userID)

	return task, nil
}

// DeleteTask removes a task owned by the caller
func (s *TaskService) DeleteTask(ctx context.Context, userID uuid.UUID, id int) error {
	if err := s.taskRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("Task deleted", "task_id", id, "user_id", userID)

	return nil
}

// ProjectGrid evaluates the calendar grid occupancy of the caller's
// tasks over the requested day run and hour window.
func (s *TaskService) ProjectGrid(ctx context.Context, userID uuid.UUID, req ports.GridRequest) (*schedule.Grid, error) {
	tasks, err := s.taskRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	days := req.Days
	if days == 0 {
		days = defaultGridDays
	}
	hourCount := req.HourCount
	if hourCount == 0 {
		hourCount = defaultGridHourCount
	}

	return schedule.Project(tasks, req.Start, days, req.HourStart, hourCount)
}
