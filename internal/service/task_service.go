package service

import (
	"context"
	"fmt"
	"time"

	"taskhub/internal/errors"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// CreateTaskInput carries validated task creation fields. Status is
// deliberately absent: new tasks always start Pending.
type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     time.Time
}

// UpdateTaskInput carries validated task update fields. Status arrives
// as the raw string and is parsed against the closed enum.
type UpdateTaskInput struct {
	Title       string
	Description *string
	Status      string
	DueDate     time.Time
}

// TaskService handles task operations authorized through the ownership
// chain task -> project -> user on every call.
type TaskService interface {
	ListByProject(ctx context.Context, projectID, callerID uint) ([]model.Task, error)
	Get(ctx context.Context, taskID, projectID, callerID uint) (*model.Task, error)
	Create(ctx context.Context, in CreateTaskInput, projectID, callerID uint) (*model.Task, error)
	Update(ctx context.Context, taskID, projectID uint, in UpdateTaskInput, callerID uint) (*model.Task, error)
	Complete(ctx context.Context, taskID, projectID, callerID uint) (*model.Task, error)
	Delete(ctx context.Context, taskID, projectID, callerID uint) error
}

type taskService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) TaskService {
	return &taskService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// ListByProject lists all tasks in the caller's project. A project that
// is absent or owned by somebody else yields an empty list, not an error.
func (s *taskService) ListByProject(ctx context.Context, projectID, callerID uint) ([]model.Task, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return []model.Task{}, nil
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a task resolved through the full ownership chain.
func (s *taskService) Get(ctx context.Context, taskID, projectID, callerID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindOwned(ctx, taskID, projectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}
	return task, nil
}

// Create adds a task to the caller's project. The project is resolved
// under owner scoping first; any status-like field the client sent is
// ignored and the task starts Pending.
func (s *taskService) Create(ctx context.Context, in CreateTaskInput, projectID, callerID uint) (*model.Task, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound
	}

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      model.StatusPending,
		DueDate:     in.DueDate,
		ProjectID:   projectID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces title, description, due date and status of a task
// resolved through the ownership chain. An unknown status value is a
// validation failure, distinct from not-found.
func (s *taskService) Update(ctx context.Context, taskID, projectID uint, in UpdateTaskInput, callerID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindOwned(ctx, taskID, projectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}

	status, ok := model.ParseStatus(in.Status)
	if !ok {
		return nil, errors.ErrInvalidStatus
	}

	task.Title = in.Title
	task.Description = in.Description
	task.DueDate = in.DueDate
	task.Status = status
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Complete forces a task to Completed. Completing an already completed
// task is a no-op success.
func (s *taskService) Complete(ctx context.Context, taskID, projectID, callerID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindOwned(ctx, taskID, projectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}

	task.Status = model.StatusCompleted
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	return task, nil
}

// Delete removes a task resolved through the ownership chain.
func (s *taskService) Delete(ctx context.Context, taskID, projectID, callerID uint) error {
	task, err := s.taskRepo.FindOwned(ctx, taskID, projectID, callerID)
	if err != nil {
		return fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return errors.ErrTaskNotFound
	}

	deleted, err := s.taskRepo.DeleteByID(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !deleted {
		return errors.ErrTaskNotFound
	}
	return nil
}
