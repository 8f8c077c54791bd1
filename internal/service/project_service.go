package service

import (
	"context"
	"fmt"

	"taskhub/internal/errors"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// ProjectSummary couples a project with its live progress counters.
type ProjectSummary struct {
	Project            model.Project
	TotalTasks         int64
	CompletedTasks     int64
	ProgressPercentage float64
}

// ProjectProgress is the dedicated progress view of a project.
type ProjectProgress struct {
	ProjectID          uint
	ProjectTitle       string
	TotalTasks         int64
	CompletedTasks     int64
	ProgressPercentage float64
}

// ProjectService handles project operations scoped to the calling user.
type ProjectService interface {
	List(ctx context.Context, callerID uint) ([]ProjectSummary, error)
	Get(ctx context.Context, id, callerID uint) (*ProjectSummary, error)
	Create(ctx context.Context, title string, description *string, callerID uint) (*ProjectSummary, error)
	Update(ctx context.Context, id uint, title string, description *string, callerID uint) (*ProjectSummary, error)
	Delete(ctx context.Context, id, callerID uint) error
	Progress(ctx context.Context, id, callerID uint) (*ProjectProgress, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// List returns all projects owned by the caller, each annotated with
// live progress counts.
func (s *projectService) List(ctx context.Context, callerID uint) ([]ProjectSummary, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, project := range projects {
		summary, err := s.summarize(ctx, project)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// Get returns the caller's project or not-found. A project owned by
// another user is reported exactly like an absent one.
func (s *projectService) Get(ctx context.Context, id, callerID uint) (*ProjectSummary, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, id, callerID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound
	}
	return s.summarize(ctx, *project)
}

// Create persists a new project owned by the caller.
func (s *projectService) Create(ctx context.Context, title string, description *string, callerID uint) (*ProjectSummary, error) {
	project := &model.Project{
		Title:       title,
		Description: description,
		UserID:      callerID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	// A fresh project has no tasks, progress is zero.
	return &ProjectSummary{Project: *project}, nil
}

// Update replaces title and description of the caller's project.
func (s *projectService) Update(ctx context.Context, id uint, title string, description *string, callerID uint) (*ProjectSummary, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, id, callerID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound
	}

	project.Title = title
	project.Description = description
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return s.summarize(ctx, *project)
}

// Delete removes the caller's project; its tasks cascade at the
// storage layer.
func (s *projectService) Delete(ctx context.Context, id, callerID uint) error {
	deleted, err := s.projectRepo.DeleteByIDAndOwner(ctx, id, callerID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if !deleted {
		return errors.ErrProjectNotFound
	}
	return nil
}

// Progress returns the live progress view of the caller's project.
func (s *projectService) Progress(ctx context.Context, id, callerID uint) (*ProjectProgress, error) {
	summary, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	return &ProjectProgress{
		ProjectID:          summary.Project.ID,
		ProjectTitle:       summary.Project.Title,
		TotalTasks:         summary.TotalTasks,
		CompletedTasks:     summary.CompletedTasks,
		ProgressPercentage: summary.ProgressPercentage,
	}, nil
}

// summarize recomputes progress from the current task set.
func (s *projectService) summarize(ctx context.Context, project model.Project) (*ProjectSummary, error) {
	total, err := s.taskRepo.CountByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	completed, err := s.taskRepo.CountCompletedByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}
	return &ProjectSummary{
		Project:            project,
		TotalTasks:         total,
		CompletedTasks:     completed,
		ProgressPercentage: ProgressPercentage(total, completed),
	}, nil
}
