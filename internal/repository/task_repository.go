package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskhub/internal/model"
)

// TaskRepository defines task persistence operations. Single-task reads
// are scoped by the full ownership chain task -> project -> user in one
// query; list and count queries take a project id the caller has already
// resolved under owner scoping.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	ListByProject(ctx context.Context, projectID uint) ([]model.Task, error)
	FindOwned(ctx context.Context, taskID, projectID, ownerID uint) (*model.Task, error)
	DeleteByID(ctx context.Context, taskID uint) (bool, error)
	CountByProject(ctx context.Context, projectID uint) (int64, error)
	CountCompletedByProject(ctx context.Context, projectID uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

// Update persists changes to an existing task.
func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// ListByProject lists all tasks in a project.
func (r *taskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOwned finds a task by id, joined through its project to enforce
// the ownership chain. A missing row anywhere along the chain yields
// (nil, nil).
func (r *taskRepository) FindOwned(ctx context.Context, taskID, projectID, ownerID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.id = ? AND tasks.project_id = ? AND projects.user_id = ?", taskID, projectID, ownerID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteByID removes a task, reporting whether a row was actually removed.
func (r *taskRepository) DeleteByID(ctx context.Context, taskID uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, taskID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountByProject counts all tasks in a project.
func (r *taskRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountCompletedByProject counts completed tasks in a project.
func (r *taskRepository) CountCompletedByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ? AND status = ?", projectID, model.StatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
