package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskhub/internal/model"
)

// ProjectRepository defines project persistence operations. Every query
// that touches a single project is scoped to its owner; a project owned
// by somebody else is indistinguishable from one that does not exist.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Project, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Project, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) (bool, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create persists a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// Update persists changes to an existing project.
func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// ListByOwner lists all projects owned by the given user.
func (r *projectRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByIDAndOwner finds a project by id under owner scoping. A missing
// or foreign-owned row yields (nil, nil).
func (r *projectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteByIDAndOwner deletes a project under owner scoping, reporting
// whether a row was actually removed. Task rows go with it via the
// ON DELETE CASCADE constraint.
func (r *projectRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Project{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
