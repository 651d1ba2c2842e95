package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workforce/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

type ProjectRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
