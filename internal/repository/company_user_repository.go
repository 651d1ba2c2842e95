package repository

import (
	"context"

	"gorm.io/gorm"

	"workforce/internal/model"
)

type CompanyUserRepository struct {
	db *gorm.DB
}

type CompanyUserRepositoryInterface interface {
	ActiveWorkerUserIDs(ctx context.Context) ([]int64, error)
	ListByRole(ctx context.Context, role string) ([]model.CompanyUser, error)
}

var _ CompanyUserRepositoryInterface = (*CompanyUserRepository)(nil)

func NewCompanyUserRepository(db *gorm.DB) *CompanyUserRepository {
	return &CompanyUserRepository{db: db}
}

// ActiveWorkerUserIDs returns the distinct ids of active company users with
// the "worker" role.
func (r *CompanyUserRepository) ActiveWorkerUserIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	result := r.db.WithContext(ctx).
		Model(&model.CompanyUser{}).
		Where("role = ? AND status = ?", model.RoleWorker, model.StatusActive).
		Distinct().
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (r *CompanyUserRepository) ListByRole(ctx context.Context, role string) ([]model.CompanyUser, error) {
	query := r.db.WithContext(ctx).Order("id")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var users []model.CompanyUser
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
