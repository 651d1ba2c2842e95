package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workforce/internal/model"
)

type PermissionRepository struct {
	db *gorm.DB
}

type PermissionRepositoryInterface interface {
	List(ctx context.Context) ([]model.Permission, error)
	GetByID(ctx context.Context, id int64) (*model.Permission, error)
	Create(ctx context.Context, permission *model.Permission) error
	Update(ctx context.Context, permission *model.Permission) error
	Delete(ctx context.Context, id int64) error
}

var _ PermissionRepositoryInterface = (*PermissionRepository)(nil)

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) List(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.WithContext(ctx).Order("id").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *PermissionRepository) GetByID(ctx context.Context, id int64) (*model.Permission, error) {
	var permission model.Permission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&permission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPermissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *PermissionRepository) Create(ctx context.Context, permission *model.Permission) error {
	return r.db.WithContext(ctx).Create(permission).Error
}

func (r *PermissionRepository) Update(ctx context.Context, permission *model.Permission) error {
	result := r.db.WithContext(ctx).
		Model(&model.Permission{}).
		Where("id = ?", permission.ID).
		Updates(map[string]interface{}{
			"module": permission.Module,
			"action": permission.Action,
			"code":   permission.Code,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPermissionNotFound
	}
	return nil
}

func (r *PermissionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Permission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPermissionNotFound
	}
	return nil
}
