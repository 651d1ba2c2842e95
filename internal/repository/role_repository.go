package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workforce/internal/model"
)

type RoleRepository struct {
	db *gorm.DB
}

type RoleRepositoryInterface interface {
	List(ctx context.Context) ([]model.Role, error)
	GetByID(ctx context.Context, id int64) (*model.Role, error)
	Create(ctx context.Context, role *model.Role, permissionIDs []int64) error
	Update(ctx context.Context, role *model.Role, permissionIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

var _ RoleRepositoryInterface = (*RoleRepository)(nil)

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	for i := range roles {
		permissions, err := r.permissionsForRole(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		roles[i].Permissions = permissions
	}
	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	permissions, err := r.permissionsForRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = permissions
	return &role, nil
}

// Create persists the role and its permission links in one transaction.
func (r *RoleRepository) Create(ctx context.Context, role *model.Role, permissionIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}
		return replaceRolePermissions(tx, role.ID, permissionIDs)
	})
}

// Update saves the role and replaces its permission links with the given set.
func (r *RoleRepository) Update(ctx context.Context, role *model.Role, permissionIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Role{}).Where("id = ?", role.ID).Updates(map[string]interface{}{
			"name":           role.Name,
			"level":          role.Level,
			"is_system_role": role.IsSystemRole,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRoleNotFound
		}
		return replaceRolePermissions(tx, role.ID, permissionIDs)
	})
}

// Delete removes the role and clears its permission links.
func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Role{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRoleNotFound
		}
		return tx.Delete(&model.RolePermission{}, "role_id = ?", id).Error
	})
}

func (r *RoleRepository) permissionsForRole(ctx context.Context, roleID int64) ([]model.Permission, error) {
	var permissions []model.Permission
	err := r.db.WithContext(ctx).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.id").
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func replaceRolePermissions(tx *gorm.DB, roleID int64, permissionIDs []int64) error {
	if err := tx.Delete(&model.RolePermission{}, "role_id = ?", roleID).Error; err != nil {
		return err
	}
	if len(permissionIDs) == 0 {
		return nil
	}
	links := make([]model.RolePermission, 0, len(permissionIDs))
	for _, pid := range permissionIDs {
		links = append(links, model.RolePermission{RoleID: roleID, PermissionID: pid})
	}
	return tx.Create(&links).Error
}
