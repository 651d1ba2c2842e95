package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workforce/internal/model"
)

type EmployeeRepository struct {
	db *gorm.DB
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *model.Employee) error
	CreateBatch(ctx context.Context, employees []model.Employee) error
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Employee, error)
	List(ctx context.Context, companyID *int64) ([]model.Employee, error)
	ListActiveByUserIDs(ctx context.Context, userIDs []int64) ([]model.Employee, error)
	ListWorkersByCompany(ctx context.Context, companyID int64) ([]model.Employee, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Employee, error)
	Delete(ctx context.Context, id int64) error
}

var _ EmployeeRepositoryInterface = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) CreateBatch(ctx context.Context, employees []model.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&employees).Error
	})
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) List(ctx context.Context, companyID *int64) ([]model.Employee, error) {
	query := r.db.WithContext(ctx).Order("id")
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	var employees []model.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// ListActiveByUserIDs retrieves active employees linked to any of the given
// company-user ids.
func (r *EmployeeRepository) ListActiveByUserIDs(ctx context.Context, userIDs []int64) ([]model.Employee, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("status = ? AND user_id IN ?", model.StatusActive, userIDs).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// ListWorkersByCompany retrieves active employees of a company whose account
// carries the "worker" role.
func (r *EmployeeRepository) ListWorkersByCompany(ctx context.Context, companyID int64) ([]model.Employee, error) {
	workerUsers := r.db.WithContext(ctx).Model(&model.CompanyUser{}).
		Select("id").
		Where("role = ? AND status = ?", model.RoleWorker, model.StatusActive)

	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ? AND user_id IN (?)", companyID, model.StatusActive, workerUsers).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Employee, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEmployeeNotFound
	}
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
