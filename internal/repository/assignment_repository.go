package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"workforce/internal/model"
)

const pgUniqueViolation = "23505"

type AssignmentRepository struct {
	db *gorm.DB
}

type AssignmentRepositoryInterface interface {
	CreateBatch(ctx context.Context, rows []model.WorkerTaskAssignment) error
	FindByEmployeesAndDate(ctx context.Context, employeeIDs []int64, date model.Date) ([]model.WorkerTaskAssignment, error)
	AssignedEmployeeIDs(ctx context.Context, date model.Date, employeeIDs []int64) ([]int64, error)
	List(ctx context.Context, projectID *int64) ([]model.WorkerTaskAssignment, error)
	GetByID(ctx context.Context, id int64) (*model.WorkerTaskAssignment, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.WorkerTaskAssignment, error)
	Delete(ctx context.Context, id int64) error
}

var _ AssignmentRepositoryInterface = (*AssignmentRepository)(nil)

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateBatch inserts all rows in one transaction. A unique-index violation on
// (employee_id, work_date) means a concurrent writer won the race; it is
// surfaced as ErrDuplicateAssignment and nothing is persisted.
func (r *AssignmentRepository) CreateBatch(ctx context.Context, rows []model.WorkerTaskAssignment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

// FindByEmployeesAndDate retrieves assignments for any of the given employees
// on the given date.
func (r *AssignmentRepository) FindByEmployeesAndDate(ctx context.Context, employeeIDs []int64, date model.Date) ([]model.WorkerTaskAssignment, error) {
	var rows []model.WorkerTaskAssignment
	result := r.db.WithContext(ctx).
		Where("employee_id IN ? AND work_date = ?", employeeIDs, date).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// AssignedEmployeeIDs returns the distinct employee ids among employeeIDs that
// already have an assignment on the date.
func (r *AssignmentRepository) AssignedEmployeeIDs(ctx context.Context, date model.Date, employeeIDs []int64) ([]int64, error) {
	var ids []int64
	result := r.db.WithContext(ctx).
		Model(&model.WorkerTaskAssignment{}).
		Where("work_date = ? AND employee_id IN ?", date, employeeIDs).
		Distinct().
		Pluck("employee_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// List retrieves all assignments, optionally filtered by project.
func (r *AssignmentRepository) List(ctx context.Context, projectID *int64) ([]model.WorkerTaskAssignment, error) {
	query := r.db.WithContext(ctx)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	var rows []model.WorkerTaskAssignment
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID retrieves an assignment by its sequential id.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*model.WorkerTaskAssignment, error) {
	var row model.WorkerTaskAssignment
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, result.Error
	}
	return &row, nil
}

// UpdateFields applies a partial field set to the assignment with the given id
// and returns the updated row.
func (r *AssignmentRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.WorkerTaskAssignment, error) {
	result := r.db.WithContext(ctx).
		Model(&model.WorkerTaskAssignment{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateAssignment
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAssignmentNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an assignment by its sequential id.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkerTaskAssignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
