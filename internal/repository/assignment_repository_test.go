package repository_test

import (
	"context"
	"testing"
	"time"

	"workforce/internal/model"
	"workforce/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestAssignmentRepository_CreateBatch_Success(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAssignmentRepository(gormDB)

	date, _ := model.ParseDate("2024-03-15")
	rows := []model.WorkerTaskAssignment{
		{ID: 101, ProjectID: 1, SupervisorID: 2, EmployeeID: 10, WorkDate: date, CompanyID: 7},
		{ID: 102, ProjectID: 1, SupervisorID: 2, EmployeeID: 11, WorkDate: date, CompanyID: 7},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "worker_task_assignments"`).
		WillReturnRows(sqlmock.NewRows([]string{"row_id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	// Act
	err := repo.CreateBatch(context.Background(), rows)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_CreateBatch_DuplicateEmployeeDate(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAssignmentRepository(gormDB)

	date, _ := model.ParseDate("2024-03-15")
	rows := []model.WorkerTaskAssignment{
		{ID: 101, ProjectID: 1, SupervisorID: 2, EmployeeID: 10, WorkDate: date, CompanyID: 7},
	}

	// A concurrent writer already claimed (employee_id, work_date); the insert
	// trips the unique index.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "worker_task_assignments"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	// Act
	err := repo.CreateBatch(context.Background(), rows)

	// Assert
	assert.ErrorIs(t, err, repository.ErrDuplicateAssignment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_FindByEmployeesAndDate(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAssignmentRepository(gormDB)

	date, _ := model.ParseDate("2024-03-15")
	workDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM "worker_task_assignments" WHERE employee_id IN .* AND work_date = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"row_id", "id", "employee_id", "work_date"}).
			AddRow(1, 101, 10, workDate))

	// Act
	found, err := repo.FindByEmployeesAndDate(context.Background(), []int64{10, 11}, date)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, int64(101), found[0].ID)
	assert.Equal(t, int64(10), found[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAssignmentRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "worker_task_assignments" WHERE id = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	row, err := repo.GetByID(context.Background(), 999)

	// Assert
	assert.ErrorIs(t, err, repository.ErrAssignmentNotFound)
	assert.Nil(t, row)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_Delete_Success(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAssignmentRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "worker_task_assignments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Delete(context.Background(), 101)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAssignmentRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "worker_task_assignments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := repo.Delete(context.Background(), 999)

	// Assert
	assert.ErrorIs(t, err, repository.ErrAssignmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
