package repository_test

import (
	"context"
	"testing"

	"workforce/internal/model"
	"workforce/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCounterRepository_NextBlock(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(gormDB)

	// Bumping the counter by 5 lands on 105, so the reserved block starts at 101.
	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs(model.CounterAssignments, 5).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(105))

	// Act
	first, err := repo.NextBlock(context.Background(), model.CounterAssignments, 5)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(101), first)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterRepository_NextBlock_SingleID(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(gormDB)

	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs(model.CounterEmployees, 1).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))

	// Act
	first, err := repo.NextBlock(context.Background(), model.CounterEmployees, 1)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(42), first)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterRepository_NextBlock_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(gormDB)

	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs(model.CounterAssignments, 3).
		WillReturnError(assert.AnError)

	// Act
	first, err := repo.NextBlock(context.Background(), model.CounterAssignments, 3)

	// Assert
	assert.Error(t, err)
	assert.Zero(t, first)
	assert.NoError(t, mock.ExpectationsWereMet())
}
