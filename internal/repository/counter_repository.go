package repository

import (
	"context"

	"gorm.io/gorm"
)

type CounterRepository struct {
	db *gorm.DB
}

type CounterRepositoryInterface interface {
	NextBlock(ctx context.Context, name string, n int) (int64, error)
}

var _ CounterRepositoryInterface = (*CounterRepository)(nil)

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// NextBlock reserves n consecutive ids for the named counter and returns the
// first id of the block. The upsert bumps the counter atomically, so two
// concurrent callers always receive disjoint blocks.
func (r *CounterRepository) NextBlock(ctx context.Context, name string, n int) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + EXCLUDED.value
		 RETURNING value`,
		name, n,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value - int64(n) + 1, nil
}
