package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workforce/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

type VehicleRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
}

var _ VehicleRepositoryInterface = (*VehicleRepository)(nil)

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
