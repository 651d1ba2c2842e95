package repository

import (
	"context"

	"gorm.io/gorm"

	"workforce/internal/model"
)

// MasterRepository serves the flat reference-data tables.
type MasterRepository struct {
	db *gorm.DB
}

type MasterRepositoryInterface interface {
	ListTrades(ctx context.Context) ([]model.Trade, error)
	ListMaterials(ctx context.Context) ([]model.Material, error)
	ListTools(ctx context.Context) ([]model.Tool, error)
	ListClients(ctx context.Context) ([]model.Client, error)
}

var _ MasterRepositoryInterface = (*MasterRepository)(nil)

func NewMasterRepository(db *gorm.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

func (r *MasterRepository) ListTrades(ctx context.Context) ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.WithContext(ctx).Order("id").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *MasterRepository) ListMaterials(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	if err := r.db.WithContext(ctx).Order("id").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *MasterRepository) ListTools(ctx context.Context) ([]model.Tool, error) {
	var tools []model.Tool
	if err := r.db.WithContext(ctx).Order("id").Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *MasterRepository) ListClients(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
