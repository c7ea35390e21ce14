package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"facade-scan/internal/model"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

func (r *BuildingRepository) Create(ctx context.Context, building *model.Building) error {
	return r.db.WithContext(ctx).Create(building).Error
}

func (r *BuildingRepository) GetByID(ctx context.Context, id string) (*model.Building, error) {
	var building model.Building
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&building).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &building, nil
}

func (r *BuildingRepository) List(ctx context.Context) ([]model.Building, error) {
	var buildings []model.Building
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

func (r *BuildingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Building{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
