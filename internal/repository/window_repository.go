package repository

import (
	"context"

	"gorm.io/gorm"

	"facade-scan/internal/model"
)

type WindowRepository struct {
	db *gorm.DB
}

func NewWindowRepository(db *gorm.DB) *WindowRepository {
	return &WindowRepository{db: db}
}

// CreateBatch inserts a detection batch in a single statement so a failed
// run never leaves a partial batch behind.
func (r *WindowRepository) CreateBatch(ctx context.Context, windows []model.Window) error {
	if len(windows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&windows).Error
}

func (r *WindowRepository) ListByBuilding(ctx context.Context, buildingID string) ([]model.Window, error) {
	windows := make([]model.Window, 0)
	err := r.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("created_at DESC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *WindowRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Window{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
