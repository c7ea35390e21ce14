package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"facade-scan/internal/model"
)

type DetectionSessionRepository struct {
	db *gorm.DB
}

func NewDetectionSessionRepository(db *gorm.DB) *DetectionSessionRepository {
	return &DetectionSessionRepository{db: db}
}

func (r *DetectionSessionRepository) Create(ctx context.Context, session *model.DetectionSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *DetectionSessionRepository) MarkCompleted(ctx context.Context, id string, totalWindows int, completedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.DetectionSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        model.SessionStatusCompleted,
			"total_windows": totalWindows,
			"completed_at":  completedAt,
		}).Error
}

func (r *DetectionSessionRepository) MarkFailed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.DetectionSession{}).
		Where("id = ?", id).
		Update("status", model.SessionStatusFailed).Error
}

func (r *DetectionSessionRepository) ListByBuilding(ctx context.Context, buildingID string) ([]model.DetectionSession, error) {
	sessions := make([]model.DetectionSession, 0)
	err := r.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *DetectionSessionRepository) ListRecent(ctx context.Context, limit int) ([]model.DetectionSession, error) {
	sessions := make([]model.DetectionSession, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *DetectionSessionRepository) CountByStatus(ctx context.Context) (map[model.SessionStatus]int64, error) {
	type row struct {
		Status model.SessionStatus
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.DetectionSession{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.SessionStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
