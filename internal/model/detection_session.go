package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusProcessing SessionStatus = "processing"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusFailed     SessionStatus = "failed"
)

// DetectionSession records one attempt to populate a building's windows.
// Sessions are created already in the processing state; pending exists in
// the enum for compatibility but is never written by the workflow.
type DetectionSession struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	BuildingID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"building_id"`
	Status         SessionStatus `gorm:"type:text" json:"status"`
	TotalWindows   *int          `json:"total_windows"`
	ProcessingTime *string       `gorm:"type:text" json:"processing_time"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt    *time.Time    `json:"completed_at"`
}

func (DetectionSession) TableName() string {
	return "detection_sessions"
}

func (s *DetectionSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
