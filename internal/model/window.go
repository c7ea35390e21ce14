package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WindowType string

const (
	WindowTypeStandard WindowType = "standard"
	WindowTypeBay      WindowType = "bay"
	WindowTypeDormer   WindowType = "dormer"
)

// Window is one detected aperture on a building facade. X/Y/Z are local
// facade units, not geographic coordinates.
type Window struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	BuildingID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"building_id"`
	XCoordinate float64     `gorm:"not null" json:"x_coordinate"`
	YCoordinate float64     `gorm:"not null" json:"y_coordinate"`
	ZCoordinate *float64    `json:"z_coordinate"`
	Width       *float64    `json:"width"`
	Height      *float64    `json:"height"`
	Confidence  *float64    `json:"confidence"`
	FloorNumber *int        `json:"floor_number"`
	WindowType  *WindowType `gorm:"type:text" json:"window_type"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Window) TableName() string {
	return "windows"
}

func (w *Window) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
