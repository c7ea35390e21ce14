package service

import (
	"context"
	"math/rand/v2"

	"facade-scan/internal/model"
)

// Detector produces the window set for one building. The synthetic
// implementation below stands in for a real detection backend; swapping in
// a real one must not require touching the workflow.
type Detector interface {
	Detect(ctx context.Context, building *model.Building) ([]model.Window, error)
}

// SyntheticDetector generates a random batch of plausible windows:
// count uniform in [min, max], coordinates in facade-local units,
// confidence in [0.7, 1.0), floors 1-10.
type SyntheticDetector struct {
	MinWindows int
	MaxWindows int
}

func NewSyntheticDetector(minWindows, maxWindows int) *SyntheticDetector {
	return &SyntheticDetector{MinWindows: minWindows, MaxWindows: maxWindows}
}

var windowTypes = []model.WindowType{
	model.WindowTypeStandard,
	model.WindowTypeBay,
	model.WindowTypeDormer,
}

func (d *SyntheticDetector) Detect(ctx context.Context, building *model.Building) ([]model.Window, error) {
	count := rand.IntN(d.MaxWindows-d.MinWindows+1) + d.MinWindows

	windows := make([]model.Window, 0, count)
	for i := 0; i < count; i++ {
		windows = append(windows, model.Window{
			BuildingID:  building.ID,
			XCoordinate: rand.Float64() * 100,
			YCoordinate: rand.Float64() * 100,
			ZCoordinate: ptr(rand.Float64() * 50),
			Width:       ptr(rand.Float64()*3 + 1),
			Height:      ptr(rand.Float64()*2 + 1),
			Confidence:  ptr(rand.Float64()*0.3 + 0.7),
			FloorNumber: ptr(rand.IntN(10) + 1),
			WindowType:  ptr(windowTypes[rand.IntN(len(windowTypes))]),
		})
	}

	return windows, nil
}

func ptr[T any](v T) *T {
	return &v
}
