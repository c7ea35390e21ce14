package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facade-scan/internal/model"
)

func TestSyntheticDetectorRanges(t *testing.T) {
	detector := NewSyntheticDetector(10, 29)
	building := &model.Building{Name: "Range Tower", Latitude: 40, Longitude: -74}

	for i := 0; i < 50; i++ {
		windows, err := detector.Detect(context.Background(), building)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(windows), 10)
		assert.LessOrEqual(t, len(windows), 29)

		for _, w := range windows {
			assert.GreaterOrEqual(t, w.XCoordinate, 0.0)
			assert.Less(t, w.XCoordinate, 100.0)
			assert.GreaterOrEqual(t, w.YCoordinate, 0.0)
			assert.Less(t, w.YCoordinate, 100.0)
			require.NotNil(t, w.ZCoordinate)
			assert.GreaterOrEqual(t, *w.ZCoordinate, 0.0)
			assert.Less(t, *w.ZCoordinate, 50.0)
			require.NotNil(t, w.Width)
			assert.GreaterOrEqual(t, *w.Width, 1.0)
			assert.Less(t, *w.Width, 4.0)
			require.NotNil(t, w.Height)
			assert.GreaterOrEqual(t, *w.Height, 1.0)
			assert.Less(t, *w.Height, 3.0)
			require.NotNil(t, w.Confidence)
			assert.GreaterOrEqual(t, *w.Confidence, 0.7)
			assert.Less(t, *w.Confidence, 1.0)
			require.NotNil(t, w.FloorNumber)
			assert.GreaterOrEqual(t, *w.FloorNumber, 1)
			assert.LessOrEqual(t, *w.FloorNumber, 10)
			require.NotNil(t, w.WindowType)
			assert.Contains(t, windowTypes, *w.WindowType)
		}
	}
}

func TestSyntheticDetectorFixedCount(t *testing.T) {
	detector := NewSyntheticDetector(5, 5)
	building := &model.Building{Name: "Fixed Tower"}

	windows, err := detector.Detect(context.Background(), building)
	require.NoError(t, err)
	assert.Len(t, windows, 5)
}
