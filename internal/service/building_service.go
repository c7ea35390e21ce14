package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"facade-scan/internal/model"
	"facade-scan/internal/notify"
	"facade-scan/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStorage         = errors.New("storage unavailable")
	ErrDetectionFailed = errors.New("detection failed")
)

// BuildingService is the data access layer: it mediates all reads and
// writes of buildings and windows, and owns the in-memory snapshot that
// presentation code observes. The snapshot is only mutated here, under
// the mutex; readers get copies.
type BuildingService struct {
	buildingRepo *repository.BuildingRepository
	windowRepo   *repository.WindowRepository
	notifier     notify.Notifier

	mu        sync.Mutex
	buildings []model.Building
	windows   []model.Window
	selected  *model.Building
}

func NewBuildingService(
	buildingRepo *repository.BuildingRepository,
	windowRepo *repository.WindowRepository,
	notifier notify.Notifier,
) *BuildingService {
	return &BuildingService{
		buildingRepo: buildingRepo,
		windowRepo:   windowRepo,
		notifier:     notifier,
	}
}

// ListBuildings fetches all buildings newest-first and replaces the cached
// list. On storage failure the cached list is left untouched.
func (s *BuildingService) ListBuildings(ctx context.Context) ([]model.Building, error) {
	buildings, err := s.buildingRepo.List(ctx)
	if err != nil {
		s.notifier.Notify("Error", "Failed to fetch buildings", notify.SeverityError)
		return nil, fmt.Errorf("%w: list buildings: %v", ErrStorage, err)
	}

	s.mu.Lock()
	s.buildings = buildings
	s.mu.Unlock()

	return buildings, nil
}

type CreateBuildingInput struct {
	Name          string
	Address       *string
	Latitude      float64
	Longitude     float64
	GooglePlaceID *string
	Geometry      *string
}

// CreateBuilding validates the input, delegates id generation to the
// store and prepends the new record to the cached list without a re-fetch.
func (s *BuildingService) CreateBuilding(ctx context.Context, input CreateBuildingInput) (*model.Building, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !isFiniteCoordinate(input.Latitude, 90) {
		return nil, fmt.Errorf("%w: latitude must be a finite number in [-90, 90]", ErrInvalidInput)
	}
	if !isFiniteCoordinate(input.Longitude, 180) {
		return nil, fmt.Errorf("%w: longitude must be a finite number in [-180, 180]", ErrInvalidInput)
	}

	building := &model.Building{
		Name:          strings.TrimSpace(input.Name),
		Address:       input.Address,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		GooglePlaceID: input.GooglePlaceID,
		Geometry:      input.Geometry,
	}

	if err := s.buildingRepo.Create(ctx, building); err != nil {
		s.notifier.Notify("Error", "Failed to save building", notify.SeverityError)
		return nil, fmt.Errorf("%w: create building: %v", ErrStorage, err)
	}

	s.mu.Lock()
	s.buildings = append([]model.Building{*building}, s.buildings...)
	s.mu.Unlock()

	s.notifier.Notify("Success", "Building saved successfully", notify.SeveritySuccess)
	return building, nil
}

func (s *BuildingService) GetBuilding(ctx context.Context, id string) (*model.Building, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid building id", ErrInvalidInput)
	}

	building, err := s.buildingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: get building: %v", ErrStorage, err)
	}
	return building, nil
}

// ListWindows fetches the windows of one building newest-first and replaces
// the cached window list wholesale. A building without windows yields an
// empty slice, not an error. Concurrent calls are last-write-wins.
func (s *BuildingService) ListWindows(ctx context.Context, buildingID string) ([]model.Window, error) {
	if _, err := uuid.Parse(buildingID); err != nil {
		return nil, fmt.Errorf("%w: invalid building id", ErrInvalidInput)
	}

	windows, err := s.windowRepo.ListByBuilding(ctx, buildingID)
	if err != nil {
		s.notifier.Notify("Error", "Failed to fetch windows", notify.SeverityError)
		return nil, fmt.Errorf("%w: list windows: %v", ErrStorage, err)
	}

	s.mu.Lock()
	s.windows = windows
	s.mu.Unlock()

	return windows, nil
}

// SelectBuilding marks a cached building as the active one. Selecting an
// id that is not in the cache clears the selection.
func (s *BuildingService) SelectBuilding(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	for i := range s.buildings {
		if s.buildings[i].ID.String() == id {
			s.selected = &s.buildings[i]
			return
		}
	}
}

type Snapshot struct {
	Buildings []model.Building
	Windows   []model.Window
	Selected  *model.Building
}

// Snapshot returns a copy of the current in-memory state.
func (s *BuildingService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Buildings: make([]model.Building, len(s.buildings)),
		Windows:   make([]model.Window, len(s.windows)),
	}
	copy(snap.Buildings, s.buildings)
	copy(snap.Windows, s.windows)
	if s.selected != nil {
		selected := *s.selected
		snap.Selected = &selected
	}
	return snap
}

func isFiniteCoordinate(v, bound float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -bound && v <= bound
}
