package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"facade-scan/internal/model"
	"facade-scan/internal/repository"
)

// StatsService backs the dashboard: per-building window summaries, the
// recent-activity feed and the global overview counters.
type StatsService struct {
	buildingRepo *repository.BuildingRepository
	windowRepo   *repository.WindowRepository
	sessionRepo  *repository.DetectionSessionRepository
}

func NewStatsService(
	buildingRepo *repository.BuildingRepository,
	windowRepo *repository.WindowRepository,
	sessionRepo *repository.DetectionSessionRepository,
) *StatsService {
	return &StatsService{
		buildingRepo: buildingRepo,
		windowRepo:   windowRepo,
		sessionRepo:  sessionRepo,
	}
}

type WindowSummary struct {
	TotalWindows  int         `json:"total_windows"`
	AvgConfidence float64     `json:"avg_confidence"`
	FloorCounts   map[int]int `json:"floor_counts"`
	WindowTypes   []string    `json:"window_types"`
}

// WindowSummary aggregates one building's windows: count, mean confidence,
// per-floor distribution and the distinct types seen.
func (s *StatsService) WindowSummary(ctx context.Context, buildingID string) (*WindowSummary, error) {
	if _, err := uuid.Parse(buildingID); err != nil {
		return nil, fmt.Errorf("%w: invalid building id", ErrInvalidInput)
	}

	windows, err := s.windowRepo.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("%w: list windows: %v", ErrStorage, err)
	}

	summary := &WindowSummary{
		TotalWindows: len(windows),
		FloorCounts:  make(map[int]int),
		WindowTypes:  make([]string, 0),
	}
	if len(windows) == 0 {
		return summary, nil
	}

	var confidenceSum float64
	seenTypes := make(map[string]struct{})
	for _, w := range windows {
		if w.Confidence != nil {
			confidenceSum += *w.Confidence
		}
		floor := 0
		if w.FloorNumber != nil {
			floor = *w.FloorNumber
		}
		summary.FloorCounts[floor]++
		if w.WindowType != nil {
			seenTypes[string(*w.WindowType)] = struct{}{}
		}
	}

	summary.AvgConfidence = confidenceSum / float64(len(windows))
	for t := range seenTypes {
		summary.WindowTypes = append(summary.WindowTypes, t)
	}
	sort.Strings(summary.WindowTypes)

	return summary, nil
}

type Overview struct {
	TotalBuildings int64                         `json:"total_buildings"`
	TotalWindows   int64                         `json:"total_windows"`
	SessionCounts  map[model.SessionStatus]int64 `json:"session_counts"`
}

func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	buildings, err := s.buildingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count buildings: %v", ErrStorage, err)
	}
	windows, err := s.windowRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count windows: %v", ErrStorage, err)
	}
	sessions, err := s.sessionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count sessions: %v", ErrStorage, err)
	}

	return &Overview{
		TotalBuildings: buildings,
		TotalWindows:   windows,
		SessionCounts:  sessions,
	}, nil
}

func (s *StatsService) RecentSessions(ctx context.Context, limit int) ([]model.DetectionSession, error) {
	if limit <= 0 {
		limit = 20
	}
	sessions, err := s.sessionRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: recent sessions: %v", ErrStorage, err)
	}
	return sessions, nil
}
