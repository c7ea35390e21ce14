package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"facade-scan/internal/model"
	"facade-scan/internal/notify"
	"facade-scan/internal/repository"
)

// DetectionService orchestrates one detection run per invocation: session
// row, delayed detect, batch insert, terminal status, cache refresh.
// Concurrent runs for the same building are deliberately independent; each
// produces its own session and its own batch (no deduplication).
type DetectionService struct {
	buildingSvc *BuildingService
	sessionRepo *repository.DetectionSessionRepository
	windowRepo  *repository.WindowRepository
	detector    Detector
	delay       time.Duration
	notifier    notify.Notifier
	log         zerolog.Logger

	running sync.WaitGroup
}

func NewDetectionService(
	buildingSvc *BuildingService,
	sessionRepo *repository.DetectionSessionRepository,
	windowRepo *repository.WindowRepository,
	detector Detector,
	delay time.Duration,
	notifier notify.Notifier,
	log zerolog.Logger,
) *DetectionService {
	return &DetectionService{
		buildingSvc: buildingSvc,
		sessionRepo: sessionRepo,
		windowRepo:  windowRepo,
		detector:    detector,
		delay:       delay,
		notifier:    notifier,
		log:         log,
	}
}

// StartDetection creates the session record and schedules the run. It
// returns as soon as the session exists; the run itself is asynchronous
// and survives the caller's context.
func (s *DetectionService) StartDetection(ctx context.Context, buildingID string) (*model.DetectionSession, error) {
	building, err := s.buildingSvc.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	session := &model.DetectionSession{
		BuildingID: building.ID,
		Status:     model.SessionStatusProcessing,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.notifier.Notify("Error", "Failed to start window detection", notify.SeverityError)
		return nil, fmt.Errorf("%w: create session: %v", ErrDetectionFailed, err)
	}

	s.notifier.Notify("Detection Started", "Window detection is processing...", notify.SeverityInfo)

	s.running.Add(1)
	go s.run(session, building)

	return session, nil
}

// ListSessions returns a building's detection history, newest first.
func (s *DetectionService) ListSessions(ctx context.Context, buildingID string) ([]model.DetectionSession, error) {
	if _, err := s.buildingSvc.GetBuilding(ctx, buildingID); err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %v", ErrStorage, err)
	}
	return sessions, nil
}

// Wait blocks until all in-flight runs finish. Used on shutdown.
func (s *DetectionService) Wait() {
	s.running.Wait()
}

func (s *DetectionService) run(session *model.DetectionSession, building *model.Building) {
	defer s.running.Done()

	// The run is detached from the initiating request on purpose: once a
	// session is processing it finishes or fails, never hangs.
	ctx := context.Background()

	time.Sleep(s.delay)

	windows, err := s.detector.Detect(ctx, building)
	if err != nil {
		s.fail(ctx, session, err)
		return
	}

	if err := s.windowRepo.CreateBatch(ctx, windows); err != nil {
		s.fail(ctx, session, err)
		return
	}

	if err := s.sessionRepo.MarkCompleted(ctx, session.ID.String(), len(windows), time.Now().UTC()); err != nil {
		// The batch is already durable; report but do not roll back.
		s.log.Error().Err(err).Str("session_id", session.ID.String()).Msg("failed to complete session")
		s.notifier.Notify("Error", "Failed to finalize window detection", notify.SeverityError)
		return
	}

	// Authoritative read after persistence; the generated batch is never
	// put into the snapshot directly.
	if _, err := s.buildingSvc.ListWindows(ctx, building.ID.String()); err != nil {
		s.log.Error().Err(err).Str("building_id", building.ID.String()).Msg("failed to refresh windows")
	}

	s.notifier.Notify("Detection Complete", fmt.Sprintf("Found %d windows", len(windows)), notify.SeveritySuccess)
}

func (s *DetectionService) fail(ctx context.Context, session *model.DetectionSession, cause error) {
	s.log.Error().Err(cause).
		Str("session_id", session.ID.String()).
		Str("building_id", session.BuildingID.String()).
		Msg("detection run failed")

	if err := s.sessionRepo.MarkFailed(ctx, session.ID.String()); err != nil {
		s.log.Error().Err(err).Str("session_id", session.ID.String()).Msg("failed to mark session failed")
	}

	s.notifier.Notify("Error", "Window detection failed", notify.SeverityError)
}
