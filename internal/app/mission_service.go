package app

import (
	"context"
	"errors"
	"fmt"

	coremission "github.com/example/expedicoes/internal/core/mission"
	"github.com/example/expedicoes/internal/ports/primary"
	"github.com/example/expedicoes/internal/ports/secondary"
)

// MissionServiceImpl implements the MissionService interface.
type MissionServiceImpl struct {
	missionRepo secondary.MissionRepository
}

// NewMissionService creates a new MissionService with injected dependencies.
func NewMissionService(missionRepo secondary.MissionRepository) *MissionServiceImpl {
	return &MissionServiceImpl{
		missionRepo: missionRepo,
	}
}

// CreateMission creates a new mission.
func (s *MissionServiceImpl) CreateMission(ctx context.Context, req primary.CreateMissionRequest) (*primary.Mission, error) {
	// 1. Check required fields
	guardCtx := coremission.CreateContext{
		Name:        req.Name,
		LaunchDate:  req.LaunchDate,
		Destination: req.Destination,
		State:       req.State,
	}
	if result := coremission.CanCreateMission(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	// 2. Parse launch date
	launch, err := coremission.ParseLaunchDate(*req.LaunchDate)
	if err != nil {
		return nil, err
	}

	// 3. Persist; the store assigns the ID
	record := &secondary.MissionRecord{
		Name:           *req.Name,
		LaunchDate:     launch,
		Destination:    *req.Destination,
		State:          *req.State,
		Crew:           req.Crew,
		Payload:        req.Payload,
		Duration:       req.Duration,
		Cost:           req.Cost,
		DetailedStatus: req.DetailedStatus,
	}
	if err := s.missionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	return s.recordToMission(record), nil
}

// GetMission retrieves a mission by ID.
func (s *MissionServiceImpl) GetMission(ctx context.Context, missionID int64) (*primary.Mission, error) {
	record, err := s.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		return nil, s.translateRepoError(err)
	}
	return s.recordToMission(record), nil
}

// ListMissions lists every mission, most recent launch first.
func (s *MissionServiceImpl) ListMissions(ctx context.Context) ([]*primary.Mission, error) {
	records, err := s.missionRepo.List(ctx, secondary.MissionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return s.recordsToMissions(records), nil
}

// SearchMissions lists missions launching within an inclusive date range.
func (s *MissionServiceImpl) SearchMissions(ctx context.Context, req primary.SearchMissionsRequest) ([]*primary.Mission, error) {
	dateRange, err := coremission.ParseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	// A reversed range cannot match anything.
	if dateRange.From.After(dateRange.To) {
		return []*primary.Mission{}, nil
	}

	records, err := s.missionRepo.List(ctx, secondary.MissionFilters{
		LaunchFrom: dateRange.From,
		LaunchTo:   dateRange.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search missions: %w", err)
	}
	return s.recordsToMissions(records), nil
}

// UpdateMission applies a partial update to an existing mission.
func (s *MissionServiceImpl) UpdateMission(ctx context.Context, req primary.UpdateMissionRequest) (*primary.Mission, error) {
	// 1. Fetch current state
	record, err := s.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		return nil, s.translateRepoError(err)
	}

	// 2. Merge patch (pure function)
	next, err := coremission.ApplyPatch(recordToFields(record), req.Patch)
	if errors.Is(err, coremission.ErrMissingField) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err != nil {
		return nil, err
	}

	// 3. Persist
	updated := fieldsToRecord(record.ID, next)
	if err := s.missionRepo.Update(ctx, updated); err != nil {
		return nil, s.translateRepoError(err)
	}

	return s.recordToMission(updated), nil
}

// DeleteMission permanently removes a mission.
func (s *MissionServiceImpl) DeleteMission(ctx context.Context, missionID int64) error {
	if err := s.missionRepo.Delete(ctx, missionID); err != nil {
		return s.translateRepoError(err)
	}
	return nil
}

// Ping reports whether the backing store is reachable.
func (s *MissionServiceImpl) Ping(ctx context.Context) error {
	return s.missionRepo.Ping(ctx)
}

// Helper methods

func (s *MissionServiceImpl) translateRepoError(err error) error {
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrMissionNotFound, err)
	}
	return err
}

func (s *MissionServiceImpl) recordToMission(r *secondary.MissionRecord) *primary.Mission {
	return &primary.Mission{
		ID:             r.ID,
		Name:           r.Name,
		LaunchDate:     coremission.FormatLaunchDate(r.LaunchDate),
		Destination:    r.Destination,
		State:          r.State,
		Crew:           r.Crew,
		Payload:        r.Payload,
		Duration:       r.Duration,
		Cost:           r.Cost,
		DetailedStatus: r.DetailedStatus,
	}
}

func (s *MissionServiceImpl) recordsToMissions(records []*secondary.MissionRecord) []*primary.Mission {
	missions := make([]*primary.Mission, len(records))
	for i, r := range records {
		missions[i] = s.recordToMission(r)
	}
	return missions
}

func recordToFields(r *secondary.MissionRecord) coremission.Fields {
	return coremission.Fields{
		Name:           r.Name,
		LaunchDate:     r.LaunchDate,
		Destination:    r.Destination,
		State:          r.State,
		Crew:           r.Crew,
		Payload:        r.Payload,
		Duration:       r.Duration,
		Cost:           r.Cost,
		DetailedStatus: r.DetailedStatus,
	}
}

func fieldsToRecord(id int64, f coremission.Fields) *secondary.MissionRecord {
	return &secondary.MissionRecord{
		ID:             id,
		Name:           f.Name,
		LaunchDate:     f.LaunchDate,
		Destination:    f.Destination,
		State:          f.State,
		Crew:           f.Crew,
		Payload:        f.Payload,
		Duration:       f.Duration,
		Cost:           f.Cost,
		DetailedStatus: f.DetailedStatus,
	}
}

// Ensure MissionServiceImpl implements the interface
var _ primary.MissionService = (*MissionServiceImpl)(nil)
