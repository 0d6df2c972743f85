package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	coremission "github.com/example/expedicoes/internal/core/mission"
	"github.com/example/expedicoes/internal/ports/primary"
	"github.com/example/expedicoes/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockMissionRepository implements secondary.MissionRepository for testing.
type mockMissionRepository struct {
	missions  map[int64]*secondary.MissionRecord
	nextID    int64
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
	pingErr   error

	lastFilters secondary.MissionFilters
}

func newMockMissionRepository() *mockMissionRepository {
	return &mockMissionRepository{
		missions: make(map[int64]*secondary.MissionRecord),
	}
}

func (m *mockMissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	mission.ID = m.nextID
	stored := *mission
	m.missions[mission.ID] = &stored
	return nil
}

func (m *mockMissionRepository) GetByID(ctx context.Context, id int64) (*secondary.MissionRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if mission, ok := m.missions[id]; ok {
		copied := *mission
		return &copied, nil
	}
	return nil, fmt.Errorf("mission %d %w", id, secondary.ErrNotFound)
}

func (m *mockMissionRepository) Update(ctx context.Context, mission *secondary.MissionRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.missions[mission.ID]; !ok {
		return fmt.Errorf("mission %d %w", mission.ID, secondary.ErrNotFound)
	}
	stored := *mission
	m.missions[mission.ID] = &stored
	return nil
}

func (m *mockMissionRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.missions[id]; !ok {
		return fmt.Errorf("mission %d %w", id, secondary.ErrNotFound)
	}
	delete(m.missions, id)
	return nil
}

func (m *mockMissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []*secondary.MissionRecord{}
	for _, mission := range m.missions {
		if !filters.LaunchFrom.IsZero() && mission.LaunchDate.Before(filters.LaunchFrom) {
			continue
		}
		if !filters.LaunchTo.IsZero() && mission.LaunchDate.After(filters.LaunchTo) {
			continue
		}
		result = append(result, mission)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LaunchDate.After(result[j].LaunchDate)
	})
	return result, nil
}

func (m *mockMissionRepository) Ping(ctx context.Context) error {
	return m.pingErr
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestMissionService() (*MissionServiceImpl, *mockMissionRepository) {
	repo := newMockMissionRepository()
	return NewMissionService(repo), repo
}

func strPtr(s string) *string { return &s }

func validCreateRequest(name, launchDate string) primary.CreateMissionRequest {
	return primary.CreateMissionRequest{
		Name:        strPtr(name),
		LaunchDate:  strPtr(launchDate),
		Destination: strPtr("Lua"),
		State:       strPtr("planejada"),
	}
}

// ============================================================================
// CreateMission Tests
// ============================================================================

func TestCreateMission_Success(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()

	cost := 99.5
	req := validCreateRequest("Artemis II", "2024-06-15")
	req.Crew = strPtr("Wiseman")
	req.Cost = &cost

	mission, err := service.CreateMission(ctx, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mission.ID == 0 {
		t.Error("expected store-assigned ID")
	}
	if mission.LaunchDate != "2024-06-15" {
		t.Errorf("expected launch date '2024-06-15', got '%s'", mission.LaunchDate)
	}
	if mission.Crew == nil || *mission.Crew != "Wiseman" {
		t.Errorf("expected crew 'Wiseman', got %v", mission.Crew)
	}
	if mission.Payload != nil {
		t.Errorf("expected nil payload, got %q", *mission.Payload)
	}
}

func TestCreateMission_DistinctIDs(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		mission, err := service.CreateMission(ctx, validCreateRequest(fmt.Sprintf("M%d", i), "2024-01-01"))
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if seen[mission.ID] {
			t.Fatalf("ID %d assigned twice", mission.ID)
		}
		seen[mission.ID] = true
	}
}

func TestCreateMission_MissingName(t *testing.T) {
	service, repo := newTestMissionService()

	req := validCreateRequest("", "2024-06-15")
	req.Name = nil

	_, err := service.CreateMission(context.Background(), req)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if len(repo.missions) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestCreateMission_InvalidDate(t *testing.T) {
	service, repo := newTestMissionService()

	_, err := service.CreateMission(context.Background(), validCreateRequest("Bad Date", "15/06/2024"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if len(repo.missions) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestCreateMission_RepositoryError(t *testing.T) {
	service, repo := newTestMissionService()
	repo.createErr = errors.New("database error")

	_, err := service.CreateMission(context.Background(), validCreateRequest("X", "2024-01-01"))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected an internal error, got %v", err)
	}
}

// ============================================================================
// GetMission / ListMissions / SearchMissions Tests
// ============================================================================

func TestGetMission_Found(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()

	created, _ := service.CreateMission(ctx, validCreateRequest("Artemis II", "2024-06-15"))

	mission, err := service.GetMission(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mission.Name != "Artemis II" {
		t.Errorf("expected name 'Artemis II', got '%s'", mission.Name)
	}
}

func TestGetMission_NotFound(t *testing.T) {
	service, _ := newTestMissionService()

	_, err := service.GetMission(context.Background(), 42)
	if !errors.Is(err, ErrMissionNotFound) {
		t.Fatalf("expected ErrMissionNotFound, got %v", err)
	}
}

func TestListMissions_Order(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()

	for _, d := range []string{"2024-01-01", "2024-06-15", "2023-12-01"} {
		if _, err := service.CreateMission(ctx, validCreateRequest(d, d)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	missions, err := service.ListMissions(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"2024-06-15", "2024-01-01", "2023-12-01"}
	for i, m := range missions {
		if m.LaunchDate != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], m.LaunchDate)
		}
	}
}

func TestSearchMissions(t *testing.T) {
	tests := []struct {
		name      string
		req       primary.SearchMissionsRequest
		wantNames []string
		wantErr   error
	}{
		{
			name:      "year 2024",
			req:       primary.SearchMissionsRequest{From: "2024-01-01", To: "2024-12-31"},
			wantNames: []string{"2024-06-15", "2024-01-01"},
		},
		{
			name:      "single day",
			req:       primary.SearchMissionsRequest{From: "2023-12-01", To: "2023-12-01"},
			wantNames: []string{"2023-12-01"},
		},
		{
			name:      "reversed range",
			req:       primary.SearchMissionsRequest{From: "2024-12-31", To: "2024-01-01"},
			wantNames: []string{},
		},
		{
			name:    "bad start",
			req:     primary.SearchMissionsRequest{From: "2024/01/01", To: "2024-12-31"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "bad end",
			req:     primary.SearchMissionsRequest{From: "2024-01-01", To: "fim"},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestMissionService()
			ctx := context.Background()
			for _, d := range []string{"2024-01-01", "2024-06-15", "2023-12-01"} {
				_, _ = service.CreateMission(ctx, validCreateRequest(d, d))
			}

			missions, err := service.SearchMissions(ctx, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(missions) != len(tt.wantNames) {
				t.Fatalf("expected %d missions, got %d", len(tt.wantNames), len(missions))
			}
			for i, m := range missions {
				if m.Name != tt.wantNames[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.wantNames[i], m.Name)
				}
			}
		})
	}
}

// ============================================================================
// UpdateMission Tests
// ============================================================================

func TestUpdateMission_DestinationOnly(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()

	req := validCreateRequest("Artemis II", "2024-06-15")
	req.Crew = strPtr("Wiseman")
	created, _ := service.CreateMission(ctx, req)

	updated, err := service.UpdateMission(ctx, primary.UpdateMissionRequest{
		MissionID: created.ID,
		Patch:     coremission.Patch{Destination: coremission.Some("Marte")},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if updated.Destination != "Marte" {
		t.Errorf("expected destination 'Marte', got '%s'", updated.Destination)
	}
	if updated.Name != created.Name || updated.State != created.State {
		t.Errorf("expected other fields unchanged, got %+v", updated)
	}
	if updated.LaunchDate != "2024-06-15" {
		t.Errorf("expected launch date retained, got '%s'", updated.LaunchDate)
	}
	if updated.Crew == nil || *updated.Crew != "Wiseman" {
		t.Errorf("expected crew retained, got %v", updated.Crew)
	}

	stored, _ := service.GetMission(ctx, created.ID)
	if stored.Destination != "Marte" {
		t.Errorf("expected update persisted, got '%s'", stored.Destination)
	}
}

func TestUpdateMission_NotFound(t *testing.T) {
	service, _ := newTestMissionService()

	_, err := service.UpdateMission(context.Background(), primary.UpdateMissionRequest{
		MissionID: 7,
		Patch:     coremission.Patch{Destination: coremission.Some("Marte")},
	})
	if !errors.Is(err, ErrMissionNotFound) {
		t.Fatalf("expected ErrMissionNotFound, got %v", err)
	}
}

func TestUpdateMission_InvalidDate(t *testing.T) {
	service, repo := newTestMissionService()
	ctx := context.Background()
	created, _ := service.CreateMission(ctx, validCreateRequest("Artemis II", "2024-06-15"))

	_, err := service.UpdateMission(ctx, primary.UpdateMissionRequest{
		MissionID: created.ID,
		Patch:     coremission.Patch{LaunchDate: coremission.Some("junho")},
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if repo.missions[created.ID].LaunchDate.Format("2006-01-02") != "2024-06-15" {
		t.Error("expected stored launch date untouched")
	}
}

func TestUpdateMission_NullRequiredField(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()
	created, _ := service.CreateMission(ctx, validCreateRequest("Artemis II", "2024-06-15"))

	_, err := service.UpdateMission(ctx, primary.UpdateMissionRequest{
		MissionID: created.ID,
		Patch:     coremission.Patch{Name: coremission.Null[string]()},
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

// ============================================================================
// DeleteMission / Ping Tests
// ============================================================================

func TestDeleteMission_Twice(t *testing.T) {
	service, _ := newTestMissionService()
	ctx := context.Background()
	created, _ := service.CreateMission(ctx, validCreateRequest("Artemis II", "2024-06-15"))

	if err := service.DeleteMission(ctx, created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := service.DeleteMission(ctx, created.ID); !errors.Is(err, ErrMissionNotFound) {
		t.Fatalf("expected ErrMissionNotFound on second delete, got %v", err)
	}
	if _, err := service.GetMission(ctx, created.ID); !errors.Is(err, ErrMissionNotFound) {
		t.Fatalf("expected ErrMissionNotFound after delete, got %v", err)
	}
}

func TestPing(t *testing.T) {
	service, repo := newTestMissionService()
	if err := service.Ping(context.Background()); err != nil {
		t.Fatalf("expected healthy ping, got %v", err)
	}
	repo.pingErr = errors.New("closed")
	if err := service.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}
