// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	coremission "github.com/example/expedicoes/internal/core/mission"
)

// MissionService defines the primary port for mission operations.
// HTTP handlers and CLI adapters drive the application through it.
type MissionService interface {
	// CreateMission validates and persists a new mission.
	CreateMission(ctx context.Context, req CreateMissionRequest) (*Mission, error)

	// GetMission retrieves a mission by ID.
	GetMission(ctx context.Context, missionID int64) (*Mission, error)

	// ListMissions lists every mission, most recent launch first.
	ListMissions(ctx context.Context) ([]*Mission, error)

	// SearchMissions lists missions launching within an inclusive date range.
	SearchMissions(ctx context.Context, req SearchMissionsRequest) ([]*Mission, error)

	// UpdateMission applies a partial update and returns the stored result.
	UpdateMission(ctx context.Context, req UpdateMissionRequest) (*Mission, error)

	// DeleteMission permanently removes a mission.
	DeleteMission(ctx context.Context, missionID int64) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// CreateMissionRequest contains parameters for creating a mission.
// Required fields are pointers so absence can be told apart from "".
type CreateMissionRequest struct {
	Name           *string
	LaunchDate     *string // YYYY-MM-DD
	Destination    *string
	State          *string
	Crew           *string
	Payload        *string
	Duration       *string
	Cost           *float64
	DetailedStatus *string
}

// SearchMissionsRequest contains the raw bounds of a date-range search.
type SearchMissionsRequest struct {
	From string // YYYY-MM-DD, inclusive
	To   string // YYYY-MM-DD, inclusive
}

// UpdateMissionRequest contains parameters for updating a mission.
type UpdateMissionRequest struct {
	MissionID int64
	Patch     coremission.Patch
}

// Mission represents a mission entity at the port boundary.
type Mission struct {
	ID             int64
	Name           string
	LaunchDate     string // YYYY-MM-DD
	Destination    string
	State          string
	Crew           *string
	Payload        *string
	Duration       *string
	Cost           *float64
	DetailedStatus *string
}
