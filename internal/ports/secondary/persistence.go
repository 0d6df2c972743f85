// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when no row matches the identifier.
var ErrNotFound = errors.New("not found")

// MissionRepository defines the secondary port for mission persistence.
type MissionRepository interface {
	// Create persists a new mission and sets its store-assigned ID.
	Create(ctx context.Context, mission *MissionRecord) error

	// GetByID retrieves a mission by its ID.
	// Returns an error wrapping ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*MissionRecord, error)

	// List retrieves missions matching the given filters,
	// ordered by launch date descending.
	List(ctx context.Context, filters MissionFilters) ([]*MissionRecord, error)

	// Update overwrites every mutable column of an existing mission.
	Update(ctx context.Context, mission *MissionRecord) error

	// Delete removes a mission from persistence.
	Delete(ctx context.Context, id int64) error

	// Ping checks connectivity with the underlying database.
	Ping(ctx context.Context) error
}

// MissionRecord represents a mission as stored in persistence.
// Nil pointers are NULL columns.
type MissionRecord struct {
	ID             int64
	Name           string
	LaunchDate     time.Time
	Destination    string
	State          string
	Crew           *string
	Payload        *string
	Duration       *string
	Cost           *float64
	DetailedStatus *string
}

// MissionFilters contains filter options for querying missions.
// Zero bounds are ignored; both bounds are inclusive.
type MissionFilters struct {
	LaunchFrom time.Time
	LaunchTo   time.Time
}
