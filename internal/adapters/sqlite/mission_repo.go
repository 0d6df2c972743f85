// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coremission "github.com/example/expedicoes/internal/core/mission"
	"github.com/example/expedicoes/internal/ports/secondary"
)

const missionColumns = "id, nome, data_lancamento, destino, estado_missao, tripulacao, carga_util, duracao, custo, status_detalhado"

// MissionRepository implements secondary.MissionRepository with SQLite.
type MissionRepository struct {
	db *sql.DB
}

// NewMissionRepository creates a new SQLite mission repository.
func NewMissionRepository(db *sql.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create persists a new mission and sets mission.ID to the assigned rowid.
func (r *MissionRepository) Create(ctx context.Context, mission *secondary.MissionRecord) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO missao (nome, data_lancamento, destino, estado_missao, tripulacao, carga_util, duracao, custo, status_detalhado)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mission.Name,
		coremission.FormatLaunchDate(mission.LaunchDate),
		mission.Destination,
		mission.State,
		nullString(mission.Crew),
		nullString(mission.Payload),
		nullString(mission.Duration),
		nullFloat(mission.Cost),
		nullString(mission.DetailedStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read mission ID: %w", err)
	}
	mission.ID = id

	return nil
}

// GetByID retrieves a mission by its ID.
func (r *MissionRepository) GetByID(ctx context.Context, id int64) (*secondary.MissionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+missionColumns+" FROM missao WHERE id = ?",
		id,
	)

	record, err := scanMission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mission %d %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	return record, nil
}

// List retrieves missions matching the given filters.
// Ties on launch date are broken by ID so the order is deterministic.
func (r *MissionRepository) List(ctx context.Context, filters secondary.MissionFilters) ([]*secondary.MissionRecord, error) {
	query := "SELECT " + missionColumns + " FROM missao WHERE 1=1"
	args := []any{}

	if !filters.LaunchFrom.IsZero() {
		query += " AND data_lancamento >= ?"
		args = append(args, coremission.FormatLaunchDate(filters.LaunchFrom))
	}

	if !filters.LaunchTo.IsZero() {
		query += " AND data_lancamento <= ?"
		args = append(args, coremission.FormatLaunchDate(filters.LaunchTo))
	}

	query += " ORDER BY data_lancamento DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	missions := []*secondary.MissionRecord{}
	for rows.Next() {
		record, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return missions, nil
}

// Update overwrites every mutable column of an existing mission.
// The service layer merges partial updates before calling this.
func (r *MissionRepository) Update(ctx context.Context, mission *secondary.MissionRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE missao SET nome = ?, data_lancamento = ?, destino = ?, estado_missao = ?,
		 tripulacao = ?, carga_util = ?, duracao = ?, custo = ?, status_detalhado = ?
		 WHERE id = ?`,
		mission.Name,
		coremission.FormatLaunchDate(mission.LaunchDate),
		mission.Destination,
		mission.State,
		nullString(mission.Crew),
		nullString(mission.Payload),
		nullString(mission.Duration),
		nullFloat(mission.Cost),
		nullString(mission.DetailedStatus),
		mission.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("mission %d %w", mission.ID, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a mission from persistence.
func (r *MissionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM missao WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("mission %d %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Ping checks connectivity with the database.
func (r *MissionRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(row rowScanner) (*secondary.MissionRecord, error) {
	var (
		launch         string
		crew           sql.NullString
		payload        sql.NullString
		duration       sql.NullString
		cost           sql.NullFloat64
		detailedStatus sql.NullString
	)

	record := &secondary.MissionRecord{}
	err := row.Scan(&record.ID, &record.Name, &launch, &record.Destination, &record.State,
		&crew, &payload, &duration, &cost, &detailedStatus)
	if err != nil {
		return nil, err
	}

	record.LaunchDate, err = coremission.ParseLaunchDate(launch)
	if err != nil {
		return nil, fmt.Errorf("mission %d has corrupt launch date: %w", record.ID, err)
	}
	record.Crew = stringPtr(crew)
	record.Payload = stringPtr(payload)
	record.Duration = stringPtr(duration)
	record.DetailedStatus = stringPtr(detailedStatus)
	if cost.Valid {
		record.Cost = &cost.Float64
	}

	return record, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// Ensure MissionRepository implements the interface
var _ secondary.MissionRepository = (*MissionRepository)(nil)
