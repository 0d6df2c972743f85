// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/expedicoes/internal/ports/primary"
)

// MissionAdapter is a thin adapter that translates CLI operations to MissionService calls.
// It depends only on the MissionService interface, enabling easy testing with mocks.
type MissionAdapter struct {
	service primary.MissionService
	out     io.Writer
}

// NewMissionAdapter creates a new MissionAdapter with the given service.
func NewMissionAdapter(service primary.MissionService, out io.Writer) *MissionAdapter {
	return &MissionAdapter{
		service: service,
		out:     out,
	}
}

// List lists missions, optionally restricted to an inclusive launch date range.
// from and to must be given together.
func (a *MissionAdapter) List(ctx context.Context, from, to string) error {
	if (from == "") != (to == "") {
		return fmt.Errorf("--from and --to must be used together")
	}

	var (
		missions []*primary.Mission
		err      error
	)
	if from != "" {
		missions, err = a.service.SearchMissions(ctx, primary.SearchMissionsRequest{From: from, To: to})
	} else {
		missions, err = a.service.ListMissions(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list missions: %w", err)
	}

	if len(missions) == 0 {
		fmt.Fprintln(a.out, "No missions found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-12s %-12s %-20s %s\n", "ID", "LAUNCH", "STATE", "DESTINATION", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, m := range missions {
		fmt.Fprintf(a.out, "%-6d %-12s %s %-20s %s\n", m.ID, m.LaunchDate, stateLabel(m.State, 12), m.Destination, m.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single mission.
func (a *MissionAdapter) Show(ctx context.Context, missionID int64) (*primary.Mission, error) {
	mission, err := a.service.GetMission(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	fmt.Fprintf(a.out, "\nMission: %d\n", mission.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", mission.Name)
	fmt.Fprintf(a.out, "Launch:      %s\n", mission.LaunchDate)
	fmt.Fprintf(a.out, "Destination: %s\n", mission.Destination)
	fmt.Fprintf(a.out, "State:       %s\n", stateLabel(mission.State, 0))
	printOptional(a.out, "Crew:        ", mission.Crew)
	printOptional(a.out, "Payload:     ", mission.Payload)
	printOptional(a.out, "Duration:    ", mission.Duration)
	if mission.Cost != nil {
		fmt.Fprintf(a.out, "Cost:        %.2f\n", *mission.Cost)
	}
	printOptional(a.out, "Status:      ", mission.DetailedStatus)
	fmt.Fprintln(a.out)

	return mission, nil
}

func printOptional(out io.Writer, label string, v *string) {
	if v != nil && *v != "" {
		fmt.Fprintf(out, "%s%s\n", label, *v)
	}
}

// stateLabel pads before colorizing so escape codes do not break alignment.
func stateLabel(state string, width int) string {
	padded := fmt.Sprintf("%-*s", width, state)
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "ativa", "em andamento", "em_andamento":
		return color.New(color.FgGreen).Sprint(padded)
	case "planejada":
		return color.New(color.FgYellow).Sprint(padded)
	case "concluida", "concluída":
		return color.New(color.FgCyan).Sprint(padded)
	case "cancelada", "falha", "abortada":
		return color.New(color.FgRed).Sprint(padded)
	default:
		return padded
	}
}
