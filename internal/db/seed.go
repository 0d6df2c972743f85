package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with a handful of development missions.
// It refuses to run against a non-empty table.
func SeedFixtures(ctx context.Context, database *sql.DB) (int, error) {
	var count int
	if err := database.QueryRowContext(ctx, "SELECT COUNT(*) FROM missao").Scan(&count); err != nil {
		return 0, fmt.Errorf("seed missions: %w", err)
	}
	if count > 0 {
		return 0, fmt.Errorf("seed missions: table already has %d rows", count)
	}

	missions := []struct {
		nome, data, destino, estado string
		tripulacao, carga, duracao  any
		custo                       any
		status                      any
	}{
		{"Apollo 11", "1969-07-16", "Lua", "concluida", "Armstrong, Aldrin, Collins", "Eagle LM", "8 dias", 355000000.0, "Primeiro pouso tripulado na Lua."},
		{"Voyager 1", "1977-09-05", "Espaço interestelar", "ativa", nil, "Golden Record", nil, 250000000.0, "Transmitindo além da heliopausa."},
		{"Artemis II", "2025-09-01", "Órbita lunar", "planejada", "Wiseman, Glover, Koch, Hansen", "Orion", "10 dias", nil, nil},
	}

	for _, m := range missions {
		if _, err := database.ExecContext(ctx,
			`INSERT INTO missao (nome, data_lancamento, destino, estado_missao, tripulacao, carga_util, duracao, custo, status_detalhado)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.nome, m.data, m.destino, m.estado, m.tripulacao, m.carga, m.duracao, m.custo, m.status,
		); err != nil {
			return 0, fmt.Errorf("seed missions: %w", err)
		}
	}

	return len(missions), nil
}
