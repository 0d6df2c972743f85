package db

import (
	"context"
	"database/sql"
)

// SchemaSQL is the complete schema for the mission store.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it
// through GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so a
// repository referencing a column that does not exist here fails immediately
// with "no such column".
//
// The schema is created when absent and never migrated. Launch dates are
// stored in their YYYY-MM-DD wire form so lexical order equals date order.
// AUTOINCREMENT keeps identifiers of deleted missions from being reused.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS missao (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nome VARCHAR(100) NOT NULL,
	data_lancamento TEXT NOT NULL,
	destino VARCHAR(100) NOT NULL,
	estado_missao VARCHAR(50) NOT NULL,
	tripulacao VARCHAR(200),
	carga_util VARCHAR(200),
	duracao VARCHAR(50),
	custo REAL,
	status_detalhado TEXT
);

CREATE INDEX IF NOT EXISTS idx_missao_data_lancamento ON missao(data_lancamento);
`

// InitSchema creates the database schema if it does not exist yet.
func InitSchema(ctx context.Context, database *sql.DB) error {
	_, err := database.ExecContext(ctx, SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
