// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/expedicoes/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// A second pooled connection would see a different, empty database.
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMission inserts a mission with only the required columns and returns its ID.
func seedMission(t *testing.T, db *sql.DB, name, launchDate string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Mission"
	}
	if launchDate == "" {
		launchDate = "2024-01-01"
	}
	result, err := db.Exec(
		"INSERT INTO missao (nome, data_lancamento, destino, estado_missao) VALUES (?, ?, 'Lua', 'planejada')",
		name, launchDate,
	)
	if err != nil {
		t.Fatalf("failed to seed mission: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded mission ID: %v", err)
	}
	return id
}
