// Package wire provides dependency injection for the expedicoes application.
// Every dependency is built explicitly by New and owned by the returned
// Container; nothing is held in package globals.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/expedicoes/internal/adapters/cli"
	"github.com/example/expedicoes/internal/adapters/http/api"
	"github.com/example/expedicoes/internal/adapters/sqlite"
	"github.com/example/expedicoes/internal/app"
	"github.com/example/expedicoes/internal/config"
	"github.com/example/expedicoes/internal/db"
	"github.com/example/expedicoes/internal/ports/primary"
	"github.com/example/expedicoes/pkg/metrics"
)

// Container holds the constructed application graph.
type Container struct {
	DB             *sql.DB
	Logger         logrus.FieldLogger
	Metrics        *metrics.Manager
	MissionService primary.MissionService
	API            *api.Server
}

// New opens the database and builds repositories, services and the HTTP API.
// The caller must Close the container.
func New(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Container, error) {
	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	missionRepo := sqlite.NewMissionRepository(database)

	// Create services (primary ports implementation)
	missionService := app.NewMissionService(missionRepo)

	m := metrics.NewManager()
	server := api.NewServer(missionService, logger, m, api.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	return &Container{
		DB:             database,
		Logger:         logger,
		Metrics:        m,
		MissionService: missionService,
		API:            server,
	}, nil
}

// MissionAdapter returns a new MissionAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (c *Container) MissionAdapter(out io.Writer) *cliadapter.MissionAdapter {
	return cliadapter.NewMissionAdapter(c.MissionService, out)
}

// Close releases the database handle.
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
