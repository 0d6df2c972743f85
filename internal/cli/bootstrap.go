// Package cli provides CLI commands for the expedicoes application.
package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/expedicoes/internal/config"
	"github.com/example/expedicoes/internal/logging"
	"github.com/example/expedicoes/internal/wire"
)

// closeContainer releases the container, logging rather than returning the
// error so it never masks the command's own result.
func closeContainer(logger logrus.FieldLogger, container *wire.Container) {
	if err := container.Close(); err != nil {
		logging.LogError(logger, "failed to close database", err)
	}
}

// loadConfig resolves layered config, then applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("db"); f != nil && f.Changed {
		cfg.DBPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bootstrap loads config, builds the logger and the dependency container.
// The caller must Close the container.
func bootstrap(ctx context.Context, cmd *cobra.Command) (*config.Config, *logrus.Logger, *wire.Container, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	container, err := wire.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, container, nil
}
