package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/expedicoes/internal/logging"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second

	limiterCleanupInterval = 5 * time.Minute
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the mission HTTP API.

Configuration is read from defaults, a .env file, the YAML file named by
EXPEDICOES_CONFIG and EXPEDICOES_* environment variables, in that order.
Flags override all of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, logger, container, err := bootstrap(ctx, cmd)
			if err != nil {
				return err
			}
			defer closeContainer(logger, container)

			container.API.StartLimiterCleanup(ctx, limiterCleanupInterval)

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
			}

			srv := &http.Server{
				Handler:           container.API.Router(),
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			logger.WithFields(logrus.Fields{"addr": ln.Addr().String(), "db_path": cfg.DBPath}).Info("server starting")
			return serve(ctx, srv, ln, cfg.ShutdownTimeout(), logger)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides EXPEDICOES_ADDR)")
	cmd.Flags().String("db", "", "SQLite database path (overrides EXPEDICOES_DB_PATH)")

	return cmd
}

// serve runs srv on ln until ctx is done, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.LogInfo(logger, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logging.LogInfo(logger, "server stopped")
	return nil
}
