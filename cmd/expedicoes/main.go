package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/expedicoes/internal/cli"
	"github.com/example/expedicoes/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "expedicoes",
		Short:   "Expedições - mission record service",
		Version: version.String(),
		Long: `expedicoes stores space mission records in SQLite and serves them
over an HTTP/JSON API. It also offers read-only terminal views of the same store.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides EXPEDICOES_DB_PATH)")

	// Add subcommands
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MissionCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
