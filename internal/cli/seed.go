package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/expedicoes/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample missions into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, container, err := bootstrap(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closeContainer(logger, container)

			n, err := db.SeedFixtures(cmd.Context(), container.DB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Seeded %d missions\n", n)
			return nil
		},
	}
	cmd.Flags().String("db", "", "SQLite database path (overrides EXPEDICOES_DB_PATH)")
	return cmd
}
