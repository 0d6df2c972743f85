package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	coremission "github.com/example/expedicoes/internal/core/mission"
)

// MissionCmd returns the mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Inspect stored missions",
		Long:  "List and show mission records directly from the SQLite store",
	}
	cmd.PersistentFlags().String("db", "", "SQLite database path (overrides EXPEDICOES_DB_PATH)")

	cmd.AddCommand(missionListCmd())
	cmd.AddCommand(missionShowCmd())

	return cmd
}

func missionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions, most recent launch first",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			_, logger, container, err := bootstrap(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closeContainer(logger, container)

			return container.MissionAdapter(cmd.OutOrStdout()).List(cmd.Context(), from, to)
		},
	}
	cmd.Flags().String("from", "", "Earliest launch date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "Latest launch date (YYYY-MM-DD, inclusive)")
	return cmd
}

func missionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [mission-id]",
		Short: "Show mission details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := coremission.ParseMissionID(args[0])
			if !ok {
				return fmt.Errorf("invalid mission id %q", args[0])
			}

			_, logger, container, err := bootstrap(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closeContainer(logger, container)

			_, err = container.MissionAdapter(cmd.OutOrStdout()).Show(cmd.Context(), id)
			return err
		},
	}
}
