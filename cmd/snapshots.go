package cmd

import "github.com/spf13/cobra"

var (
	snapshotsCmd = &cobra.Command{
		Use:   "snapshots",
		Short: "Commands for snapshots",
	}

	snapshotsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List EC2 snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shottyManager.ListSnapshots(cmd.Context(), project)
		},
	}
)

func initSnapshots() {
	addProjectFlag(snapshotsListCmd, "Only snapshots for project (tag Project:<name>)")

	snapshotsCmd.AddCommand(snapshotsListCmd)
}
