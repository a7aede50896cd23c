package cmd

import "github.com/spf13/cobra"

var (
	volumesCmd = &cobra.Command{
		Use:   "volumes",
		Short: "Commands for volumes",
	}

	volumesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List EC2 volumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shottyManager.ListVolumes(cmd.Context(), project)
		},
	}
)

func initVolumes() {
	addProjectFlag(volumesListCmd, "Only volumes for project (tag Project:<name>)")

	volumesCmd.AddCommand(volumesListCmd)
}
