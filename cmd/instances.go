package cmd

import "github.com/spf13/cobra"

var (
	instancesCmd = &cobra.Command{
		Use:   "instances",
		Short: "Commands for instances",
	}

	instancesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shottyManager.ListInstances(cmd.Context(), project)
		},
	}

	instancesSnapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Create snapshot of all volumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shottyManager.CreateSnapshots(cmd.Context(), project)
		},
	}

	instancesStopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shottyManager.StopInstances(cmd.Context(), project)
		},
	}

	instancesStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shottyManager.StartInstances(cmd.Context(), project)
		},
	}
)

func initInstances() {
	addProjectFlag(instancesListCmd, "Only instances for project (tag Project:<name>)")
	addProjectFlag(instancesSnapshotCmd, "Only instances for project (tag Project:<name>)")
	addProjectFlag(instancesStopCmd, "Only instances for project")
	addProjectFlag(instancesStartCmd, "Only instances for project")

	instancesCmd.AddCommand(instancesListCmd)
	instancesCmd.AddCommand(instancesSnapshotCmd)
	instancesCmd.AddCommand(instancesStopCmd)
	instancesCmd.AddCommand(instancesStartCmd)
}
