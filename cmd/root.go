package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ultraviolet-black/shotty/pkg/inventory"
	"github.com/ultraviolet-black/shotty/pkg/manager"
	"github.com/ultraviolet-black/shotty/pkg/observability"
	"github.com/ultraviolet-black/shotty/pkg/providers/aws"
	"github.com/ultraviolet-black/shotty/pkg/providers/aws/ec2"
)

var (
	cfgFile string

	signalCh = make(chan os.Signal, 1)

	profile             string
	region              string
	ec2Endpoint         string
	snapshotDescription string
	logLevel            string

	project string

	sourceFactory = newEC2Source

	shottyManager manager.Manager

	rootCmd = &cobra.Command{
		Use:          "shotty",
		Short:        "Shotty manages EC2 instances, volumes and snapshots",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

			if err := observability.InitializeLog(viper.GetString("log_level")); err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidLogLevel, err)
			}

			if used := viper.ConfigFileUsed(); len(used) > 0 {
				observability.Log.Debugw("using config file", "path", used)
			}

			source, err := sourceFactory(cmd.Context())
			if err != nil {
				return err
			}

			shottyManager = manager.NewManager(
				manager.WithSource(source),
				manager.WithOutput(cmd.OutOrStdout()),
				manager.WithSnapshotDescription(viper.GetString("snapshot_description")),
			)

			return nil
		},
	}
)

func newEC2Source(ctx context.Context) (inventory.Source, error) {

	awsProvider, err := aws.NewProvider(ctx,
		aws.WithProfile(viper.GetString("profile")),
		aws.WithRegion(viper.GetString("region")),
		aws.WithEC2Endpoint(viper.GetString("ec2_endpoint")),
	)
	if err != nil {
		return nil, err
	}

	return ec2.NewInventory(
		ec2.WithEC2Client(awsProvider.GetEC2Client()),
	), nil

}

func addProjectFlag(cmd *cobra.Command, help string) {
	cmd.Flags().StringVar(&project, "project", "", help)
}

func Execute() error {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-signalCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return rootCmd.ExecuteContext(ctx)

}

func init() {
	cobra.OnInitialize(initConfig)

	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shotty.toml)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "AWS shared config profile (empty uses the SDK default chain)")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region (empty uses the SDK default chain)")
	rootCmd.PersistentFlags().StringVar(&ec2Endpoint, "ec2-endpoint", "", "EC2 endpoint override")
	rootCmd.PersistentFlags().StringVar(&snapshotDescription, "snapshot-description", manager.DefaultSnapshotDescription, "description of created snapshots")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level, valid values: debug, info, warn, error")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("ec2_endpoint", rootCmd.PersistentFlags().Lookup("ec2-endpoint"))
	viper.BindPFlag("snapshot_description", rootCmd.PersistentFlags().Lookup("snapshot-description"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	initSnapshots()
	initVolumes()
	initInstances()

	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(volumesCmd)
	rootCmd.AddCommand(instancesCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".shotty")
	}

	viper.SetEnvPrefix("shotty")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}
