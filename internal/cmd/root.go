package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tstackhq/tstack-kit/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "tstack-kit",
	Short: "Deterministic CRUD scaffold planner",
	Long: `tstack-kit turns a declarative entity description into a validated
generation plan: which source artifacts to emit, in what order, with which
authorization rules and middleware wired into each route.

The plan is computed deterministically, reviewed before anything touches
disk, and fingerprinted so later runs can detect scaffold drift.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")

		config := log.DefaultConfig()
		if cmd.Flags().Changed("log-level") {
			config.Level = log.ParseLevel(level)
		}
		if cmd.Flags().Changed("log-format") {
			config.Format = log.ParseFormat(format)
		}
		log.SetDefaultLogger(log.New(config))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
}
