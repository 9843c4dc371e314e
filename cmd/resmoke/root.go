package main

import (
	"context"
	"fmt"
	"os"

	"genmocks/pkg/log"
	"genmocks/pkg/resmoke"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   log.Logger
	rootCmd  = &cobra.Command{
		Use:   "resmoke-mock <subcommand>",
		Short: "resmoke-mock stands in for resmoke during task-generation tests",
		Long: `A mock of the resmoke test runner's query surface. It answers the three
subcommands the task-generation system issues (multiversion-config,
suiteconfig, test-discovery) with canned documents, so the system can be
exercised without the real tool. All payloads go to stdout; logs go to
stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = log.NewSlogLogger(level, cmd.ErrOrStderr())
			ctx := context.WithValue(cmd.Context(), "logger", logger)
			cmd.SetContext(ctx)
			return nil
		},
		// The registered subcommands are the closed set; anything that falls
		// through to the root is unrecognized.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("missing subcommand (expected one of: %s, %s, %s)",
					resmoke.SubcommandMultiversionConfig,
					resmoke.SubcommandSuiteConfig,
					resmoke.SubcommandTestDiscovery)
			}
			return &resmoke.UnknownSubcommandError{Name: args[0]}
		},
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
