package main

import (
	"context"
	"fmt"
	"os"

	"genmocks/pkg/burnin"
	"genmocks/pkg/log"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   log.Logger
	rootCmd  = &cobra.Command{
		Use:   "burn-in-mock",
		Short: "burn-in-mock stands in for burn-in test discovery",
		Long: `A mock of the burn-in discovery tool. It takes no arguments and prints
a fixed YAML document listing three discovered tasks, so the
task-generation system can be exercised without the real tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
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
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cmd.Context().Value("logger").(log.Logger)
			logger.Debug("Printing burn-in discovery document")
			return burnin.Discover(cmd.OutOrStdout())
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
