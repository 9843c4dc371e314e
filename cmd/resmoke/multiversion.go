package main

import (
	"genmocks/pkg/log"
	"genmocks/pkg/resmoke"
	"genmocks/pkg/system"

	"github.com/spf13/cobra"
)

var multiversionFile string

var multiversionCmd = &cobra.Command{
	Use:   resmoke.SubcommandMultiversionConfig,
	Short: "Write the canned multiversion configuration file",
	Long: `Creates the multiversion configuration file in the working directory
unless it already exists. An existing file is never overwritten, whatever
its content. Nothing is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)
		return resmoke.WriteMultiversionConfig(system.AppFs, multiversionFile, logger)
	},
}

func init() {
	rootCmd.AddCommand(multiversionCmd)
	multiversionCmd.Flags().StringVar(&multiversionFile, "file", resmoke.DefaultMultiversionFile, "Path of the configuration file to create")
}
