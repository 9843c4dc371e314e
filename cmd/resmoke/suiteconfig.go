package main

import (
	"genmocks/pkg/log"
	"genmocks/pkg/resmoke"

	"github.com/spf13/cobra"
)

var suiteConfigSuite string

var suiteConfigCmd = &cobra.Command{
	Use:   resmoke.SubcommandSuiteConfig,
	Short: "Print the canned suite configuration",
	Long: `Prints the configuration of the mock's one suite as YAML. The --suite
flag is accepted for drop-in compatibility with the real tool's invocation,
but the answer is the same whatever suite is asked for.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)
		if suiteConfigSuite != "" && suiteConfigSuite != resmoke.SuiteName {
			logger.Debug("Answering for the canned suite", "requested", suiteConfigSuite, "suite", resmoke.SuiteName)
		}
		return resmoke.WriteSuiteConfig(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(suiteConfigCmd)
	suiteConfigCmd.Flags().StringVar(&suiteConfigSuite, "suite", "", "Name of the suite to describe (ignored)")
}
