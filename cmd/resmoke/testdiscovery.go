package main

import (
	"genmocks/pkg/log"
	"genmocks/pkg/resmoke"

	"github.com/spf13/cobra"
)

var testDiscoverySuite string

var testDiscoveryCmd = &cobra.Command{
	Use:   resmoke.SubcommandTestDiscovery,
	Short: "Print the canned test listing",
	Long: `Prints the tests belonging to the mock's one suite as YAML. The --suite
flag is accepted for drop-in compatibility with the real tool's invocation,
but the answer is the same whatever suite is asked for.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)
		if testDiscoverySuite != "" && testDiscoverySuite != resmoke.SuiteName {
			logger.Debug("Answering for the canned suite", "requested", testDiscoverySuite, "suite", resmoke.SuiteName)
		}
		return resmoke.WriteTestDiscovery(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(testDiscoveryCmd)
	testDiscoveryCmd.Flags().StringVar(&testDiscoverySuite, "suite", "", "Name of the suite to discover (ignored)")
}
