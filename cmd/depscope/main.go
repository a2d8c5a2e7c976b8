package main

import (
	"os"

	"github.com/spf13/cobra"

	"depscope/internal/domain/interfaces"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "Dependency analysis reporting for POM-based projects",
	Long: `depscope reconciles a dependency analyzer's raw result against project
configuration and reports used, unused and undeclared dependencies. It also
carries the shared helpers of dependency tooling: archive unpacking, artifact
fetching and file copying.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(unpackCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(fetchCmd)

	rootCmd.PersistentFlags().Bool("silent", false, "suppress all log output")
	rootCmd.PersistentFlags().Bool("skip", false, "skip execution completely")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLoggerFromFlags builds the logger shared by all commands, honoring
// --silent. Silencing swaps in a no-op logger instead of poking at any
// collaborator's internals.
func newLoggerFromFlags(cmd *cobra.Command, verbose bool) interfaces.Logger {
	silent, _ := cmd.Flags().GetBool("silent")
	return newLogger(silent, verbose)
}

// skipRequested reports whether --skip was set.
func skipRequested(cmd *cobra.Command) bool {
	skip, _ := cmd.Flags().GetBool("skip")
	return skip
}
