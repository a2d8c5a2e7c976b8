package main

import (
	"github.com/spf13/cobra"

	adapters "depscope/internal/domain-adapters/gateways"
)

var copyCmd = &cobra.Command{
	Use:   "copy <source> <dest>",
	Short: "Copy an artifact file to a destination",
	Long: `Copies a packaged artifact file, creating parent directories as needed and
notifying the build context of the new file. Directory sources are rejected:
copy runs after packaging.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	flags := copyCmd.Flags()
	flags.Bool("absolute-names", false, "log absolute source paths instead of base names")
	flags.Bool("skip-incremental", false, "skip when triggered by an incremental build")
	flags.BoolP("verbose", "v", false, "verbose logging")
}

func runCopy(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := newLoggerFromFlags(cmd, verbose)

	if skipRequested(cmd) {
		log.Info("Skipping execution")
		return nil
	}

	skipIncremental, _ := cmd.Flags().GetBool("skip-incremental")
	notifier := adapters.NewLoggingBuildContext(log, false)
	if skipIncremental && notifier.IsIncremental() {
		log.Info("Skipping execution during incremental build")
		return nil
	}

	absoluteNames, _ := cmd.Flags().GetBool("absolute-names")
	copier := adapters.NewCopier(log, notifier, absoluteNames)
	return copier.Copy(args[0], args[1])
}
