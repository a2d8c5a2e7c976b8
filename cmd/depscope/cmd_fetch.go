package main

import (
	"github.com/spf13/cobra"

	adapters "depscope/internal/domain-adapters/gateways"
	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch an artifact from a remote repository",
	Long: `Downloads an artifact from a remote repository using the standard
group/artifact/version layout.`,
	RunE: runFetch,
}

func init() {
	flags := fetchCmd.Flags()
	flags.String("repo-url", "", "remote repository base URL (required)")
	flags.StringP("group", "g", "", "artifact groupId (required)")
	flags.StringP("artifact", "a", "", "artifactId (required)")
	flags.String("version", "", "artifact version (required)")
	flags.String("classifier", "", "artifact classifier")
	flags.String("type", "jar", "artifact type")
	flags.StringP("dest", "d", ".", "destination directory")
	flags.BoolP("verbose", "v", false, "verbose logging")

	_ = fetchCmd.MarkFlagRequired("repo-url")
	_ = fetchCmd.MarkFlagRequired("group")
	_ = fetchCmd.MarkFlagRequired("artifact")
	_ = fetchCmd.MarkFlagRequired("version")
}

func runFetch(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := newLoggerFromFlags(cmd, verbose)

	if skipRequested(cmd) {
		log.Info("Skipping execution")
		return nil
	}

	repoURL, _ := cmd.Flags().GetString("repo-url")
	group, _ := cmd.Flags().GetString("group")
	artifact, _ := cmd.Flags().GetString("artifact")
	artifactVersion, _ := cmd.Flags().GetString("version")
	classifier, _ := cmd.Flags().GetString("classifier")
	artifactType, _ := cmd.Flags().GetString("type")
	dest, _ := cmd.Flags().GetString("dest")

	request := &entities.RepositoryRequest{
		RepositoryURL: repoURL,
		Artifact: entities.Artifact{
			GroupID:    group,
			ArtifactID: artifact,
			Version:    artifactVersion,
			Classifier: classifier,
			Type:       artifactType,
		},
	}

	fetcher := adapters.NewArtifactFetcher(log)
	path, err := fetcher.Fetch(cmd.Context(), request, dest)
	if err != nil {
		return err
	}

	log.Info("Fetched artifact", interfaces.F("path", path))
	return nil
}
