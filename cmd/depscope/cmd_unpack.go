package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	adapters "depscope/internal/domain-adapters/gateways"
	"depscope/internal/domain/interfaces"
	"depscope/internal/domain/interfaces/gateways"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <archive>...",
	Short: "Unpack one or more dependency archives",
	Long: `Extracts zip-family (zip, jar, war, ear) and tar archives, optionally
filtered by include/exclude patterns and verified against a SHA256 checksum
or a detached GPG signature before extraction.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUnpack,
}

func init() {
	flags := unpackCmd.Flags()
	flags.StringP("dest", "d", ".", "destination directory")
	flags.String("type", "", "archive type hint (zip, jar, war, ear, tar, tar.gz, tgz)")
	flags.String("include", "", "comma separated patterns of entries to extract")
	flags.String("exclude", "", "comma separated patterns of entries to skip")
	flags.String("encoding", "", "IANA charset for legacy zip entry names")
	flags.String("sha256", "", "expected SHA256 checksum (single archive only)")
	flags.String("signature", "", "detached signature file (single archive only)")
	flags.String("keyring", "", "public key file for signature verification")
	flags.Int("concurrency", 4, "maximum archives unpacked in parallel")
	flags.Bool("skip-incremental", false, "skip when triggered by an incremental build")
	flags.BoolP("verbose", "v", false, "verbose logging")
}

func runUnpack(cmd *cobra.Command, args []string) error {
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

	sha256Sum, _ := cmd.Flags().GetString("sha256")
	sigPath, _ := cmd.Flags().GetString("signature")
	if (sha256Sum != "" || sigPath != "") && len(args) > 1 {
		return fmt.Errorf("checksum and signature verification apply to a single archive, got %d", len(args))
	}

	keyring, _ := cmd.Flags().GetString("keyring")
	if sigPath != "" && keyring == "" {
		return fmt.Errorf("--signature requires --keyring")
	}

	verifier, err := adapters.NewArtifactVerifier(keyring)
	if err != nil {
		return err
	}

	dest, _ := cmd.Flags().GetString("dest")
	typeHint, _ := cmd.Flags().GetString("type")
	includes, _ := cmd.Flags().GetString("include")
	excludes, _ := cmd.Flags().GetString("exclude")
	encoding, _ := cmd.Flags().GetString("encoding")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency < 1 {
		concurrency = 1
	}

	manager := adapters.NewArchiverManager(log)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	for _, archive := range args {
		archive := archive
		g.Go(func() error {
			return unpackOne(ctx, unpackJob{
				manager:   manager,
				verifier:  verifier,
				log:       log,
				archive:   archive,
				typeHint:  typeHint,
				dest:      dest,
				includes:  includes,
				excludes:  excludes,
				encoding:  encoding,
				sha256Sum: sha256Sum,
				sigPath:   sigPath,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	notifier.Refresh(dest)
	return nil
}

type unpackJob struct {
	manager   gateways.ArchiverManager
	verifier  gateways.ArtifactVerifier
	log       interfaces.Logger
	archive   string
	typeHint  string
	dest      string
	includes  string
	excludes  string
	encoding  string
	sha256Sum string
	sigPath   string
}

func unpackOne(ctx context.Context, job unpackJob) error {
	if job.sha256Sum != "" {
		if err := job.verifier.VerifyChecksum(ctx, job.archive, job.sha256Sum); err != nil {
			return err
		}
		job.log.Info("Checksum verified", interfaces.F("file", job.archive))
	}
	if job.sigPath != "" {
		if err := job.verifier.VerifySignature(ctx, job.archive, job.sigPath); err != nil {
			return err
		}
		job.log.Info("Signature verified", interfaces.F("file", job.archive))
	}

	unarchiver, err := job.manager.UnArchiver(job.typeHint, job.archive)
	if err != nil {
		return err
	}

	job.log.Info("Unpacking",
		interfaces.F("file", job.archive),
		interfaces.F("dest", job.dest))

	return unarchiver.Extract(ctx, gateways.ExtractRequest{
		Source:   job.archive,
		Dest:     job.dest,
		Includes: splitPatterns(job.includes),
		Excludes: splitPatterns(job.excludes),
		Encoding: job.encoding,
	})
}

func splitPatterns(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	patterns := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	return patterns
}
