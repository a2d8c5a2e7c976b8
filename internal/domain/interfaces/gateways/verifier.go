package gateways

import "context"

// ArtifactVerifier checks archive integrity before extraction.
type ArtifactVerifier interface {
	// VerifyChecksum compares the file's SHA256 digest against expectedSum.
	VerifyChecksum(ctx context.Context, path, expectedSum string) error

	// VerifySignature checks a detached signature file against the archive.
	VerifySignature(ctx context.Context, path, sigPath string) error
}
