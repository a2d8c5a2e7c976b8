package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"depscope/internal/external-adapters/gpg"
)

// artifactVerifier checks archive integrity before extraction: SHA256
// checksums in pure Go and detached GPG signatures through the gpg adapter.
type artifactVerifier struct {
	gpg *gpg.Verifier
}

// NewArtifactVerifier creates a verifier. keyringPath may be empty when only
// checksum verification is needed.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewArtifactVerifier(keyringPath string) (*artifactVerifier, error) {
	v := &artifactVerifier{gpg: gpg.NewVerifier()}
	if keyringPath != "" {
		if err := v.gpg.ImportKeyringFile(keyringPath); err != nil {
			return nil, fmt.Errorf("failed to import keyring: %w", err)
		}
	}
	return v, nil
}

// VerifyChecksum compares the file's SHA256 digest against expectedSum,
// case-insensitively.
func (v *artifactVerifier) VerifyChecksum(_ context.Context, path, expectedSum string) error {
	//nolint:gosec // G304: path is the artifact under verification
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("failed to hash file: %w", err)
	}

	actualSum := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(actualSum, expectedSum) {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", path, expectedSum, actualSum)
	}
	return nil
}

// VerifySignature checks a detached signature file against the archive.
func (v *artifactVerifier) VerifySignature(_ context.Context, path, sigPath string) error {
	return v.gpg.VerifyDetached(path, sigPath)
}
