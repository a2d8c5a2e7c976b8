// Package gpg provides detached GPG signature verification.
package gpg

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier checks detached signatures against an in-memory keyring using
// ProtonMail's maintained go-crypto fork. The keyring is populated from
// local key files only; this adapter never talks to keyservers.
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring.
func NewVerifier() *Verifier {
	return &Verifier{keyring: make(openpgp.EntityList, 0)}
}

// ImportKeyringFile loads public keys from an armored or binary key file.
func (v *Verifier) ImportKeyringFile(path string) error {
	//nolint:gosec // G304: path is a caller-provided key file
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	keys, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		keys, err = openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to parse key file %s: %w", path, err)
		}
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", path)
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// KeyringSize returns the number of imported keys.
func (v *Verifier) KeyringSize() int {
	return len(v.keyring)
}

// ClearKeyring removes all imported keys.
func (v *Verifier) ClearKeyring() {
	v.keyring = make(openpgp.EntityList, 0)
}

// VerifyDetached checks a detached signature file against the signed file.
// Armored signatures are tried first, then binary.
func (v *Verifier) VerifyDetached(filePath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no keys imported, cannot verify signature")
	}

	//nolint:gosec // G304: filePath is the artifact under verification
	signed, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read signed file: %w", err)
	}
	//nolint:gosec // G304: sigPath is a caller-provided signature file
	sig, err := os.ReadFile(sigPath)
	if err != nil {
		return fmt.Errorf("failed to read signature file: %w", err)
	}

	_, err = openpgp.CheckArmoredDetachedSignature(
		v.keyring, bytes.NewReader(signed), bytes.NewReader(sig), nil)
	if err != nil {
		_, err = openpgp.CheckDetachedSignature(
			v.keyring, bytes.NewReader(signed), bytes.NewReader(sig), nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed for %s: %w", filePath, err)
	}
	return nil
}
