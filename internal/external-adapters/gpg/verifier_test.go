package gpg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVerifyDetachedWithoutKeys(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "artifact.jar")
	sig := filepath.Join(dir, "artifact.jar.asc")
	for _, path := range []string{file, sig} {
		if err := os.WriteFile(path, []byte("content"), 0600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	if err := NewVerifier().VerifyDetached(file, sig); err == nil {
		t.Fatal("VerifyDetached() should fail with an empty keyring")
	}
}

func TestImportKeyringFileMissing(t *testing.T) {
	v := NewVerifier()
	if err := v.ImportKeyringFile(filepath.Join(t.TempDir(), "absent.gpg")); err == nil {
		t.Fatal("ImportKeyringFile() should fail for a missing file")
	}
	if v.KeyringSize() != 0 {
		t.Errorf("KeyringSize() = %d, want 0", v.KeyringSize())
	}
}

func TestImportKeyringFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.gpg")
	if err := os.WriteFile(path, []byte("this is not a key"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := NewVerifier().ImportKeyringFile(path); err == nil {
		t.Fatal("ImportKeyringFile() should fail on non-key data")
	}
}

func TestKeyringOperations(t *testing.T) {
	v := NewVerifier()
	if v.KeyringSize() != 0 {
		t.Errorf("initial KeyringSize() = %d, want 0", v.KeyringSize())
	}

	v.ClearKeyring()
	if v.KeyringSize() != 0 {
		t.Errorf("after clear, KeyringSize() = %d, want 0", v.KeyringSize())
	}
}
