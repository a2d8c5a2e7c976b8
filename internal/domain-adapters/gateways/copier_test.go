package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

type recordingNotifier struct {
	refreshed []string
}

func (r *recordingNotifier) Refresh(path string) {
	r.refreshed = append(r.refreshed, path)
}

func (r *recordingNotifier) IsIncremental() bool { return false }

func TestCopierCopiesFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "artifact.jar")
	if err := os.WriteFile(source, []byte("jar bytes"), 0640); err != nil {
		t.Fatalf("write source: %v", err)
	}
	dest := filepath.Join(dir, "out", "nested", "artifact.jar")

	notifier := &recordingNotifier{}
	if err := NewCopier(nil, notifier, false).Copy(source, dest); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	assertFileContent(t, dest, "jar bytes")

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat dest: %v", err)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("dest mode = %v, want 0640", info.Mode().Perm())
	}

	if len(notifier.refreshed) != 1 || notifier.refreshed[0] != dest {
		t.Errorf("refreshed = %v, want [%s]", notifier.refreshed, dest)
	}
}

func TestCopierRejectsDirectorySource(t *testing.T) {
	notifier := &recordingNotifier{}
	err := NewCopier(nil, notifier, false).Copy(t.TempDir(), filepath.Join(t.TempDir(), "out"))
	if err == nil {
		t.Fatal("Copy() should reject a directory source")
	}
	if len(notifier.refreshed) != 0 {
		t.Error("build context should not be refreshed on failure")
	}
}

func TestCopierMissingSource(t *testing.T) {
	err := NewCopier(nil, nil, false).Copy(filepath.Join(t.TempDir(), "absent.jar"), filepath.Join(t.TempDir(), "out.jar"))
	if err == nil {
		t.Fatal("Copy() should fail for a missing source")
	}
}

func TestCopierOverwritesExistingDest(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "new.jar")
	dest := filepath.Join(dir, "existing.jar")
	if err := os.WriteFile(source, []byte("new"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := os.WriteFile(dest, []byte("old content, longer"), 0644); err != nil {
		t.Fatalf("write dest: %v", err)
	}

	if err := NewCopier(nil, nil, false).Copy(source, dest); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	assertFileContent(t, dest, "new")
}
