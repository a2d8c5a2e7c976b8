package gateways

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"depscope/internal/domain/interfaces"
	"depscope/internal/domain/interfaces/gateways"
)

// Copier copies artifact files with logging and build-context notification.
type Copier struct {
	log           interfaces.Logger
	notifier      gateways.BuildContextNotifier
	absoluteNames bool
}

// NewCopier creates a copier. When absoluteNames is set, log lines show the
// source's absolute path instead of its base name.
func NewCopier(log interfaces.Logger, notifier gateways.BuildContextNotifier, absoluteNames bool) *Copier {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}
	if notifier == nil {
		notifier = NewNoopBuildContext()
	}
	return &Copier{log: log, notifier: notifier, absoluteNames: absoluteNames}
}

// Copy copies source to dest, creating parent directories as needed and
// refreshing the build context afterwards. Directory sources are rejected:
// the artifact has not been packaged yet.
func (c *Copier) Copy(source, dest string) error {
	displayName := filepath.Base(source)
	if c.absoluteNames {
		if abs, err := filepath.Abs(source); err == nil {
			displayName = abs
		}
	}
	c.log.Info(fmt.Sprintf("Copying %s to %s", displayName, dest))

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("error copying artifact from %s to %s: %w", source, dest, err)
	}
	if info.IsDir() {
		return fmt.Errorf("artifact has not been packaged yet, copy should run after packaging: %s", source)
	}

	if err := c.copyFile(source, dest, info.Mode().Perm()); err != nil {
		return fmt.Errorf("error copying artifact from %s to %s: %w", source, dest, err)
	}

	c.notifier.Refresh(dest)
	return nil
}

func (c *Copier) copyFile(source, dest string, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		return err
	}

	//nolint:gosec // G304: source path is a caller-provided artifact
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	//nolint:errcheck // Defer close on read-only file
	defer in.Close()

	//nolint:gosec // G304: dest path is a caller-provided destination
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
