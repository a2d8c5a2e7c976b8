package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"depscope/internal/domain/interfaces/gateways"
	"depscope/internal/domain/services"
)

// entrySelector filters archive entries by include/exclude wildcard
// patterns. Patterns are matched against the slash-separated entry name;
// * matches any run of characters including path separators.
type entrySelector struct {
	includes []string
	excludes []string
}

func newEntrySelector(req gateways.ExtractRequest) entrySelector {
	return entrySelector{includes: req.Includes, excludes: req.Excludes}
}

// selected reports whether the entry should be extracted: it must match an
// include (or no includes are configured) and must match no exclude.
func (s entrySelector) selected(name string) bool {
	name = strings.TrimPrefix(filepath.ToSlash(name), "./")

	if len(s.includes) > 0 {
		included := false
		for _, pattern := range s.includes {
			if services.WildcardMatch(pattern, name) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}

	for _, pattern := range s.excludes {
		if services.WildcardMatch(pattern, name) {
			return false
		}
	}
	return true
}

// securePath joins an archive entry name onto the destination directory,
// rejecting names that would escape it.
func securePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	cleanDest := filepath.Clean(dest)
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return "", fmt.Errorf("entry %q escapes destination directory", name)
	}
	return target, nil
}

// secureLinkTarget rejects symlink entries whose target resolves outside the
// destination directory. Without this, an archive can plant a symlink to an
// outside directory and route a later regular-file entry through it, which
// the lexical entry-name check alone does not catch.
func secureLinkTarget(dest, linkPath, linkname string) error {
	target := linkname
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), linkname)
	}
	target = filepath.Clean(target)
	cleanDest := filepath.Clean(dest)
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return fmt.Errorf("symlink target %q escapes destination directory", linkname)
	}
	return nil
}

// ensureDestDir creates the extraction destination, mirroring the contract
// that a location which cannot be created is a hard error.
func ensureDestDir(dest string) error {
	if err := os.MkdirAll(dest, 0750); err != nil {
		return fmt.Errorf("location to write unpacked files to could not be created: %w", err)
	}
	return nil
}

// rejectUnpackagedSource fails when the source is a directory: the artifact
// has not been packaged yet and extraction would be meaningless.
func rejectUnpackagedSource(source string) error {
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("artifact has not been packaged yet: %s", source)
	}
	return nil
}
