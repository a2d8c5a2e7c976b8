package gateways

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
	"depscope/internal/domain/interfaces/gateways"
)

// tarUnArchiver extracts tar archives, optionally gzip-compressed.
type tarUnArchiver struct {
	log     interfaces.Logger
	gzipped bool
}

func newTarUnArchiver(log interfaces.Logger, gzipped bool) *tarUnArchiver {
	return &tarUnArchiver{log: log, gzipped: gzipped}
}

// Extract unpacks the requested entries into req.Dest.
func (t *tarUnArchiver) Extract(ctx context.Context, req gateways.ExtractRequest) error {
	if err := t.extract(ctx, req); err != nil {
		return &entities.ArchiveError{Source: req.Source, Dest: req.Dest, Err: err}
	}
	return nil
}

func (t *tarUnArchiver) extract(ctx context.Context, req gateways.ExtractRequest) error {
	if err := rejectUnpackagedSource(req.Source); err != nil {
		return err
	}
	if err := ensureDestDir(req.Dest); err != nil {
		return err
	}

	//nolint:gosec // G304: source path is a caller-provided archive
	file, err := os.Open(req.Source)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	//nolint:errcheck // Defer close on read-only archive
	defer file.Close()

	var reader io.Reader = file
	if t.gzipped {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("failed to open gzip stream: %w", err)
		}
		//nolint:errcheck // Defer close on read-only stream
		defer gz.Close()
		reader = gz
	}

	selector := newEntrySelector(req)
	tarReader := tar.NewReader(reader)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read archive: %w", err)
		}

		if !selector.selected(header.Name) {
			continue
		}

		target, err := securePath(req.Dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		case tar.TypeSymlink:
			if err := secureLinkTarget(req.Dest, target, header.Linkname); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
				return fmt.Errorf("failed to create parent directory: %w", err)
			}
			if err := os.Symlink(header.Linkname, target); err != nil && !os.IsExist(err) {
				return fmt.Errorf("failed to create symlink %s: %w", header.Name, err)
			}
		case tar.TypeReg:
			if err := t.writeEntry(tarReader, header, target); err != nil {
				return err
			}
		default:
			t.log.Debug("Skipping unsupported tar entry", interfaces.F("entry", header.Name))
		}
	}
}

func (t *tarUnArchiver) writeEntry(src io.Reader, header *tar.Header, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	mode := os.FileMode(header.Mode).Perm() //nolint:gosec // G115: tar header mode fits in FileMode
	if mode == 0 {
		mode = 0644
	}

	//nolint:gosec // G304: target is validated against the destination root
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil { //nolint:gosec // G110: archive sources are trusted build inputs
		_ = dst.Close()
		return fmt.Errorf("failed to write entry %s: %w", header.Name, err)
	}
	return dst.Close()
}
