package gateways

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/ianaindex"

	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
	"depscope/internal/domain/interfaces/gateways"
)

// zipUnArchiver extracts zip-family archives (zip, jar, war, ear). Legacy
// entry names can be decoded with a configurable IANA charset.
type zipUnArchiver struct {
	log interfaces.Logger
}

func newZipUnArchiver(log interfaces.Logger) *zipUnArchiver {
	return &zipUnArchiver{log: log}
}

// Extract unpacks the requested entries into req.Dest.
func (z *zipUnArchiver) Extract(ctx context.Context, req gateways.ExtractRequest) error {
	if err := z.extract(ctx, req); err != nil {
		return &entities.ArchiveError{Source: req.Source, Dest: req.Dest, Err: err}
	}
	return nil
}

func (z *zipUnArchiver) extract(ctx context.Context, req gateways.ExtractRequest) error {
	if err := rejectUnpackagedSource(req.Source); err != nil {
		return err
	}
	if err := ensureDestDir(req.Dest); err != nil {
		return err
	}

	decode, err := entryNameDecoder(req.Encoding)
	if err != nil {
		return err
	}
	if req.Encoding != "" {
		z.log.Info("Unpacking zip with encoding", interfaces.F("encoding", req.Encoding))
	}

	reader, err := zip.OpenReader(req.Source)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	//nolint:errcheck // Defer close on read-only archive
	defer reader.Close()

	selector := newEntrySelector(req)

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := file.Name
		if file.NonUTF8 && decode != nil {
			decoded, err := decode(name)
			if err != nil {
				z.log.Warn("Failed to decode entry name, using raw bytes", interfaces.F("entry", name))
			} else {
				name = decoded
			}
		}

		if !selector.selected(name) {
			continue
		}

		target, err := securePath(req.Dest, name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := z.writeEntry(file, target); err != nil {
			return err
		}
	}
	return nil
}

func (z *zipUnArchiver) writeEntry(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open entry %s: %w", file.Name, err)
	}
	//nolint:errcheck // Defer close on read-only entry
	defer src.Close()

	mode := file.Mode().Perm()
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
		return fmt.Errorf("failed to write entry %s: %w", file.Name, err)
	}
	return dst.Close()
}

// entryNameDecoder resolves an IANA charset name into a decode function for
// legacy (non-UTF-8) entry names. An empty name yields no decoder.
func entryNameDecoder(name string) (func(string) (string, error), error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported entry name encoding %q", name)
	}
	decoder := enc.NewDecoder()
	return func(raw string) (string, error) {
		return decoder.String(raw)
	}, nil
}
