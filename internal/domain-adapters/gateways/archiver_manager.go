// Package gateways provides infrastructure adapters implementing the domain
// gateway interfaces.
package gateways

import (
	"path/filepath"
	"strings"

	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
	"depscope/internal/domain/interfaces/gateways"
)

// archiverManager resolves unarchivers by explicit type hint first, falling
// back to the archive's file extension.
type archiverManager struct {
	log interfaces.Logger
}

// NewArchiverManager creates an archiver manager.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewArchiverManager(log interfaces.Logger) *archiverManager {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}
	return &archiverManager{log: log}
}

// UnArchiver looks up the extractor for the given type hint, or for the
// file's extension when the hint is empty or unknown.
func (m *archiverManager) UnArchiver(typeHint, path string) (gateways.UnArchiver, error) {
	if typeHint != "" {
		if ua := m.byType(typeHint); ua != nil {
			m.log.Debug("Found unarchiver by type", interfaces.F("type", typeHint))
			return ua, nil
		}
	}

	if ua := m.byExtension(path); ua != nil {
		m.log.Debug("Found unarchiver by extension", interfaces.F("file", path))
		return ua, nil
	}

	unknown := typeHint
	if unknown == "" {
		unknown = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	return nil, &entities.UnknownArchiverError{Type: unknown}
}

func (m *archiverManager) byType(archiveType string) gateways.UnArchiver {
	switch strings.ToLower(archiveType) {
	case "zip", "jar", "war", "ear":
		return newZipUnArchiver(m.log)
	case "tar":
		return newTarUnArchiver(m.log, false)
	case "tar.gz", "tgz":
		return newTarUnArchiver(m.log, true)
	default:
		return nil
	}
}

func (m *archiverManager) byExtension(path string) gateways.UnArchiver {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return newTarUnArchiver(m.log, true)
	case strings.HasSuffix(name, ".tar"):
		return newTarUnArchiver(m.log, false)
	case strings.HasSuffix(name, ".zip"), strings.HasSuffix(name, ".jar"),
		strings.HasSuffix(name, ".war"), strings.HasSuffix(name, ".ear"):
		return newZipUnArchiver(m.log)
	default:
		return nil
	}
}
