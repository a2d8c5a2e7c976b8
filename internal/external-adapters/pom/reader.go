// Package pom reads project coordinates from Maven POM files.
package pom

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"depscope/internal/domain/entities"
)

// pomProject mirrors the subset of the POM model the tool needs.
type pomProject struct {
	XMLName    xml.Name  `xml:"project"`
	Parent     pomParent `xml:"parent"`
	GroupID    string    `xml:"groupId"`
	ArtifactID string    `xml:"artifactId"`
	Version    string    `xml:"version"`
	Packaging  string    `xml:"packaging"`
	Build      pomBuild  `xml:"build"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomBuild struct {
	Directory string `xml:"directory"`
}

// Reader parses POM files into Project entities.
type Reader struct{}

// NewReader creates a POM reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile parses the POM at path. GroupId and version fall back to the
// parent declaration when inherited; packaging defaults to jar and the build
// directory to "target" next to the POM.
func (r *Reader) ReadFile(path string) (*entities.Project, error) {
	//nolint:gosec // G304: path is the project POM under analysis
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read POM %s: %w", path, err)
	}

	var raw pomProject
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse POM %s: %w", path, err)
	}

	if raw.ArtifactID == "" {
		return nil, fmt.Errorf("POM %s has no artifactId", path)
	}

	groupID := raw.GroupID
	if groupID == "" {
		groupID = raw.Parent.GroupID
	}
	version := raw.Version
	if version == "" {
		version = raw.Parent.Version
	}
	packaging := raw.Packaging
	if packaging == "" {
		packaging = entities.TypeJar
	}
	buildDir := raw.Build.Directory
	if buildDir == "" {
		buildDir = filepath.Join(filepath.Dir(path), "target")
	}

	return &entities.Project{
		GroupID:    groupID,
		ArtifactID: raw.ArtifactID,
		Version:    version,
		Packaging:  packaging,
		POMPath:    path,
		BuildDir:   buildDir,
	}, nil
}
