// Package entities defines core domain models and data structures.
package entities

import (
	"regexp"
	"strings"
)

// Well-known artifact defaults for POM-based projects.
const (
	ScopeCompile = "compile"
	TypeJar      = "jar"
)

// snapshotTimestampPattern matches a resolved snapshot version suffix,
// e.g. "1.0-20240117.091530-7".
var snapshotTimestampPattern = regexp.MustCompile(`-\d{8}\.\d{6}-\d+$`)

// Artifact identifies a single dependency of a project. It is treated as an
// immutable value for the duration of one reconciliation.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Type       string
	Scope      string
}

// ID returns the identity key used for set membership and display:
// groupId:artifactId[:classifier][:type]:version
func (a Artifact) ID() string {
	parts := []string{a.GroupID, a.ArtifactID}
	if a.Classifier != "" {
		parts = append(parts, a.Classifier)
	}
	if a.Type != "" {
		parts = append(parts, a.Type)
	}
	parts = append(parts, a.Version)
	return strings.Join(parts, ":")
}

// ConflictID returns the dependency-conflict identity used to compare
// versions of the same logical dependency: groupId:artifactId:type:version
func (a Artifact) ConflictID() string {
	return strings.Join([]string{a.GroupID, a.ArtifactID, a.TypeOrDefault(), a.Version}, ":")
}

// BaseVersion returns the nominal version with any resolved snapshot
// timestamp stripped, so "1.0-20240117.091530-7" reads as "1.0-SNAPSHOT".
func (a Artifact) BaseVersion() string {
	return snapshotTimestampPattern.ReplaceAllString(a.Version, "-SNAPSHOT")
}

// TypeOrDefault returns the artifact type, defaulting to "jar".
func (a Artifact) TypeOrDefault() string {
	if a.Type == "" {
		return TypeJar
	}
	return a.Type
}

// ScopeOrDefault returns the artifact scope, defaulting to "compile".
func (a Artifact) ScopeOrDefault() string {
	if a.Scope == "" {
		return ScopeCompile
	}
	return a.Scope
}

// String renders the artifact for log output:
// groupId:artifactId:type[:classifier]:version:scope
func (a Artifact) String() string {
	parts := []string{a.GroupID, a.ArtifactID, a.TypeOrDefault()}
	if a.Classifier != "" {
		parts = append(parts, a.Classifier)
	}
	parts = append(parts, a.Version, a.ScopeOrDefault())
	return strings.Join(parts, ":")
}
