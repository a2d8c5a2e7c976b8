package entities

import "strings"

// RepositoryRequest describes where to fetch an artifact from: a remote
// repository base URL plus the artifact coordinates.
type RepositoryRequest struct {
	RepositoryURL string
	Artifact      Artifact
}

// FileName returns the artifact's file name in the standard repository
// layout: artifactId-version[-classifier].type
func (r *RepositoryRequest) FileName() string {
	a := r.Artifact
	name := a.ArtifactID + "-" + a.Version
	if a.Classifier != "" {
		name += "-" + a.Classifier
	}
	return name + "." + a.TypeOrDefault()
}

// RemotePath returns the artifact path relative to the repository root:
// group/with/slashes/artifactId/version/artifactId-version[-classifier].type
func (r *RepositoryRequest) RemotePath() string {
	a := r.Artifact
	group := strings.ReplaceAll(a.GroupID, ".", "/")
	return strings.Join([]string{group, a.ArtifactID, a.Version, r.FileName()}, "/")
}

// URL returns the absolute download URL for the artifact.
func (r *RepositoryRequest) URL() string {
	return strings.TrimSuffix(r.RepositoryURL, "/") + "/" + r.RemotePath()
}
