package entities

// Project describes the POM-based project under analysis.
type Project struct {
	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string
	POMPath    string
	BuildDir   string
}

// Coordinates returns the project's groupId:artifactId pair.
func (p *Project) Coordinates() string {
	return p.GroupID + ":" + p.ArtifactID
}
