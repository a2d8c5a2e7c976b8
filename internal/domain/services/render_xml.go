package services

import (
	"encoding/xml"
	"strings"

	"depscope/internal/domain/entities"
)

// xmlDependency mirrors the <dependency> element a user pastes into their
// dependency manifest.
type xmlDependency struct {
	XMLName    xml.Name `xml:"dependency"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
	Classifier string   `xml:"classifier,omitempty"`
	Scope      string   `xml:"scope,omitempty"`
}

// RenderXML emits one <dependency> fragment per artifact, in set order,
// ready to be added to the declared dependency list. Versions use the base
// version; the classifier appears only when non-blank and the scope only
// when it differs from compile. An empty set renders to an empty string.
func RenderXML(artifacts *entities.ArtifactSet) (string, error) {
	if artifacts.IsEmpty() {
		return "", nil
	}

	var sb strings.Builder
	for _, artifact := range artifacts.Items() {
		dep := xmlDependency{
			GroupID:    artifact.GroupID,
			ArtifactID: artifact.ArtifactID,
			Version:    artifact.BaseVersion(),
			Classifier: artifact.Classifier,
		}
		if scope := artifact.ScopeOrDefault(); scope != entities.ScopeCompile {
			dep.Scope = scope
		}

		out, err := xml.MarshalIndent(dep, "", "  ")
		if err != nil {
			return "", err
		}
		sb.Write(out)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
