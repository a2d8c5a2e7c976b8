package services

import (
	"strings"

	"depscope/internal/domain/entities"
)

// RenderJSON emits a single object-like fragment summarizing the kept
// problem sets for machine consumption:
//
//	{dependencyIssues:"true", originModule: "g:a", usedUndeclared: [g:a, ...], unusedDeclared: [g:a, ...]}
//
// Nothing is emitted when both kept sets are empty. The format follows the
// historic fragment shape consumed by downstream tooling, not strict JSON.
func RenderJSON(project *entities.Project, usedUndeclared, unusedDeclared *entities.ArtifactSet) string {
	if usedUndeclared.IsEmpty() && unusedDeclared.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`{dependencyIssues:"true", `)
	sb.WriteString(`originModule: "` + project.Coordinates() + `"`)

	if !usedUndeclared.IsEmpty() {
		sb.WriteString(", usedUndeclared: [")
		sb.WriteString(joinCoordinates(usedUndeclared))
		sb.WriteString("]")
	}
	if !unusedDeclared.IsEmpty() {
		sb.WriteString(", unusedDeclared: [")
		sb.WriteString(joinCoordinates(unusedDeclared))
		sb.WriteString("]")
	}
	sb.WriteString("}")
	return sb.String()
}

func joinCoordinates(artifacts *entities.ArtifactSet) string {
	coords := make([]string, 0, artifacts.Len())
	for _, artifact := range artifacts.Items() {
		coords = append(coords, artifact.GroupID+":"+artifact.ArtifactID)
	}
	return strings.Join(coords, ", ")
}
