package services

import (
	"strings"

	"depscope/internal/domain/entities"
)

// RenderScriptable emits one line per artifact in the fixed format
//
//	flag:pomPath:conflictId:classifier:baseVersion:scope
//
// intended for line-scraping by external tools. Field order and the colon
// separator are a stable contract. An empty set renders to an empty string.
func RenderScriptable(flag, pomPath string, artifacts *entities.ArtifactSet) string {
	if artifacts.IsEmpty() {
		return ""
	}
	if flag == "" {
		flag = DefaultScriptableFlag
	}

	var sb strings.Builder
	for _, artifact := range artifacts.Items() {
		sb.WriteString(strings.Join([]string{
			flag,
			pomPath,
			artifact.ConflictID(),
			artifact.Classifier,
			artifact.BaseVersion(),
			artifact.ScopeOrDefault(),
		}, ":"))
		sb.WriteString("\n")
	}
	return sb.String()
}
